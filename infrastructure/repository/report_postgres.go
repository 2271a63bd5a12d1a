package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/grifun/direct-optimizer-api/infrastructure/database/postgres"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/lib/pq"
)

const optimizationReportsTable = "optimization_reports"

const createOptimizationReportsTable = `
CREATE TABLE IF NOT EXISTS optimization_reports (
	id          TEXT PRIMARY KEY,
	created_at  TIMESTAMPTZ NOT NULL,
	date_from   DATE,
	date_to     DATE,
	campaigns   INTEGER NOT NULL DEFAULT 0,
	payload     JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS optimization_reports_created_at_idx ON optimization_reports (created_at DESC);
`

type postgresReportRepository struct {
	conn *postgres.Connection
}

func NewPostgresReportRepository(conn *postgres.Connection) ReportRepository {
	return &postgresReportRepository{
		conn: conn,
	}
}

// EnsureReportSchema cria a tabela de relatórios caso ainda não exista
func EnsureReportSchema(ctx context.Context, conn *postgres.Connection) error {
	if _, err := conn.ExecContext(ctx, createOptimizationReportsTable); err != nil {
		return fmt.Errorf("erro ao criar tabela de relatórios: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *postgresReportRepository) Save(ctx context.Context, report *domain.OptimizationReport) error {
	return upsertReport(ctx, r.conn, report)
}

// ImportReports grava todos os relatórios numa única transação; qualquer falha desfaz a importação inteira
func ImportReports(ctx context.Context, conn *postgres.Connection, reports []*domain.OptimizationReport) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, report := range reports {
			if err := upsertReport(ctx, tx, report); err != nil {
				return fmt.Errorf("erro ao importar relatório %s: %w", report.ID, err)
			}
		}
		return nil
	})
}

func upsertReport(ctx context.Context, db execer, report *domain.OptimizationReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(optimizationReportsTable).
		Columns("id", "created_at", "date_from", "date_to", "campaigns", "payload").
		Values(
			report.ID,
			report.Timestamp,
			nullableDate(report.DateFrom),
			nullableDate(report.DateTo),
			report.CampaignsAnalyzed,
			payload,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				created_at = EXCLUDED.created_at,
				date_from = EXCLUDED.date_from,
				date_to = EXCLUDED.date_to,
				campaigns = EXCLUDED.campaigns,
				payload = EXCLUDED.payload
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *postgresReportRepository) Get(ctx context.Context, id string) (*domain.OptimizationReport, error) {
	query, args, err := squirrel.
		Select("payload").
		From(optimizationReportsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanOne(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *postgresReportRepository) GetLatest(ctx context.Context) (*domain.OptimizationReport, error) {
	query, args, err := squirrel.
		Select("payload").
		From(optimizationReportsTable).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanOne(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *postgresReportRepository) ListRecent(ctx context.Context, limit int) ([]*domain.OptimizationReport, error) {
	builder := squirrel.
		Select("id", "payload").
		From(optimizationReportsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.OptimizationReport, 0)
	for rows.Next() {
		var id string
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}

		var report domain.OptimizationReport
		if err := json.Unmarshal(payload, &report); err != nil {
			continue
		}
		reports = append(reports, &report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *postgresReportRepository) scanOne(row *sql.Row) (*domain.OptimizationReport, error) {
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	var report domain.OptimizationReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar relatório: %w", err)
	}

	return &report, nil
}

func nullableDate(date string) sql.NullString {
	return sql.NullString{String: date, Valid: date != ""}
}
