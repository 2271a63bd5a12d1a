package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/grifun/direct-optimizer-api/infrastructure/database/postgres"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertReportSQL    = `INSERT INTO optimization_reports (id,created_at,date_from,date_to,campaigns,payload) VALUES ($1,$2,$3,$4,$5,$6)`
	selectByIDSQL      = `SELECT payload FROM optimization_reports WHERE id = $1`
	selectLatestSQL    = `SELECT payload FROM optimization_reports ORDER BY created_at DESC LIMIT 1`
	selectRecentSQL    = `SELECT id, payload FROM optimization_reports ORDER BY created_at DESC LIMIT 2`
	selectAllByDateSQL = `SELECT id, payload FROM optimization_reports ORDER BY created_at DESC`
)

func newPostgresRepository(t *testing.T) (*postgres.Connection, ReportRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := &postgres.Connection{DB: db}
	return conn, NewPostgresReportRepository(conn), mock
}

var upsertReportPattern = "^" + regexp.QuoteMeta(insertReportSQL) + `\s+ON CONFLICT \(id\) DO UPDATE SET`

func exactly(query string) string {
	return "^" + regexp.QuoteMeta(query) + "$"
}

func payloadOf(t *testing.T, report *domain.OptimizationReport) []byte {
	payload, err := json.Marshal(report)
	require.NoError(t, err)
	return payload
}

func TestPostgresReportRepository_Save(t *testing.T) {
	_, repo, mock := newPostgresRepository(t)
	report := newReport("opt_1710000000000", time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))

	mock.ExpectExec(upsertReportPattern).
		WithArgs(report.ID, report.Timestamp, "2024-03-01", "2024-03-08", 1, payloadOf(t, report)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), report))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReportRepository_SaveWithoutPeriod(t *testing.T) {
	_, repo, mock := newPostgresRepository(t)
	report := newReport("opt_1", time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))
	report.DateFrom, report.DateTo = "", ""

	mock.ExpectExec(upsertReportPattern).
		WithArgs(report.ID, report.Timestamp, nil, nil, 1, sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), report)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReportRepository_Get(t *testing.T) {
	_, repo, mock := newPostgresRepository(t)
	report := newReport("opt_1710000000000", time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))

	mock.ExpectQuery(exactly(selectByIDSQL)).
		WithArgs(report.ID).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payloadOf(t, report)))
	mock.ExpectQuery(exactly(selectByIDSQL)).
		WithArgs("opt_missing").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	got, err := repo.Get(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, report, got)

	missing, err := repo.Get(context.Background(), "opt_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReportRepository_GetLatest(t *testing.T) {
	_, repo, mock := newPostgresRepository(t)
	report := newReport("opt_2", time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC))

	mock.ExpectQuery(exactly(selectLatestSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payloadOf(t, report)))
	mock.ExpectQuery(exactly(selectLatestSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte("{corrompido")))

	got, err := repo.GetLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report, got)

	_, err = repo.GetLatest(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReportRepository_ListRecent(t *testing.T) {
	_, repo, mock := newPostgresRepository(t)
	newest := newReport("opt_3", time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC))
	older := newReport("opt_1", time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))

	mock.ExpectQuery(exactly(selectRecentSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payload"}).
			AddRow(newest.ID, payloadOf(t, newest)).
			AddRow("opt_2", []byte("{corrompido")).
			AddRow(older.ID, payloadOf(t, older)))
	mock.ExpectQuery(exactly(selectAllByDateSQL)).
		WillReturnError(sql.ErrConnDone)

	reports, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newest, reports[0])
	assert.Equal(t, older, reports[1])

	_, err = repo.ListRecent(context.Background(), 0)
	assert.ErrorIs(t, err, sql.ErrConnDone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportReports(t *testing.T) {
	first := newReport("opt_1", time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))
	second := newReport("opt_2", time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC))

	t.Run("grava todos numa transação", func(t *testing.T) {
		conn, _, mock := newPostgresRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(upsertReportPattern).
			WithArgs(first.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(upsertReportPattern).
			WithArgs(second.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, ImportReports(context.Background(), conn, []*domain.OptimizationReport{first, second}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha em um relatório desfaz a importação", func(t *testing.T) {
		conn, _, mock := newPostgresRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(upsertReportPattern).
			WithArgs(first.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(upsertReportPattern).
			WithArgs(second.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(errors.New("duplicate key"))
		mock.ExpectRollback()

		err := ImportReports(context.Background(), conn, []*domain.OptimizationReport{first, second})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "opt_2")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
