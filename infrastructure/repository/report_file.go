package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const latestReportFile = "latest.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fileReportRepository struct {
	dir string
}

// NewFileReportRepository grava cada relatório como <dir>/<id>.json e mantém uma cópia em latest.json
func NewFileReportRepository(dir string) ReportRepository {
	return &fileReportRepository{dir: dir}
}

func (r *fileReportRepository) Save(_ context.Context, report *domain.OptimizationReport) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de relatórios: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	if err := writeFileAtomic(filepath.Join(r.dir, report.ID+".json"), data); err != nil {
		return fmt.Errorf("erro ao gravar relatório %s: %w", report.ID, err)
	}

	if err := writeFileAtomic(filepath.Join(r.dir, latestReportFile), data); err != nil {
		return fmt.Errorf("erro ao atualizar latest.json: %w", err)
	}

	return nil
}

func (r *fileReportRepository) Get(_ context.Context, id string) (*domain.OptimizationReport, error) {
	if !isSafeReportID(id) {
		return nil, nil
	}
	return r.read(id + ".json")
}

func (r *fileReportRepository) GetLatest(_ context.Context) (*domain.OptimizationReport, error) {
	return r.read(latestReportFile)
}

// ListRecent ordena os nomes de arquivo em ordem decrescente e lê até limit relatórios, ignorando os ilegíveis
func (r *fileReportRepository) ListRecent(_ context.Context, limit int) ([]*domain.OptimizationReport, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.OptimizationReport{}, nil
		}
		return nil, fmt.Errorf("erro ao listar relatórios: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == latestReportFile || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	reports := make([]*domain.OptimizationReport, 0, len(names))
	for _, name := range names {
		report, err := r.read(name)
		if err != nil || report == nil {
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"error": fmt.Sprint(err),
			}).Warn("reports: skipping unreadable report file")
			continue
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (r *fileReportRepository) read(name string) (*domain.OptimizationReport, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler relatório %s: %w", name, err)
	}

	var report domain.OptimizationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar relatório %s: %w", name, err)
	}

	return &report, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func isSafeReportID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\`) && !strings.Contains(id, "..")
}
