package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(id string, ts time.Time) *domain.OptimizationReport {
	return &domain.OptimizationReport{
		ID:                id,
		Timestamp:         ts,
		DateFrom:          "2024-03-01",
		DateTo:            "2024-03-08",
		CampaignsAnalyzed: 1,
		Optimizations: []domain.CampaignOptimization{
			{CampaignID: 1, CampaignName: "Тест", Score: 55, Outcome: domain.OutcomeOK},
		},
	}
}

func TestFileReportRepository_SaveAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "optimizations")
	repo := NewFileReportRepository(dir)
	ctx := context.Background()

	report := newReport("opt_1710000000000", time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, report))

	assert.FileExists(t, filepath.Join(dir, "opt_1710000000000.json"))
	assert.FileExists(t, filepath.Join(dir, "latest.json"))

	got, err := repo.Get(ctx, "opt_1710000000000")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, report.ID, got.ID)
	assert.True(t, report.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, "Тест", got.Optimizations[0].CampaignName)

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, report.ID, latest.ID)
}

func TestFileReportRepository_Missing(t *testing.T) {
	repo := NewFileReportRepository(t.TempDir())
	ctx := context.Background()

	got, err := repo.Get(ctx, "opt_404")
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.Get(ctx, "../etc/passwd")
	assert.NoError(t, err)
	assert.Nil(t, got)

	latest, err := repo.GetLatest(ctx)
	assert.NoError(t, err)
	assert.Nil(t, latest)

	list, err := NewFileReportRepository(filepath.Join(t.TempDir(), "nope")).ListRecent(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestFileReportRepository_ListRecent(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileReportRepository(dir)
	ctx := context.Background()

	base := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, newReport("opt_1000", base)))
	require.NoError(t, repo.Save(ctx, newReport("opt_3000", base.Add(2*time.Hour))))
	require.NoError(t, repo.Save(ctx, newReport("opt_2000", base.Add(time.Hour))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "opt_9999.json"), []byte("{quebrado"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	list, err := repo.ListRecent(ctx, 50)
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"opt_3000", "opt_2000", "opt_1000"}, ids)

	limited, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	// o arquivo ilegível conta no limite e é descartado na leitura
	assert.Len(t, limited, 1)
	assert.Equal(t, "opt_3000", limited[0].ID)
}
