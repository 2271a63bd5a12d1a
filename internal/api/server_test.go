package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/grifun/direct-optimizer-api/internal/api/handler"
	"github.com/grifun/direct-optimizer-api/internal/api/handler/mocks"
	"github.com/grifun/direct-optimizer-api/internal/config"
	"github.com/grifun/direct-optimizer-api/internal/domain"
	"github.com/grifun/direct-optimizer-api/internal/usecases/campaigning"
	"github.com/grifun/direct-optimizer-api/internal/usecases/optimizing"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type testServer struct {
	handler   http.Handler
	campaigns *mocks.MockCampaignService
	optimizer *mocks.MockOptimizationRunner
	changes   *mocks.MockChangeService
	reports   *mocks.MockReportService
	cron      *mocks.MockCronJob
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{AllowedOrigins: []string{"https://grifun.ru"}},
		Direct: config.Direct{AccessToken: "token", Login: "grifun"},
		OpenAI: config.OpenAI{APIKey: "sk-test"},
		AutoOptimize: config.AutoOptimize{
			Secret: "s3cret",
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		campaigns: mocks.NewMockCampaignService(ctrl),
		optimizer: mocks.NewMockOptimizationRunner(ctrl),
		changes:   mocks.NewMockChangeService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		cron:      mocks.NewMockCronJob(ctrl),
	}
	ts.handler = NewHandler(cfg, Services{
		Campaigns: ts.campaigns,
		Optimizer: ts.optimizer,
		Changes:   ts.changes,
		Reports:   ts.reports,
		CronJobs:  handler.CronJobServices{handler.CronJobTypeAutoOptimize: ts.cron},
	})

	return ts
}

func (ts *testServer) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestMissingCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Direct = config.Direct{}
	ts := newTestServer(t, cfg)

	rec := ts.do(http.MethodGet, "/v1/yandex-direct/campaigns", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Yandex Direct credentials not configured", body["error"])
	assert.Equal(t, []any{"YANDEX_DIRECT_ACCESS_TOKEN", "YANDEX_DIRECT_LOGIN"}, body["required"])
}

func TestOptimizeRequiresLanguageModelKey(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAI.APIKey = ""
	ts := newTestServer(t, cfg)

	rec := ts.do(http.MethodPost, "/v1/yandex-direct/optimize", "{}")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, []any{"OPENAI_API_KEY"}, decode(t, rec)["required"])
}

func TestListCampaigns(t *testing.T) {
	ts := newTestServer(t, testConfig())

	campaigns := []domain.Campaign{
		{ID: 1, Name: "Поиск", State: domain.CampaignStateOn, Status: domain.CampaignStatusAccepted},
		{ID: 2, Name: "Архив", State: domain.CampaignStateArchived},
	}
	ts.campaigns.EXPECT().ListCampaigns(gomock.Any()).Return(&domain.CampaignList{
		Campaigns: campaigns,
		Summary:   domain.SummarizeCampaigns(campaigns),
	}, nil)

	rec := ts.do(http.MethodGet, "/v1/yandex-direct/campaigns", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["campaigns"], 2)
	summary := body["summary"].(map[string]any)
	assert.EqualValues(t, 2, summary["total"])
	assert.EqualValues(t, 1, summary["active"])
	assert.EqualValues(t, 1, summary["archived"])
}

func TestGetStats(t *testing.T) {
	t.Run("validação vira 400", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.campaigns.EXPECT().GetStats(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, campaigning.NewCampaignError(campaigning.ErrCampaignIDsRequired, "VAL_001", ""))

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/stats", `{"dateFrom":"2024-03-01","dateTo":"2024-03-07"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "campaignIds array is required", decode(t, rec)["error"])
	})

	t.Run("JSON malformado", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/stats", `{"campaignIds":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sucesso", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		period := domain.StatsPeriod{DateFrom: "2024-03-01", DateTo: "2024-03-07"}
		ts.campaigns.EXPECT().GetStats(gomock.Any(), []int64{123}, period).
			Return([]domain.CampaignStats{{CampaignID: 123, Impressions: 1000, Clicks: 20}}, nil)

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/stats", `{"campaignIds":[123],"dateFrom":"2024-03-01","dateTo":"2024-03-07"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.EqualValues(t, 1, body["campaignsCount"])
		assert.Equal(t, map[string]any{"dateFrom": "2024-03-01", "dateTo": "2024-03-07"}, body["period"])
	})
}

func TestCampaignDetails(t *testing.T) {
	t.Run("id inválido", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodGet, "/v1/yandex-direct/campaigns/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("campanha inexistente", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.campaigns.EXPECT().GetCampaignDetails(gomock.Any(), int64(77)).
			Return(nil, campaigning.NewCampaignErrorWithID(campaigning.ErrCampaignNotFound, "NF_001", 77, ""))

		rec := ts.do(http.MethodGet, "/v1/yandex-direct/campaigns/77", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateCampaign(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.campaigns.EXPECT().CreateCampaign(gomock.Any(), domain.CreateCampaignRequest{Name: "Весна", DailyBudget: 500}).
		Return(int64(555), nil)

	rec := ts.do(http.MethodPost, "/v1/yandex-direct/campaigns", `{"name":"Весна","dailyBudget":500}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 555, body["campaignId"])
	assert.Equal(t, `Campaign "Весна" created successfully`, body["message"])
}

func TestOptimize(t *testing.T) {
	report := &domain.OptimizationReport{
		ID:      "opt_1710063015000",
		Summary: domain.ReportSummary{AverageScore: 40, LowScoreCount: 1},
	}

	t.Run("corpo vazio usa os padrões", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.optimizer.EXPECT().Run(gomock.Any(), optimizing.RunRequest{}).Return(&optimizing.RunResult{
			Report:         report,
			Period:         domain.StatsPeriod{DateFrom: "2024-03-03", DateTo: "2024-03-10"},
			Days:           7,
			TotalCampaigns: 1,
			Optimizations:  []domain.CampaignOptimization{{CampaignID: 1, Score: 40}},
		}, nil)

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/optimize", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "opt_1710063015000", body["reportId"])
		assert.EqualValues(t, 1, body["campaignsAnalyzed"])
		assert.Equal(t, "2024-03-03", body["dateFrom"])
		assert.Len(t, body["optimizations"], 1)
	})

	t.Run("sem campanhas ativas", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.optimizer.EXPECT().Run(gomock.Any(), optimizing.RunRequest{CampaignIDs: []int64{5}, Days: 14}).
			Return(&optimizing.RunResult{Optimizations: []domain.CampaignOptimization{}}, nil)

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/optimize", `{"campaignIds":[5],"days":14}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "No active campaigns found", body["message"])
		assert.EqualValues(t, 0, body["campaignsAnalyzed"])
	})

	t.Run("falha ao listar campanhas", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.optimizer.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("direct unavailable"))

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/optimize", "{}")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to optimize campaigns", decode(t, rec)["error"])
	})
}

func TestAutoOptimize(t *testing.T) {
	t.Run("sem segredo", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/auto-optimize", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("segredo errado", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/auto-optimize", "", "Authorization", "Bearer other")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("parâmetros da query e resumo", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.optimizer.EXPECT().Run(gomock.Any(), optimizing.RunRequest{Days: 14, MinScore: 50}).Return(&optimizing.RunResult{
			Report: &domain.OptimizationReport{
				ID:      "opt_1",
				Summary: domain.ReportSummary{AverageScore: 35, LowScoreCount: 2},
			},
			Period:         domain.StatsPeriod{DateFrom: "2024-02-25", DateTo: "2024-03-10"},
			Days:           14,
			TotalCampaigns: 3,
			Optimizations:  []domain.CampaignOptimization{{CampaignID: 1, Score: 30}, {CampaignID: 2, Score: 40}},
		}, nil)

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/auto-optimize?days=14&minScore=50", "", "Authorization", "Bearer s3cret")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, map[string]any{
			"total":        float64(3),
			"analyzed":     float64(2),
			"averageScore": float64(35),
			"lowScore":     float64(2),
			"highScore":    float64(0),
		}, body["summary"])
		assert.Equal(t, map[string]any{"dateFrom": "2024-02-25", "dateTo": "2024-03-10", "days": float64(14)}, body["period"])
	})

	t.Run("segredo não configurado libera a rota", func(t *testing.T) {
		cfg := testConfig()
		cfg.AutoOptimize.Secret = ""
		ts := newTestServer(t, cfg)
		ts.optimizer.EXPECT().Run(gomock.Any(), optimizing.RunRequest{Days: 7}).
			Return(&optimizing.RunResult{Optimizations: []domain.CampaignOptimization{}}, nil)

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/auto-optimize", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No active campaigns to optimize", decode(t, rec)["message"])
	})

	t.Run("days inválido", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/auto-optimize?days=week", "", "Authorization", "Bearer s3cret")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestApplyChanges(t *testing.T) {
	t.Run("sem confirmação devolve prévia sem aplicar", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.changes.EXPECT().Preview(gomock.Any()).DoAndReturn(func(req domain.ApplyChangesRequest) domain.ChangesPreview {
			assert.Equal(t, int64(10), req.CampaignID)
			require.Len(t, req.Changes, 1)
			value, ok := req.Changes[0].Value.Number()
			assert.True(t, ok)
			assert.Equal(t, float64(150), value)
			return domain.ChangesPreview{
				CampaignID:   10,
				ChangesCount: 1,
				Changes:      []domain.ChangePreviewItem{{Type: domain.ChangeTypeBudget, Action: "Увеличить бюджет"}},
			}
		})

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/apply-changes",
			`{"campaignId":10,"changes":[{"type":"budget","action":"Увеличить бюджет","value":150}]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, `Требуется подтверждение. Добавьте "confirm": true в запрос`, body["message"])
		preview := body["preview"].(map[string]any)
		assert.EqualValues(t, 1, preview["changesCount"])
	})

	t.Run("com confirmação aplica", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.changes.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.ApplyChangesResult{
			Success:    true,
			CampaignID: 10,
			Applied:    1,
			Total:      2,
			Results: []domain.ChangeResult{
				{Type: domain.ChangeTypeBudget, Success: true, Message: "ok"},
				{Type: domain.ChangeTypeTargeting, Success: false, Message: "manual"},
			},
		})

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/apply-changes",
			`{"campaignId":10,"confirm":true,"changes":[{"type":"budget","action":"a","value":150},{"type":"targeting","action":"b"}]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.EqualValues(t, 1, body["applied"])
		assert.EqualValues(t, 2, body["total"])
		assert.Len(t, body["results"], 2)
	})

	t.Run("sem campanha", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/apply-changes", `{"changes":[{"type":"budget","action":"a"}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("JSON malformado", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodPost, "/v1/yandex-direct/apply-changes", `not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReports(t *testing.T) {
	report := &domain.OptimizationReport{
		ID:                "opt_2",
		Timestamp:         time.Date(2024, 3, 10, 9, 30, 15, 0, time.UTC),
		DateFrom:          "2024-03-03",
		DateTo:            "2024-03-10",
		CampaignsAnalyzed: 1,
		Optimizations:     []domain.CampaignOptimization{{CampaignID: 1, Score: 80}},
	}

	t.Run("por id inexistente", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.reports.EXPECT().GetReport(gomock.Any(), "opt_404").Return(nil, nil)

		rec := ts.do(http.MethodGet, "/v1/yandex-direct/reports?id=opt_404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Report not found", decode(t, rec)["error"])
	})

	t.Run("último em markdown", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.reports.EXPECT().GetLatestReport(gomock.Any()).Return(report, nil)
		ts.reports.EXPECT().GenerateMarkdown(report).Return("# Отчет")

		rec := ts.do(http.MethodGet, "/v1/yandex-direct/reports?latest=true&format=markdown", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "# Отчет", rec.Body.String())
	})

	t.Run("nenhum relatório", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.reports.EXPECT().GetLatestReport(gomock.Any()).Return(nil, nil)

		rec := ts.do(http.MethodGet, "/v1/yandex-direct/reports?latest=true", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No reports found", decode(t, rec)["error"])
	})

	t.Run("listagem sem otimizações", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.reports.EXPECT().GetAllReports(gomock.Any()).Return([]*domain.OptimizationReport{report}, nil)

		rec := ts.do(http.MethodGet, "/v1/yandex-direct/reports", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.EqualValues(t, 1, body["count"])
		item := body["reports"].([]any)[0].(map[string]any)
		assert.Equal(t, "opt_2", item["id"])
		assert.NotContains(t, item, "optimizations")
	})

	t.Run("erro de armazenamento", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.reports.EXPECT().GetAllReports(gomock.Any()).Return(nil, errors.New("disk"))

		rec := ts.do(http.MethodGet, "/v1/yandex-direct/reports", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCronJobs(t *testing.T) {
	t.Run("tipo desconhecido", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodPost, "/v1/cron/meta/run", "", "Authorization", "Bearer s3cret")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("dispara a otimização automática", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.cron.EXPECT().TriggerManualSync()

		rec := ts.do(http.MethodPost, "/v1/cron/auto-optimize/run", "", "Authorization", "Bearer s3cret")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "auto-optimize", decode(t, rec)["type"])
	})

	t.Run("status exige segredo", func(t *testing.T) {
		ts := newTestServer(t, testConfig())

		rec := ts.do(http.MethodGet, "/v1/cron/status", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		ts := newTestServer(t, testConfig())
		ts.cron.EXPECT().GetStatus().Return(map[string]any{"enabled": true, "running": false})

		rec := ts.do(http.MethodGet, "/v1/cron/status", "", "Authorization", "Bearer s3cret")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"enabled": true, "running": false}, decode(t, rec)["auto-optimize"])
	})
}

func TestCorsPreflight(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec := ts.do(http.MethodOptions, "/v1/yandex-direct/campaigns", "", "Origin", "https://grifun.ru")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://grifun.ru", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = ts.do(http.MethodOptions, "/v1/yandex-direct/campaigns", "", "Origin", "https://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(testConfig(), Services{})

	assert.Error(t, err)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	ts := newTestServer(t, cfg)

	srv := &Server{httpServer: &http.Server{Addr: "127.0.0.1:0", Handler: ts.handler}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, srv.Run(ctx))
}
