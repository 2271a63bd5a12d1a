package handler

import (
	"net/http"

	"github.com/grifun/direct-optimizer-api/internal/api/handler/router"
	"github.com/grifun/direct-optimizer-api/pkg/middleware"
)

const directPrefix = "/v1/yandex-direct"

type mw = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Campaigns exige as credenciais do Direct; missing é a lista calculada na inicialização
func Campaigns(service CampaignService, missing []string) []router.Route {
	credentials := []mw{middleware.RequireCredentials(missing)}

	return []router.Route{
		{
			Path:        directPrefix + "/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: credentials,
		},
		{
			Path:        directPrefix + "/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: credentials,
		},
		{
			Path:        directPrefix + "/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaignDetails(service),
			Middlewares: credentials,
		},
		{
			Path:        directPrefix + "/stats",
			Method:      http.MethodPost,
			Handler:     GetStats(service),
			Middlewares: credentials,
		},
	}
}

func Optimization(runner OptimizationRunner, missing []string, secret string) []router.Route {
	return []router.Route{
		{
			Path:        directPrefix + "/optimize",
			Method:      http.MethodPost,
			Handler:     Optimize(runner),
			Middlewares: []mw{middleware.RequireCredentials(missing)},
		},
		{
			Path:    directPrefix + "/auto-optimize",
			Method:  http.MethodPost,
			Handler: AutoOptimize(runner),
			Middlewares: []mw{
				middleware.SecretAuth(secret),
				middleware.RequireCredentials(missing),
			},
		},
	}
}

func Changes(service ChangeService, missing []string) []router.Route {
	return []router.Route{
		{
			Path:        directPrefix + "/apply-changes",
			Method:      http.MethodPost,
			Handler:     ApplyChanges(service),
			Middlewares: []mw{middleware.RequireCredentials(missing)},
		},
	}
}

func Reports(service ReportService) []router.Route {
	return []router.Route{
		{
			Path:    directPrefix + "/reports",
			Method:  http.MethodGet,
			Handler: GetReports(service),
		},
	}
}

func CronJobs(services CronJobServices, secret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []mw{middleware.SecretAuth(secret)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []mw{middleware.SecretAuth(secret)},
		},
	}
}
