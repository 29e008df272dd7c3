package handler

import (
	"net/http"

	"github.com/vfg2006/advision-api/internal/api/handler/router"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning"
	"github.com/vfg2006/advision-api/internal/usecases/credentialing"
	"github.com/vfg2006/advision-api/internal/usecases/experimenting"
	"github.com/vfg2006/advision-api/internal/usecases/predicting"
	"github.com/vfg2006/advision-api/internal/usecases/reporting"
	"github.com/vfg2006/advision-api/pkg/middleware"
)

func Healthcheck(checks map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/auth/token/refresh",
			Method:  http.MethodPost,
			Handler: RefreshToken(service),
		},
		{
			Path:    "/v1/auth/google",
			Method:  http.MethodPost,
			Handler: GoogleLogin(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/campaigns/:id/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/ads",
			Method:      http.MethodPost,
			Handler:     CreateAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/campaigns/:id/comments",
			Method:      http.MethodGet,
			Handler:     ListComments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/comments",
			Method:      http.MethodPost,
			Handler:     CreateComment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/images",
			Method:      http.MethodGet,
			Handler:     ListImages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/images",
			Method:      http.MethodPost,
			Handler:     UploadImage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/campaigns/:id/analytics",
			Method:      http.MethodGet,
			Handler:     ListAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/analytics",
			Method:      http.MethodPost,
			Handler:     ImportAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/summary",
			Method:      http.MethodGet,
			Handler:     GetCampaignSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/top",
			Method:      http.MethodGet,
			Handler:     GetTopCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ABTests(service experimenting.Experimenter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/abtests",
			Method:      http.MethodGet,
			Handler:     ListABTests(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/abtests",
			Method:      http.MethodPost,
			Handler:     CreateABTest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/abtests/:id",
			Method:      http.MethodGet,
			Handler:     GetABTest(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/abtests/:id/variations",
			Method:      http.MethodPost,
			Handler:     AddABTestVariation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/abtests/:id/results",
			Method:      http.MethodGet,
			Handler:     GetABTestResults(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Predictive(service predicting.Predictor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/model",
			Method:      http.MethodPost,
			Handler:     TrainModel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/campaigns/:id/predictions",
			Method:      http.MethodGet,
			Handler:     GetPredictions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/predictive/budget",
			Method:      http.MethodGet,
			Handler:     GetBudgetRecommendation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/weekly",
			Method:      http.MethodGet,
			Handler:     GetWeeklyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/schedules",
			Method:      http.MethodGet,
			Handler:     ListReportSchedules(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/schedules",
			Method:      http.MethodPost,
			Handler:     CreateReportSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/schedules/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteReportSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/schedules/:id/run",
			Method:      http.MethodPost,
			Handler:     RunReportSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func APIKeys(service credentialing.CredentialService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/api-keys",
			Method:      http.MethodGet,
			Handler:     ListAPIKeys(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/api-keys",
			Method:      http.MethodPost,
			Handler:     CreateAPIKey(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
		{
			Path:        "/v1/api-keys/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAPIKey(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Editors()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
