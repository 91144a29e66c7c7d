package handler

import (
	"net/http"

	"github.com/cortesdelisboa/barbershop-api/infrastructure/repository"
	"github.com/cortesdelisboa/barbershop-api/internal/api/handler/router"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/authenticating"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/earning"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/inventorying"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/reporting"
	"github.com/cortesdelisboa/barbershop-api/internal/usecases/servicing"
	"github.com/cortesdelisboa/barbershop-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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
			Handler: RegisterUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(service inventorying.InventoryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func Barbers(barberRepo repository.BarberRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/barbers",
			Method:      http.MethodGet,
			Handler:     ListBarbers(barberRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func Services(service servicing.ServiceRegistry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/services",
			Method:      http.MethodPost,
			Handler:     RegisterService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.BarberOnly()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodGet,
			Handler:     ListServices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/summary",
			Method:      http.MethodGet,
			Handler:     GetReportSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/reports/export",
			Method:      http.MethodGet,
			Handler:     ExportReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func Earnings(service earning.EarningsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/earnings",
			Method:      http.MethodGet,
			Handler:     GetMyEarnings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.BarberOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}
