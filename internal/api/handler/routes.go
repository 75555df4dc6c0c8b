package handler

import (
	"net/http"

	"github.com/vfg2006/seller-console/infrastructure/integrator/astro"
	"github.com/vfg2006/seller-console/internal/api/handler/router"
	"github.com/vfg2006/seller-console/internal/scheduler"
	"github.com/vfg2006/seller-console/internal/session"
	"github.com/vfg2006/seller-console/internal/usecases/cataloging"
	"github.com/vfg2006/seller-console/internal/usecases/insighting"
	"github.com/vfg2006/seller-console/internal/usecases/ordering"
	"github.com/vfg2006/seller-console/pkg/middleware"
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

// Session expõe as rotas de sessão. Nenhuma delas passa pelo guard: login e
// consulta de sessão precisam funcionar sem token.
func Session(api astro.SellerAPI, store session.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/session",
			Method:  http.MethodPost,
			Handler: Login(api, store),
		},
		{
			Path:    "/v1/session",
			Method:  http.MethodDelete,
			Handler: Logout(store),
		},
		{
			Path:    "/v1/session",
			Method:  http.MethodGet,
			Handler: GetSession(store),
		},
	}
}

func CronJobs(syncService *scheduler.DashboardSyncService, store session.Store) []router.Route {
	guarded := []func(http.Handler) http.Handler{middleware.NavigationGuard(store)}

	return []router.Route{
		{
			Path:        "/v1/cron/dashboard-sync",
			Method:      http.MethodGet,
			Handler:     CronJobStatus(syncService),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/cron/dashboard-sync/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(syncService),
			Middlewares: guarded,
		},
	}
}

func Dashboard(service insighting.Insighter, store session.Store) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NavigationGuard(store)},
		},
	}
}

func Orders(service ordering.OrderService, store session.Store) []router.Route {
	guarded := []func(http.Handler) http.Handler{middleware.NavigationGuard(store)}

	return []router.Route{
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     ListOrders(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/orders/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateOrderStatus(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/orders/:id/invoice",
			Method:      http.MethodPost,
			Handler:     GenerateInvoice(service),
			Middlewares: guarded,
		},
	}
}

func Products(service cataloging.ProductService, store session.Store) []router.Route {
	guarded := []func(http.Handler) http.Handler{middleware.NavigationGuard(store)}

	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/products/images",
			Method:      http.MethodPost,
			Handler:     StageImages(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/products/images/:id",
			Method:      http.MethodGet,
			Handler:     GetPreview(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateProductPricing(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/products/:id/toggle",
			Method:      http.MethodPatch,
			Handler:     ToggleProduct(service),
			Middlewares: guarded,
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(service),
			Middlewares: guarded,
		},
	}
}
