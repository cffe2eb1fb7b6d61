// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/handlers"
)

// Handlers groups the resource handlers mounted under /api/v1.
type Handlers struct {
	Organizations *handlers.OrganizationHandler
	Orders        *handlers.OrderHandler
	DesignJobs    *handlers.DesignJobHandler
	Validation    *handlers.ValidationHandler
	Health        *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Organizations and contacts.
		r.Get("/organizations", h.Organizations.ListOrganizations)
		r.Post("/organizations", h.Organizations.CreateOrganization)
		r.Get("/organizations/{id}", h.Organizations.GetOrganization)
		r.Patch("/organizations/{id}", h.Organizations.UpdateOrganization)
		r.Get("/organizations/{id}/contacts", h.Organizations.ListContacts)
		r.Post("/organizations/{id}/contacts", h.Organizations.AddContact)

		// Orders.
		r.Get("/orders", h.Orders.ListOrders)
		r.Post("/orders", h.Orders.CreateOrder)
		r.Get("/orders/{id}", h.Orders.GetOrder)
		r.Patch("/orders/{id}", h.Orders.UpdateOrder)
		r.Delete("/orders/{id}", h.Orders.DeleteOrder)

		// Nested line item and manufacturing operations.
		r.Post("/orders/{id}/line-items", h.Orders.AddLineItem)
		r.Patch("/orders/{id}/line-items/{lineItemId}", h.Orders.UpdateLineItem)
		r.Delete("/orders/{id}/line-items/{lineItemId}", h.Orders.RemoveLineItem)
		r.Get("/orders/{id}/manufacturing", h.Orders.GetManufacturing)
		r.Put("/orders/{id}/manufacturing", h.Orders.UpsertManufacturing)

		// Design jobs.
		r.Get("/design-jobs", h.DesignJobs.ListDesignJobs)
		r.Post("/design-jobs", h.DesignJobs.CreateDesignJob)
		r.Get("/design-jobs/{id}", h.DesignJobs.GetDesignJob)
		r.Patch("/design-jobs/{id}", h.DesignJobs.UpdateDesignJob)

		// Validation. Static paths are registered before the
		// {entityType}/{id} pattern; chi prefers them regardless.
		r.Post("/validation/bulk", h.Validation.BulkValidate)
		r.Get("/validation/summaries", h.Validation.ListSummaries)
		r.Delete("/validation/expired", h.Validation.PurgeExpired)
		r.Post("/validation/{entityType}/{id}", h.Validation.Validate)
		r.Get("/validation/{entityType}/{id}", h.Validation.GetReport)
	})

	return r
}
