// Package api wires the dashboard's handlers onto a gin engine.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"reeyo/internal/api/handlers"
	"reeyo/internal/api/middleware"
	"reeyo/internal/app"
	"reeyo/internal/domain/entities"
)

type Router struct {
	app             *app.App
	authHandler     *handlers.AuthHandler
	overviewHandler *handlers.OverviewHandler
	customerHandler *handlers.CustomerHandler
	riderHandler    *handlers.RiderHandler
	vendorHandler   *handlers.VendorHandler
}

func NewRouter(a *app.App) *Router {
	reload := func(kind entities.Kind) func(ctx context.Context) error {
		return func(ctx context.Context) error { return a.Reload(ctx, kind) }
	}

	return &Router{
		app:             a,
		authHandler:     handlers.NewAuthHandler(a.Auth),
		overviewHandler: handlers.NewOverviewHandler(a.Overview, a.Audit),
		customerHandler: handlers.NewCustomerHandler(
			handlers.NewEntityHandler(a.Customers, a.CustomerMutations, reload(entities.KindCustomer)),
			a.CustomerMutations,
		),
		riderHandler: handlers.NewRiderHandler(
			handlers.NewEntityHandler(a.Riders, a.RiderMutations, reload(entities.KindRider)),
			a.RiderMutations,
		),
		vendorHandler: handlers.NewVendorHandler(
			handlers.NewEntityHandler(a.Vendors, a.VendorMutations, reload(entities.KindVendor)),
			a.VendorMutations,
		),
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.Tracing(), middleware.RequestID())

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		loaded := gin.H{}
		stores := []interface {
			Kind() entities.Kind
			Len() int
		}{r.app.Customers.Store, r.app.Riders.Store, r.app.Vendors.Store}
		for _, s := range stores {
			loaded[s.Kind().Plural()] = s.Len()
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "records": loaded, "locks_held": r.app.Locks.Held()})
	})

	engine.POST("/auth/login", r.authHandler.Login)

	// Protected routes
	api := engine.Group("/api")
	api.Use(middleware.RequireAdmin(r.app.Auth))
	{
		api.POST("/auth/logout", r.authHandler.Logout)
		api.GET("/auth/me", r.authHandler.Me)
		api.GET("/overview", r.overviewHandler.Overview)
		api.GET("/audit", r.overviewHandler.Audit)

		r.customerHandler.Register(api.Group("/customers"))
		r.riderHandler.Register(api.Group("/riders"))
		r.vendorHandler.Register(api.Group("/vendors"))
	}
}
