package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"reeyo/internal/api/middleware"
	"reeyo/internal/app"
	"reeyo/internal/domain/entities"
	"reeyo/internal/services"
	"reeyo/internal/view"
)

// StatusSetter is the status mutation every kind supports.
type StatusSetter[T entities.Entity] interface {
	SetStatus(ctx context.Context, id, status string) (T, error)
}

// EntityHandler serves the endpoints shared by every entity kind. T is the
// entity and D its detail bundle.
//
// Go Learning Note — Generic Handlers:
// Methods of a generic type can be used as gin.HandlerFunc values once the
// type is instantiated, so EntityHandler[entities.Vendor, ...].List is an
// ordinary func(*gin.Context).
type EntityHandler[T entities.Entity, D any] struct {
	collection app.Collection[T, D]
	status     StatusSetter[T]
	reload     func(ctx context.Context) error
}

// NewEntityHandler creates the shared handler for one collection.
func NewEntityHandler[T entities.Entity, D any](collection app.Collection[T, D], status StatusSetter[T], reload func(ctx context.Context) error) *EntityHandler[T, D] {
	return &EntityHandler[T, D]{collection: collection, status: status, reload: reload}
}

// ListQuery holds the list and export query parameters.
type ListQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Sort   string `form:"sort"`
	Order  string `form:"order"`
}

// ListResponse is the list view plus the caller's current selection, both
// read from the same version of the store. Total counts the matching rows
// and Stored the whole collection, for "Showing Total of Stored".
type ListResponse[T entities.Entity, D any] struct {
	Items     []T                  `json:"items"`
	Total     int                  `json:"total"`
	Stored    int                  `json:"stored"`
	Selection *view.Snapshot[T, D] `json:"selection,omitempty"`
}

func (h *EntityHandler[T, D]) parseQuery(c *gin.Context) (services.Filter, services.Ordering, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return services.Filter{}, services.Ordering{}, false
	}
	ordering, err := services.ParseOrdering(q.Sort, q.Order)
	if err != nil {
		writeError(c, err)
		return services.Filter{}, services.Ordering{}, false
	}
	return services.Filter{Search: q.Search, Status: q.Status}, ordering, true
}

// List handles GET /api/{kind}
func (h *EntityHandler[T, D]) List(c *gin.Context) {
	filter, ordering, ok := h.parseQuery(c)
	if !ok {
		return
	}

	session := middleware.GetSessionID(c)
	var selection *view.Snapshot[T, D]
	var stored int
	items, err := h.collection.Query.QueryWith(c.Request.Context(), filter, ordering, func(n int) {
		stored = n
		if panel, found := h.collection.Panels.Lookup(session); found {
			snap := panel.Snapshot()
			selection = &snap
		}
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse[T, D]{Items: items, Total: len(items), Stored: stored, Selection: selection})
}

// Export handles GET /api/{kind}/export
func (h *EntityHandler[T, D]) Export(c *gin.Context) {
	filter, ordering, ok := h.parseQuery(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if _, err := h.collection.Export.Export(c.Request.Context(), &buf, filter, ordering); err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.collection.Export.Filename()+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Get handles GET /api/{kind}/:id
func (h *EntityHandler[T, D]) Get(c *gin.Context) {
	entity, err := h.collection.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// Details handles GET /api/{kind}/:id/details. It waits for the fetch.
func (h *EntityHandler[T, D]) Details(c *gin.Context) {
	details, err := h.collection.Details.Fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Select handles POST /api/{kind}/:id/select. The detail fetch continues in
// the background; poll GET /api/{kind}/selection for the result. An id the
// store does not hold is rejected with 404 and leaves the panel not_found.
func (h *EntityHandler[T, D]) Select(c *gin.Context) {
	panel := h.collection.Panels.Panel(middleware.GetSessionID(c))
	gen := panel.Open(c.Param("id"))
	snap := panel.Snapshot()

	if snap.State == view.StateNotFound {
		writeError(c, &entities.NotFoundError{Kind: h.collection.Store.Kind(), ID: c.Param("id")})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"generation":  gen,
		"selected_id": c.Param("id"),
		"state":       snap.State,
	})
}

// Selection handles GET /api/{kind}/selection
func (h *EntityHandler[T, D]) Selection(c *gin.Context) {
	panel, found := h.collection.Panels.Lookup(middleware.GetSessionID(c))
	if !found {
		c.JSON(http.StatusOK, view.Snapshot[T, D]{State: view.StateIdle})
		return
	}
	c.JSON(http.StatusOK, panel.Snapshot())
}

// CloseSelection handles DELETE /api/{kind}/selection
func (h *EntityHandler[T, D]) CloseSelection(c *gin.Context) {
	if panel, found := h.collection.Panels.Lookup(middleware.GetSessionID(c)); found {
		panel.Close()
	}
	c.Status(http.StatusNoContent)
}

// StatusRequest is the body of PATCH /api/{kind}/:id/status
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/{kind}/:id/status
func (h *EntityHandler[T, D]) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.status.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Reload handles POST /api/{kind}/reload
func (h *EntityHandler[T, D]) Reload(c *gin.Context) {
	if err := h.reload(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":     h.collection.Store.Len(),
		"loaded_at": h.collection.Store.LoadedAt(),
	})
}

// Register mounts the shared routes on group.
func (h *EntityHandler[T, D]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/export", h.Export)
	group.GET("/selection", h.Selection)
	group.DELETE("/selection", h.CloseSelection)
	group.POST("/reload", h.Reload)
	group.GET("/:id", h.Get)
	group.GET("/:id/details", h.Details)
	group.POST("/:id/select", h.Select)
	group.PATCH("/:id/status", h.UpdateStatus)
}
