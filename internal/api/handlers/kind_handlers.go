package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reeyo/internal/domain/entities"
	"reeyo/internal/services"
)

// CustomerHandler adds the customer-only endpoints.
type CustomerHandler struct {
	*EntityHandler[entities.Customer, entities.CustomerDetails]
	mutations *services.CustomerMutations
}

func NewCustomerHandler(shared *EntityHandler[entities.Customer, entities.CustomerDetails], mutations *services.CustomerMutations) *CustomerHandler {
	return &CustomerHandler{EntityHandler: shared, mutations: mutations}
}

// ToggleStatus handles POST /api/customers/:id/toggle-status
func (h *CustomerHandler) ToggleStatus(c *gin.Context) {
	updated, err := h.mutations.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) Register(group *gin.RouterGroup) {
	h.EntityHandler.Register(group)
	group.POST("/:id/toggle-status", h.ToggleStatus)
}

// RiderHandler adds the rider-only endpoints.
type RiderHandler struct {
	*EntityHandler[entities.Rider, entities.RiderDetails]
	mutations *services.RiderMutations
}

func NewRiderHandler(shared *EntityHandler[entities.Rider, entities.RiderDetails], mutations *services.RiderMutations) *RiderHandler {
	return &RiderHandler{EntityHandler: shared, mutations: mutations}
}

// ToggleStatus handles POST /api/riders/:id/toggle-status
func (h *RiderHandler) ToggleStatus(c *gin.Context) {
	updated, err := h.mutations.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// VerificationRequest is the body of PATCH /api/riders/:id/verification.
// Value is a pointer so an explicit false is distinguishable from a missing
// field.
type VerificationRequest struct {
	Flag  string `json:"flag" binding:"required"`
	Value *bool  `json:"value" binding:"required"`
}

// SetVerification handles PATCH /api/riders/:id/verification
func (h *RiderHandler) SetVerification(c *gin.Context) {
	var req VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.mutations.SetVerificationFlag(c.Request.Context(), c.Param("id"), entities.RiderFlag(req.Flag), *req.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RiderHandler) Register(group *gin.RouterGroup) {
	h.EntityHandler.Register(group)
	group.POST("/:id/toggle-status", h.ToggleStatus)
	group.PATCH("/:id/verification", h.SetVerification)
}

// VendorHandler adds the vendor-only endpoints.
type VendorHandler struct {
	*EntityHandler[entities.Vendor, entities.VendorDetails]
	mutations *services.VendorMutations
}

func NewVendorHandler(shared *EntityHandler[entities.Vendor, entities.VendorDetails], mutations *services.VendorMutations) *VendorHandler {
	return &VendorHandler{EntityHandler: shared, mutations: mutations}
}

// CommissionRequest is the body of PATCH /api/vendors/:id/commission
type CommissionRequest struct {
	Rate *float64 `json:"rate" binding:"required"`
}

// SetCommission handles PATCH /api/vendors/:id/commission
func (h *VendorHandler) SetCommission(c *gin.Context) {
	var req CommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.mutations.SetCommissionRate(c.Request.Context(), c.Param("id"), *req.Rate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *VendorHandler) Register(group *gin.RouterGroup) {
	h.EntityHandler.Register(group)
	group.PATCH("/:id/commission", h.SetCommission)
}
