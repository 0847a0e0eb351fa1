package handler

import (
	"github.com/gin-gonic/gin"

	appstorefront "github.com/storefront/backend/internal/application/storefront"
)

// OutletHandler handles outlet discovery endpoints
type OutletHandler struct {
	BaseHandler
	outletService *appstorefront.OutletService
}

// NewOutletHandler creates a new OutletHandler
func NewOutletHandler(outletService *appstorefront.OutletService) *OutletHandler {
	return &OutletHandler{outletService: outletService}
}

// List returns all outlets matching the pincode exactly, newest first.
// No match is an empty list, not an error.
func (h *OutletHandler) List(c *gin.Context) {
	pincode := c.Query("pincode")
	if pincode == "" {
		h.BadRequest(c, "Pincode is required")
		return
	}

	outlets, err := h.outletService.ListByPincode(c.Request.Context(), pincode)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, outlets)
}

// RegisterRoutes registers outlet routes
func (h *OutletHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/outlets", h.List)
}
