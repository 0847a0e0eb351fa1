package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appstorefront "github.com/storefront/backend/internal/application/storefront"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// InventoryHandler handles the admin inventory write path
type InventoryHandler struct {
	BaseHandler
	inventoryService *appstorefront.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *appstorefront.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Set overwrites the stock counter for a menu item
func (h *InventoryHandler) Set(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item id format")
		return
	}

	var req appstorefront.SetInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	row, err := h.inventoryService.Set(c.Request.Context(), middleware.GetActor(c), id, *req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, row)
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/menu", middleware.RequirePrivileged())
	{
		admin.PUT("/:id/inventory", h.Set)
	}
}
