package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appstorefront "github.com/storefront/backend/internal/application/storefront"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// MenuHandler handles public menu reads and admin menu mutations
type MenuHandler struct {
	BaseHandler
	menuService *appstorefront.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *appstorefront.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns the full menu of an outlet, unavailable items included
func (h *MenuHandler) List(c *gin.Context) {
	outletIDStr := c.Query("outletId")
	if outletIDStr == "" {
		h.BadRequest(c, "Outlet id is required")
		return
	}

	outletID, err := uuid.Parse(outletIDStr)
	if err != nil {
		h.BadRequest(c, "Invalid outlet id format")
		return
	}

	items, err := h.menuService.ListByOutlet(c.Request.Context(), outletID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// AdminList returns the menu for the actor's effective outlet
func (h *MenuHandler) AdminList(c *gin.Context) {
	requestedOutletID, ok := h.optionalOutletID(c)
	if !ok {
		return
	}

	items, err := h.menuService.AdminList(c.Request.Context(), middleware.GetActor(c), requestedOutletID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// Create creates a menu item in the actor's effective outlet
func (h *MenuHandler) Create(c *gin.Context) {
	var req appstorefront.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// Update applies a partial update to a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item id format")
		return
	}

	var req appstorefront.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), middleware.GetActor(c), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete removes a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item id format")
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// optionalOutletID parses the outletId query parameter when present.
// The second return value is false when the request was already rejected.
func (h *MenuHandler) optionalOutletID(c *gin.Context) (*uuid.UUID, bool) {
	outletIDStr := c.Query("outletId")
	if outletIDStr == "" {
		return nil, true
	}

	outletID, err := uuid.Parse(outletIDStr)
	if err != nil {
		h.BadRequest(c, "Invalid outlet id format")
		return nil, false
	}
	return &outletID, true
}

// RegisterRoutes registers menu routes
func (h *MenuHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", h.List)

	admin := rg.Group("/admin/menu", middleware.RequirePrivileged())
	{
		admin.GET("", h.AdminList)
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
