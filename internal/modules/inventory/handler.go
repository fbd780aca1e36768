package inventory

import (
	"net/http"
	"strconv"

	"furnistore/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/furniture", h.List)
	rg.GET("/furniture/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/furniture", h.Create)
	rg.PUT("/furniture/:id", h.Update)
	rg.DELETE("/furniture/:id", h.Delete)

	rg.POST("/furniture/:id/subfurniture", h.AddSubItem)
	rg.PUT("/furniture/:id/subfurniture/:subId", h.UpdateSubItem)
	rg.DELETE("/furniture/:id/subfurniture/:subId", h.DeleteSubItem)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Furniture creation failed", err)
		return
	}

	f, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, "Furniture creation failed", err)
		return
	}

	response.Message(c, http.StatusCreated, "Furniture created successfully", f)
}

func (h *Handler) List(c *gin.Context) {
	furniture, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch furniture items", err)
		return
	}

	response.List(c, http.StatusOK, len(furniture), furniture)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to fetch furniture", err)
		return
	}

	response.Success(c, http.StatusOK, f)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Furniture update failed", err)
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		h.fail(c, "Furniture update failed", err)
		return
	}

	response.Message(c, http.StatusOK, "Furniture updated successfully", f)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "Furniture deletion failed", err)
		return
	}

	response.Message(c, http.StatusOK, "Furniture deleted successfully", nil)
}

func (h *Handler) AddSubItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AddSubFurnitureRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to add SubFurniture", err)
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	f, err := h.service.AddSubItem(c.Request.Context(), id, req, image)
	if err != nil {
		h.fail(c, "Failed to add SubFurniture", err)
		return
	}

	response.Message(c, http.StatusOK, "SubFurniture added successfully", f)
}

func (h *Handler) UpdateSubItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateSubFurnitureRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to update SubFurniture", err)
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	f, err := h.service.UpdateSubItem(c.Request.Context(), id, c.Param("subId"), req, image)
	if err != nil {
		h.fail(c, "Failed to update SubFurniture", err)
		return
	}

	response.Message(c, http.StatusOK, "SubFurniture updated successfully", f)
}

func (h *Handler) DeleteSubItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	f, err := h.service.DeleteSubItem(c.Request.Context(), id, c.Param("subId"))
	if err != nil {
		h.fail(c, "Failed to delete SubFurniture", err)
		return
	}

	response.Message(c, http.StatusOK, "SubFurniture deleted successfully", f)
}

func (h *Handler) fail(c *gin.Context, message string, err error) {
	switch err {
	case ErrValidation, ErrImageRequired:
		response.Error(c, http.StatusBadRequest, message, err)
	case ErrFurnitureNotFound, ErrSubFurnitureNotFound:
		response.Error(c, http.StatusNotFound, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid furniture ID", err)
		return 0, false
	}
	return id, true
}
