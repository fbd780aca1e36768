package project

import (
	"mime/multipart"
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
	rg.GET("/projects", h.List)
	rg.GET("/projects/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.Create)
	rg.PUT("/projects/:id", h.Update)
	rg.DELETE("/projects/:id", h.Delete)
	rg.DELETE("/projects/:id/images", h.RemoveImage)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Project creation failed", err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req, formImages(c))
	if err != nil {
		h.fail(c, "Project creation failed", err)
		return
	}

	response.Message(c, http.StatusCreated, "Project created successfully", p)
}

func (h *Handler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch projects", err)
		return
	}

	response.List(c, http.StatusOK, len(projects), projects)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to fetch project", err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Project update failed", err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, c.GetInt64("user_id"), req, formImages(c))
	if err != nil {
		h.fail(c, "Project update failed", err)
		return
	}

	response.Message(c, http.StatusOK, "Project updated successfully", p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		h.fail(c, "Project deletion failed", err)
		return
	}

	response.Message(c, http.StatusOK, "Project deleted successfully", nil)
}

func (h *Handler) RemoveImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RemoveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to remove image", err)
		return
	}

	p, err := h.service.RemoveImage(c.Request.Context(), id, c.GetInt64("user_id"), req.Image)
	if err != nil {
		h.fail(c, "Failed to remove image", err)
		return
	}

	response.Message(c, http.StatusOK, "Image removed successfully", p)
}

func (h *Handler) fail(c *gin.Context, message string, err error) {
	switch err {
	case ErrValidation, ErrImageLimit:
		response.Error(c, http.StatusBadRequest, message, err)
	case ErrProjectNotFound, ErrImageNotFound:
		response.Error(c, http.StatusNotFound, message, err)
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}

// formImages collects the uploaded "images" parts; a JSON body simply yields
// none.
func formImages(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid project ID", err)
		return 0, false
	}
	return id, true
}
