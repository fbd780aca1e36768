package auth

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
	rg.POST("/users/register", h.Register)
	rg.POST("/users/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:id", h.GetByID)
	rg.PUT("/users/:id", h.Update)
}

// RegisterAdminRoutes holds the endpoints restricted to the admin role.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.DELETE("/users/:id", h.Delete)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "User registration failed", err)
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if err == ErrEmailAlreadyExists {
			response.Error(c, http.StatusConflict, "User registration failed", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "User registration failed", err)
		return
	}

	response.Message(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "User login failed", err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "User login failed", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "User login failed", err)
		return
	}

	response.Message(c, http.StatusOK, "User logged in successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "User not found", err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Users not found", err)
		return
	}

	response.List(c, http.StatusOK, len(users), users)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "User update failed", err)
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, "User update failed", err)
		return
	}

	response.Message(c, http.StatusOK, "User updated successfully", user)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "User deletion failed", err)
		return
	}

	response.Message(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *Handler) fail(c *gin.Context, message string, err error) {
	switch err {
	case ErrUserNotFound:
		response.Error(c, http.StatusNotFound, message, err)
	default:
		response.Error(c, http.StatusInternalServerError, message, err)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID", err)
		return 0, false
	}
	return id, true
}
