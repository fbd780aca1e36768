package report

import (
	"net/http"
	"strconv"

	"furnistore/internal/pkg/response"
	"furnistore/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.POST("/generate", h.Generate)
		reports.GET("/today", h.GetToday)
		reports.GET("/date/:date", h.GetByDate)
		reports.GET("", h.List)
		reports.PUT("/sold-items", h.UpdateSoldItems)
		reports.PUT("/signature", h.AddSignature)
	}
}

func (h *Handler) Generate(c *gin.Context) {
	var createdBy *int64
	if userID := c.GetInt64("user_id"); userID != 0 {
		createdBy = &userID
	}

	rep, err := h.service.Generate(c.Request.Context(), createdBy)
	if err != nil {
		if err == ErrReportExists {
			response.Conflict(c, http.StatusBadRequest, "Report for today already exists", rep)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to generate daily report", err)
		return
	}

	response.Message(c, http.StatusCreated, "Daily report generated successfully", rep)
}

func (h *Handler) GetToday(c *gin.Context) {
	rep, err := h.service.GetToday(c.Request.Context())
	if err != nil {
		if err == ErrReportNotFound {
			response.Error(c, http.StatusNotFound, "No report found for today", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch today's report", err)
		return
	}

	response.Success(c, http.StatusOK, rep)
}

func (h *Handler) GetByDate(c *gin.Context) {
	rep, err := h.service.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
		case ErrReportNotFound:
			response.Error(c, http.StatusNotFound, "No report found for the specified date", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to fetch report", err)
		}
		return
	}

	response.Success(c, http.StatusOK, rep)
}

func (h *Handler) UpdateSoldItems(c *gin.Context) {
	var req UpdateSoldItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	rep, err := h.service.UpdateSoldItems(c.Request.Context(), req.ItemUpdates)
	if err != nil {
		if err == ErrReportNotFound {
			response.Error(c, http.StatusNotFound, "No report found for today", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to update report", err)
		return
	}

	response.Message(c, http.StatusOK, "Report updated successfully", rep)
}

func (h *Handler) List(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	limit := 10
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	reports, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reports", err)
		return
	}

	response.Paginated(c, http.StatusOK, response.NewPagination(page, limit, total), reports)
}

func (h *Handler) AddSignature(c *gin.Context) {
	var req AddSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	rep, err := h.service.AddSignature(c.Request.Context(), req.Signature)
	if err != nil {
		if err == ErrReportNotFound {
			response.Error(c, http.StatusNotFound, "No report found for today", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to add signature", err)
		return
	}

	response.Message(c, http.StatusOK, "Signature added successfully", rep)
}
