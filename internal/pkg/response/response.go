package response

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination mirrors the list-endpoint contract: current page, total pages,
// total row count.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{Current: page, Pages: pages, Total: total}
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Message is used on mutations: the envelope carries a human-readable message
// alongside the resource.
func Message(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// List adds a count field for unpaginated list endpoints.
func List(c *gin.Context, statusCode int, count int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// Paginated adds pagination metadata for skip/limit list endpoints.
func Paginated(c *gin.Context, statusCode int, p Pagination, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

// ValidationError reports per-field validation failures.
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

func Error(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(statusCode, body)
}

// Conflict reports a duplicate-resource failure with the existing resource
// attached, so idempotent generators can surface what already exists.
func Conflict(c *gin.Context, statusCode int, message string, existing interface{}) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"data":    existing,
	})
}
