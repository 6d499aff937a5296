package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the standardized API response envelope.
type Response struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	RetryAfter string            `json:"retryAfter,omitempty"`
}

// Pagination holds list pagination metadata.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalMessages int  `json:"totalMessages"`
	HasNext       bool `json:"hasNext"`
	HasPrev       bool `json:"hasPrev"`
}

// NewPagination computes pagination metadata from page, per-page size and total count.
func NewPagination(page, limit, total int) *Pagination {
	totalPages := (total + limit - 1) / limit
	return &Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalMessages: total,
		HasNext:       page < totalPages,
		HasPrev:       page > 1,
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination sends a successful list response with pagination metadata.
func SuccessWithPagination(c *gin.Context, statusCode int, data interface{}, pagination *Pagination) {
	c.JSON(statusCode, Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Fail sends an error response for the given error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: GetMessage(code),
	})
}

// FailWithFields sends an error response aggregating all field-level
// validation messages.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: GetMessage(code),
		Errors:  fields,
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Message: GetMessage(code),
	})
}
