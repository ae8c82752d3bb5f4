package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// pembulatan ke atas: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:    true,
		Data:  data,
		Meta:  meta,
		Error: nil,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:    false,
		Error: errorBody(errorCode, message, details),
	})
}

// Fail is Error with a body that is still meaningful to the caller, e.g. an
// empty list on 404 or {"size":0} when a file is missing. data must be
// non-nil for it to be rendered.
func Fail(c *gin.Context, status int, data interface{}, errorCode string, message string) {
	c.JSON(status, ApiEnvelope{
		Ok:    false,
		Data:  data,
		Error: errorBody(errorCode, message, nil),
	})
}

func errorBody(code, message string, details interface{}) map[string]interface{} {
	return map[string]interface{}{
		"code":    code,
		"message": message,
		"details": details,
	}
}
