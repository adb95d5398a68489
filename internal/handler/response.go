package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"matchstats/internal/models"
)

type apiResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// MatchesResponse is the listing envelope: data plus the total of the full
// filtered population, echoing the page and limit actually applied.
type MatchesResponse struct {
	Success bool                 `json:"success"`
	Data    []models.MatchRecord `json:"data"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
	Error   string               `json:"error,omitempty"`
}

func Ok(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusOK, apiResponse{
		Code:    0,
		Message: "ok",
		Data:    data,
		Meta:    meta,
	})
}

func Error(c *gin.Context, status int, message string, meta map[string]any) {
	c.JSON(status, apiResponse{
		Code:    status,
		Message: message,
		Meta:    meta,
	})
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// rawFilterBag folds the query string into the loosely typed filter bag the
// normalizer consumes: repeated parameters stay arrays, single values become
// plain strings.
func rawFilterBag(c *gin.Context) map[string]any {
	raw := make(map[string]any)
	for key, values := range c.Request.URL.Query() {
		switch len(values) {
		case 0:
		case 1:
			raw[key] = values[0]
		default:
			raw[key] = values
		}
	}
	return raw
}
