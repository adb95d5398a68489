package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"matchstats/internal/repository"
	"matchstats/internal/service"
)

type LeagueHandler struct {
	Repo   repository.RollupReader
	Cache  *service.LeagueCache
	Logger *zap.Logger
}

func (h *LeagueHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/leagues")
	group.GET("/top", h.topLeagues)
	group.GET("/search", h.searchLeagues)
}

// @Summary Leagues by match count
// @Tags leagues
// @Param limit query int false "maximum leagues returned"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/leagues/top [get]
func (h *LeagueHandler) topLeagues(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	if h.Cache != nil {
		if items, ok := h.Cache.Top(limit); ok {
			Ok(c, items, map[string]any{"source": "cache"})
			return
		}
	}
	items, err := h.Repo.TopLeagues(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("top leagues failed", zap.Error(err))
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Search leagues by name
// @Tags leagues
// @Param q query string true "case-insensitive substring"
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/leagues/search [get]
func (h *LeagueHandler) searchLeagues(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	items, err := h.Repo.SearchLeagues(c.Request.Context(), term)
	if err != nil {
		h.Logger.Error("league search failed", zap.Error(err))
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}
