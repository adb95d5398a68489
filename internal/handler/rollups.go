package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"matchstats/internal/filter"
	"matchstats/internal/repository"
)

// RollupHandler exposes the precomputed day/month/team aggregates. Filters
// outside a rollup's grain (odds expressions in particular) are accepted and
// ignored.
type RollupHandler struct {
	Repo       repository.RollupReader
	Normalizer *filter.Normalizer
	Logger     *zap.Logger
}

func (h *RollupHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/stats")
	group.GET("/daily", h.dailyStats)
	group.GET("/monthly", h.monthlyStats)
	group.GET("/teams", h.teamStats)
}

// @Summary Per-day match counts by league
// @Tags stats
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/daily [get]
func (h *RollupHandler) dailyStats(c *gin.Context) {
	spec := h.Normalizer.Normalize(rawFilterBag(c))
	items, err := h.Repo.DailyStats(c.Request.Context(), spec)
	if err != nil {
		h.Logger.Error("daily stats failed", zap.Error(err))
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Per-month match counts by league
// @Tags stats
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/monthly [get]
func (h *RollupHandler) monthlyStats(c *gin.Context) {
	spec := h.Normalizer.Normalize(rawFilterBag(c))
	items, err := h.Repo.MonthlyLeagueStats(c.Request.Context(), spec)
	if err != nil {
		h.Logger.Error("monthly stats failed", zap.Error(err))
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Per-team match counts by venue
// @Tags stats
// @Success 200 {object} handler.apiResponse
// @Router /api/v1/stats/teams [get]
func (h *RollupHandler) teamStats(c *gin.Context) {
	spec := h.Normalizer.Normalize(rawFilterBag(c))
	items, err := h.Repo.TeamStats(c.Request.Context(), spec)
	if err != nil {
		h.Logger.Error("team stats failed", zap.Error(err))
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}
