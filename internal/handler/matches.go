package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"matchstats/internal/filter"
	"matchstats/internal/models"
	"matchstats/internal/repository"
)

type MatchHandler struct {
	Repo       repository.MatchRepository
	Normalizer *filter.Normalizer
	Logger     *zap.Logger
}

func (h *MatchHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1/matches")
	group.GET("", h.listMatches)
	group.GET("/stats", h.matchStats)
}

// @Summary List historical matches
// @Description Paginated match listing. Filters: leagues (repeatable), dateFrom/dateTo (year granularity), timeFrom/timeTo, homeTeam, awayTeam, teamSearch, and one comparison expression per registered odds market (e.g. ft_home_odds=">1.7", over_25_odds="1.5-2.5"). Malformed filters are ignored.
// @Tags matches
// @Param page query int false "page number, 1-based"
// @Param limit query int false "page size, clamped to [1,1000]"
// @Success 200 {object} handler.MatchesResponse
// @Router /api/v1/matches [get]
func (h *MatchHandler) listMatches(c *gin.Context) {
	spec := h.Normalizer.Normalize(rawFilterBag(c))
	page, err := h.Repo.FindMatches(c.Request.Context(), spec)
	if err != nil {
		h.Logger.Error("match listing failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, MatchesResponse{Error: err.Error()})
		return
	}
	data := page.Data
	if data == nil {
		data = []models.MatchRecord{}
	}
	c.JSON(http.StatusOK, MatchesResponse{
		Success: true,
		Data:    data,
		Total:   page.Total,
		Page:    page.Page,
		Limit:   page.Limit,
	})
}

// @Summary Aggregated statistics for a filter
// @Description Outcome-flag hit counts and percentages, average close odds per core market, and unique league/team counts over the same population the listing endpoint would return for identical filters.
// @Tags matches
// @Success 200 {object} models.AggregatedStats
// @Router /api/v1/matches/stats [get]
func (h *MatchHandler) matchStats(c *gin.Context) {
	spec := h.Normalizer.Normalize(rawFilterBag(c))
	stats, err := h.Repo.AggregatedStats(c.Request.Context(), spec)
	if err != nil {
		h.Logger.Error("match stats failed", zap.Error(err))
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, stats, nil)
}
