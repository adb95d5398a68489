package gormrepository

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"matchstats/internal/filter"
	"matchstats/internal/models"
	"matchstats/internal/repository"
)

// Rollup reads answer league/date/team questions from precomputed tables
// maintained by the ingestion pipeline. None of them scan match_records, and
// none of them can honor odds filters: that detail is below their grain and
// is ignored, not rejected.

const defaultRollupLimit = 50

func (s *Store) TopLeagues(ctx context.Context, limit int) ([]models.LeagueRollup, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var items []models.LeagueRollup
	err := s.db.WithContext(ctx).
		Model(&models.LeagueRollup{}).
		Order("match_count DESC, league ASC").
		Limit(normalizeRollupLimit(limit)).
		Find(&items).Error
	if err != nil {
		return nil, repository.WrapQuery("top leagues", err)
	}
	return items, nil
}

func (s *Store) SearchLeagues(ctx context.Context, term string) ([]models.LeagueRollup, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	q := s.db.WithContext(ctx).Model(&models.LeagueRollup{})
	term = strings.TrimSpace(term)
	if term != "" {
		q = q.Where("LOWER(league) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	var items []models.LeagueRollup
	err := q.Order("match_count DESC, league ASC").
		Limit(normalizeRollupLimit(0)).
		Find(&items).Error
	if err != nil {
		return nil, repository.WrapQuery("search leagues", err)
	}
	return items, nil
}

func (s *Store) DailyStats(ctx context.Context, spec filter.FilterSpec) ([]models.DailyRollup, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	q := s.db.WithContext(ctx).Model(&models.DailyRollup{})
	q = applyLeagueGrain(q, spec)
	q = applyYearGrain(q, spec)
	var items []models.DailyRollup
	err := q.Order("year DESC, month DESC, day DESC, match_count DESC").
		Find(&items).Error
	if err != nil {
		return nil, repository.WrapQuery("daily stats", err)
	}
	return items, nil
}

func (s *Store) MonthlyLeagueStats(ctx context.Context, spec filter.FilterSpec) ([]models.MonthlyLeagueRollup, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	q := s.db.WithContext(ctx).Model(&models.MonthlyLeagueRollup{})
	q = applyLeagueGrain(q, spec)
	q = applyYearGrain(q, spec)
	var items []models.MonthlyLeagueRollup
	err := q.Order("year DESC, month DESC, match_count DESC").
		Find(&items).Error
	if err != nil {
		return nil, repository.WrapQuery("monthly league stats", err)
	}
	return items, nil
}

func (s *Store) TeamStats(ctx context.Context, spec filter.FilterSpec) ([]models.TeamRollup, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	q := s.db.WithContext(ctx).Model(&models.TeamRollup{})
	q = applyLeagueGrain(q, spec)
	// Home and away criteria target disjoint venue partitions, so when both
	// are present they select the union of the two partitions, never the
	// intersection.
	switch {
	case spec.HomeTeam != "" && spec.AwayTeam != "":
		q = q.Where(
			"(venue = 'home' AND LOWER(team) LIKE ?) OR (venue = 'away' AND LOWER(team) LIKE ?)",
			"%"+strings.ToLower(spec.HomeTeam)+"%",
			"%"+strings.ToLower(spec.AwayTeam)+"%",
		)
	case spec.HomeTeam != "":
		q = q.Where("venue = 'home' AND LOWER(team) LIKE ?", "%"+strings.ToLower(spec.HomeTeam)+"%")
	case spec.AwayTeam != "":
		q = q.Where("venue = 'away' AND LOWER(team) LIKE ?", "%"+strings.ToLower(spec.AwayTeam)+"%")
	}
	if spec.TeamSearch != "" {
		q = q.Where("LOWER(team) LIKE ?", "%"+strings.ToLower(spec.TeamSearch)+"%")
	}
	var items []models.TeamRollup
	err := q.Order("match_count DESC, team ASC").
		Find(&items).Error
	if err != nil {
		return nil, repository.WrapQuery("team stats", err)
	}
	return items, nil
}

func applyLeagueGrain(q *gorm.DB, spec filter.FilterSpec) *gorm.DB {
	if len(spec.Leagues) > 0 {
		q = q.Where("league IN ?", spec.Leagues)
	}
	return q
}

// applyYearGrain mirrors the year-only date semantics of the match table.
func applyYearGrain(q *gorm.DB, spec filter.FilterSpec) *gorm.DB {
	if y, ok := rollupYear(spec.DateFrom); ok {
		q = q.Where("year >= ?", y)
	}
	if y, ok := rollupYear(spec.DateTo); ok {
		q = q.Where("year <= ?", y)
	}
	return q
}

func rollupYear(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

func normalizeRollupLimit(limit int) int {
	if limit <= 0 {
		return defaultRollupLimit
	}
	if limit > 1000 {
		return 1000
	}
	return limit
}
