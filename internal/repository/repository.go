package repository

import (
	"context"

	"matchstats/internal/filter"
	"matchstats/internal/models"
)

// MatchPage is one page of filtered matches plus the size of the full
// filtered population (Total is independent of Limit).
type MatchPage struct {
	Data  []models.MatchRecord
	Total int64
	Page  int
	Limit int
}

// MatchRepository answers listing and aggregate queries over the match
// table. Both operations derive their predicate from the same query plan, so
// FindMatches(F).Total always equals AggregatedStats(F).TotalMatches.
type MatchRepository interface {
	FindMatches(ctx context.Context, spec filter.FilterSpec) (MatchPage, error)
	AggregatedStats(ctx context.Context, spec filter.FilterSpec) (models.AggregatedStats, error)
}

// RollupReader serves precomputed league/day/month/team aggregates. These
// reads never touch the match table; each honors only the FilterSpec fields
// at its own grain and ignores the rest (a daily rollup cannot be narrowed
// by an odds value).
type RollupReader interface {
	TopLeagues(ctx context.Context, limit int) ([]models.LeagueRollup, error)
	SearchLeagues(ctx context.Context, term string) ([]models.LeagueRollup, error)
	DailyStats(ctx context.Context, spec filter.FilterSpec) ([]models.DailyRollup, error)
	MonthlyLeagueStats(ctx context.Context, spec filter.FilterSpec) ([]models.MonthlyLeagueRollup, error)
	TeamStats(ctx context.Context, spec filter.FilterSpec) ([]models.TeamRollup, error)
}

type Repository interface {
	MatchRepository
	RollupReader
}
