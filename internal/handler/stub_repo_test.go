package handler

import (
	"context"

	"matchstats/internal/filter"
	"matchstats/internal/models"
	"matchstats/internal/query"
	"matchstats/internal/repository"
)

// stubRepo serves canned rows and evaluates counts from the same plan for
// listings and stats, mirroring the real store's shared-predicate contract.
type stubRepo struct {
	matches []models.MatchRecord
	leagues []models.LeagueRollup
	daily   []models.DailyRollup
	monthly []models.MonthlyLeagueRollup
	teams   []models.TeamRollup
	err     error
}

func (s *stubRepo) FindMatches(_ context.Context, spec filter.FilterSpec) (repository.MatchPage, error) {
	if s.err != nil {
		return repository.MatchPage{}, s.err
	}
	plan := query.Build(spec)
	return repository.MatchPage{
		Data:  s.matches,
		Total: int64(len(s.matches)),
		Page:  spec.Page,
		Limit: plan.Limit,
	}, nil
}

func (s *stubRepo) AggregatedStats(_ context.Context, spec filter.FilterSpec) (models.AggregatedStats, error) {
	if s.err != nil {
		return models.AggregatedStats{}, s.err
	}
	return models.AggregatedStats{TotalMatches: int64(len(s.matches))}, nil
}

func (s *stubRepo) TopLeagues(_ context.Context, limit int) ([]models.LeagueRollup, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && limit < len(s.leagues) {
		return s.leagues[:limit], nil
	}
	return s.leagues, nil
}

func (s *stubRepo) SearchLeagues(_ context.Context, term string) ([]models.LeagueRollup, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.leagues, nil
}

func (s *stubRepo) DailyStats(_ context.Context, spec filter.FilterSpec) ([]models.DailyRollup, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.daily, nil
}

func (s *stubRepo) MonthlyLeagueStats(_ context.Context, spec filter.FilterSpec) ([]models.MonthlyLeagueRollup, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.monthly, nil
}

func (s *stubRepo) TeamStats(_ context.Context, spec filter.FilterSpec) ([]models.TeamRollup, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.teams, nil
}

var _ repository.Repository = (*stubRepo)(nil)
