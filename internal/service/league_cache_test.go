package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"matchstats/internal/filter"
	"matchstats/internal/models"
)

type stubRollups struct {
	leagues []models.LeagueRollup
	err     error
	calls   int
}

func (s *stubRollups) TopLeagues(_ context.Context, limit int) ([]models.LeagueRollup, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && limit < len(s.leagues) {
		return s.leagues[:limit], nil
	}
	return s.leagues, nil
}

func (s *stubRollups) SearchLeagues(context.Context, string) ([]models.LeagueRollup, error) {
	return nil, nil
}

func (s *stubRollups) DailyStats(context.Context, filter.FilterSpec) ([]models.DailyRollup, error) {
	return nil, nil
}

func (s *stubRollups) MonthlyLeagueStats(context.Context, filter.FilterSpec) ([]models.MonthlyLeagueRollup, error) {
	return nil, nil
}

func (s *stubRollups) TeamStats(context.Context, filter.FilterSpec) ([]models.TeamRollup, error) {
	return nil, nil
}

func TestLeagueCache_ColdThenWarm(t *testing.T) {
	repo := &stubRollups{leagues: []models.LeagueRollup{
		{League: "Premier League", MatchCount: 9000},
		{League: "La Liga", MatchCount: 8000},
		{League: "Serie A", MatchCount: 7000},
	}}
	cache := &LeagueCache{Repo: repo, Logger: zap.NewNop()}

	if _, ok := cache.Top(2); ok {
		t.Fatalf("cold cache served data")
	}
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	items, ok := cache.Top(2)
	if !ok || len(items) != 2 {
		t.Fatalf("items=%v ok=%v", items, ok)
	}
	if items[0].League != "Premier League" {
		t.Fatalf("order broken: %v", items)
	}
}

func TestLeagueCache_RefreshFailureKeepsSnapshot(t *testing.T) {
	repo := &stubRollups{leagues: []models.LeagueRollup{{League: "Serie A", MatchCount: 10}}}
	cache := &LeagueCache{Repo: repo, Logger: zap.NewNop()}
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	repo.err = errors.New("store down")
	if err := cache.Refresh(context.Background()); err == nil {
		t.Fatalf("want refresh error")
	}
	items, ok := cache.Top(0)
	if !ok || len(items) != 1 || items[0].League != "Serie A" {
		t.Fatalf("snapshot lost: %v ok=%v", items, ok)
	}
}
