package gormrepository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"matchstats/internal/filter"
	"matchstats/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// One connection keeps the in-memory database alive for the whole test.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.LeagueRollup{}, &models.TeamRollup{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, 0)
}

func seed[T any](t *testing.T, store *Store, rows []T) {
	t.Helper()
	if err := store.db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestSearchLeagues_CaseInsensitiveOrdered(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, []models.LeagueRollup{
		{League: "English Premier League 2", MatchCount: 1200},
		{League: "Premier League", MatchCount: 9000},
		{League: "Serie A", MatchCount: 7000},
	})

	for _, term := range []string{"premier", "PREMIER"} {
		items, err := store.SearchLeagues(context.Background(), term)
		if err != nil {
			t.Fatalf("search %q: %v", term, err)
		}
		if len(items) != 2 {
			t.Fatalf("search %q: %d rows, want 2: %v", term, len(items), items)
		}
		if items[0].League != "Premier League" || items[1].League != "English Premier League 2" {
			t.Fatalf("search %q order: %v", term, items)
		}
	}

	items, err := store.SearchLeagues(context.Background(), "serie")
	if err != nil {
		t.Fatalf("search serie: %v", err)
	}
	if len(items) != 1 || items[0].League != "Serie A" {
		t.Fatalf("search serie: %v", items)
	}
}

func TestTeamStats_HomeAndAwayTogether(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, []models.TeamRollup{
		{Team: "Arsenal", Venue: "home", League: "Premier League", MatchCount: 190},
		{Team: "Chelsea", Venue: "away", League: "Premier League", MatchCount: 180},
		{Team: "Liverpool", Venue: "home", League: "Premier League", MatchCount: 170},
	})

	// Both sides set selects the union of the two venue partitions.
	items, err := store.TeamStats(context.Background(), filter.FilterSpec{
		HomeTeam: "Arsenal",
		AwayTeam: "Chelsea",
	})
	if err != nil {
		t.Fatalf("team stats: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("%d rows, want 2: %v", len(items), items)
	}
	if items[0].Team != "Arsenal" || items[1].Team != "Chelsea" {
		t.Fatalf("order: %v", items)
	}
}

func TestTeamStats_SingleSide(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, []models.TeamRollup{
		{Team: "Arsenal", Venue: "home", League: "Premier League", MatchCount: 190},
		{Team: "Arsenal", Venue: "away", League: "Premier League", MatchCount: 185},
		{Team: "Liverpool", Venue: "home", League: "Premier League", MatchCount: 170},
	})

	items, err := store.TeamStats(context.Background(), filter.FilterSpec{HomeTeam: "arsenal"})
	if err != nil {
		t.Fatalf("team stats: %v", err)
	}
	if len(items) != 1 || items[0].Team != "Arsenal" || items[0].Venue != "home" {
		t.Fatalf("rows: %v", items)
	}

	items, err = store.TeamStats(context.Background(), filter.FilterSpec{AwayTeam: "arsenal"})
	if err != nil {
		t.Fatalf("team stats: %v", err)
	}
	if len(items) != 1 || items[0].Venue != "away" {
		t.Fatalf("rows: %v", items)
	}
}
