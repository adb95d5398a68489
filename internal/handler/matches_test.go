package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"matchstats/internal/filter"
	"matchstats/internal/models"
	"matchstats/internal/repository"
)

func newTestEngine(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := &MatchHandler{
		Repo:       repo,
		Normalizer: filter.NewNormalizer(0),
		Logger:     zap.NewNop(),
	}
	h.Register(engine)
	return engine
}

func TestListMatches_Envelope(t *testing.T) {
	repo := &stubRepo{matches: []models.MatchRecord{
		{ID: 1, HomeTeam: "Arsenal", AwayTeam: "Chelsea", League: "Premier League", Year: 2021},
		{ID: 2, HomeTeam: "Milan", AwayTeam: "Inter", League: "Serie A", Year: 2021},
	}}
	engine := newTestEngine(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches?limit=10&page=1", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp MatchesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Total != 2 || len(resp.Data) != 2 {
		t.Fatalf("resp=%+v", resp)
	}
	if resp.Page != 1 || resp.Limit != 10 {
		t.Fatalf("page=%d limit=%d", resp.Page, resp.Limit)
	}
}

func TestListMatches_StoreFailure(t *testing.T) {
	repo := &stubRepo{err: repository.WrapQuery("list matches", errors.New("dial tcp: refused"))}
	engine := newTestEngine(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d want=502", w.Code)
	}
	var resp MatchesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("resp=%+v want success=false with error", resp)
	}
}

func TestListMatches_EmptyResultIsSuccess(t *testing.T) {
	engine := newTestEngine(&stubRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches?leagues=Nowhere+League", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp MatchesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success || resp.Total != 0 || resp.Error != "" {
		t.Fatalf("resp=%+v want empty success", resp)
	}
	// data stays an array even with zero rows.
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Fatalf("body=%s want data as empty array", w.Body.String())
	}
}

func TestStatsAndListingShareTotals(t *testing.T) {
	repo := &stubRepo{matches: []models.MatchRecord{{ID: 1}, {ID: 2}, {ID: 3}}}
	engine := newTestEngine(repo)

	for _, target := range []string{
		"/api/v1/matches",
		"/api/v1/matches?ft_home_odds=%3E1.6",
		"/api/v1/matches?leagues=Premier+League&over_25_odds=1.5-2.5",
	} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		var listing MatchesResponse
		if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
			t.Fatalf("unmarshal listing: %v", err)
		}

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/matches/stats", nil))
		var stats struct {
			Data models.AggregatedStats `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
			t.Fatalf("unmarshal stats: %v", err)
		}
		if listing.Total != stats.Data.TotalMatches {
			t.Fatalf("%s: listing total=%d stats total=%d", target, listing.Total, stats.Data.TotalMatches)
		}
	}
}

func TestRawFilterBag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	var got map[string]any
	engine.GET("/probe", func(c *gin.Context) {
		got = rawFilterBag(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe?leagues=A&leagues=B&homeTeam=X", nil)
	engine.ServeHTTP(w, req)

	if list, ok := got["leagues"].([]string); !ok || len(list) != 2 {
		t.Fatalf("leagues=%v", got["leagues"])
	}
	if got["homeTeam"] != "X" {
		t.Fatalf("homeTeam=%v", got["homeTeam"])
	}
}
