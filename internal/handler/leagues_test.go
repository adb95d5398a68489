package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"matchstats/internal/models"
	"matchstats/internal/service"
)

var errStore = errors.New("dial tcp: refused")

func leagueRouter(repo *stubRepo, cache *service.LeagueCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &LeagueHandler{Repo: repo, Cache: cache, Logger: zap.NewNop()}
	h.Register(r)
	return r
}

func TestTopLeagues_ServedFromCache(t *testing.T) {
	repo := &stubRepo{leagues: []models.LeagueRollup{
		{League: "Premier League", MatchCount: 9000},
		{League: "La Liga", MatchCount: 8000},
	}}
	cache := &service.LeagueCache{Repo: repo, Logger: zap.NewNop()}
	if err := cache.Refresh(context.Background()); err != nil {
		t.Fatalf("warm cache: %v", err)
	}
	// A broken repo proves the handler never reaches the store once warm.
	repo.err = errStore

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leagues/top?limit=1", nil)
	leagueRouter(repo, cache).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Code int                   `json:"code"`
		Data []models.LeagueRollup `json:"data"`
		Meta map[string]any        `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != 0 || len(body.Data) != 1 || body.Data[0].League != "Premier League" {
		t.Fatalf("body %+v", body)
	}
	if body.Meta["source"] != "cache" {
		t.Fatalf("meta %v", body.Meta)
	}
}

func TestTopLeagues_ColdCacheFallsBackToStore(t *testing.T) {
	repo := &stubRepo{leagues: []models.LeagueRollup{{League: "Serie A", MatchCount: 7000}}}
	cache := &service.LeagueCache{Repo: repo, Logger: zap.NewNop()}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leagues/top", nil)
	leagueRouter(repo, cache).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Data []models.LeagueRollup `json:"data"`
		Meta map[string]any        `json:"meta"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].League != "Serie A" {
		t.Fatalf("body %+v", body)
	}
	if _, ok := body.Meta["source"]; ok {
		t.Fatalf("cold cache tagged as cache hit: %v", body.Meta)
	}
}

func TestSearchLeagues(t *testing.T) {
	repo := &stubRepo{leagues: []models.LeagueRollup{{League: "Bundesliga", MatchCount: 6000}}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leagues/search?q=bund", nil)
	leagueRouter(repo, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Code int                   `json:"code"`
		Data []models.LeagueRollup `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != 0 || len(body.Data) != 1 {
		t.Fatalf("body %+v", body)
	}
}

func TestSearchLeagues_StoreFailure(t *testing.T) {
	repo := &stubRepo{err: errStore}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leagues/search?q=x", nil)
	leagueRouter(repo, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status %d", rec.Code)
	}
}
