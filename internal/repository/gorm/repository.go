package gormrepository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"matchstats/internal/filter"
	"matchstats/internal/models"
	"matchstats/internal/query"
	"matchstats/internal/repository"
)

// Store is the gorm/Postgres implementation of repository.Repository. It
// holds a read-only reference to a shared, long-lived handle; lifecycle
// (connect, disconnect) belongs to the composition root. Store keeps no
// per-call state, so it is safe for any number of concurrent callers.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

// New wraps the shared handle. timeout bounds every query; zero disables the
// bound and leaves cancellation entirely to the caller's context.
func New(db *gorm.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

// FindMatches runs the count and the paginated data query concurrently from
// one shared plan. The count deliberately omits LIMIT/OFFSET/ORDER BY, so
// Total reflects the full filtered population. If either query fails the
// pair fails and any partial result is discarded.
func (s *Store) FindMatches(ctx context.Context, spec filter.FilterSpec) (repository.MatchPage, error) {
	plan := query.Build(spec)

	ctx, cancel := s.bound(ctx)
	defer cancel()

	// items starts non-nil so a zero-row page serializes as an empty array.
	var total int64
	items := make([]models.MatchRecord, 0)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := s.scoped(gctx, plan).Count(&total).Error
		return repository.WrapQuery("count matches", err)
	})
	g.Go(func() error {
		err := s.scoped(gctx, plan).
			Order(plan.OrderBy).
			Limit(plan.Limit).
			Offset(plan.Offset).
			Find(&items).Error
		return repository.WrapQuery("list matches", err)
	})
	if err := g.Wait(); err != nil {
		return repository.MatchPage{}, err
	}

	page := spec.Page
	if page < 1 {
		page = 1
	}
	return repository.MatchPage{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: plan.Limit,
	}, nil
}

// statsRow mirrors the aggregate select. Averages are pointers because AVG
// over zero rows is NULL. Columns are pinned explicitly so the scan does not
// depend on gorm's initialism-aware renaming of fields like HTOver05Count.
type statsRow struct {
	TotalMatches  int64 `gorm:"column:total_matches"`
	HTOver05Count int64 `gorm:"column:ht_over_05_count"`
	FTOver15Count int64 `gorm:"column:ft_over_15_count"`
	FTOver25Count int64 `gorm:"column:ft_over_25_count"`
	FTOver35Count int64 `gorm:"column:ft_over_35_count"`
	BTTSCount     int64 `gorm:"column:btts_count"`

	AvgFTHomeOdds  *float64 `gorm:"column:avg_ft_home_odds"`
	AvgFTDrawOdds  *float64 `gorm:"column:avg_ft_draw_odds"`
	AvgFTAwayOdds  *float64 `gorm:"column:avg_ft_away_odds"`
	AvgOver25Odds  *float64 `gorm:"column:avg_over_25_odds"`
	AvgBTTSYesOdds *float64 `gorm:"column:avg_btts_yes_odds"`

	UniqueLeagues int64 `gorm:"column:unique_leagues"`
	UniqueTeams   int64 `gorm:"column:unique_teams"`
}

const statsSelect = `
COUNT(*) AS total_matches,
SUM(CASE WHEN ht_over_05 THEN 1 ELSE 0 END) AS ht_over_05_count,
SUM(CASE WHEN ft_over_15 THEN 1 ELSE 0 END) AS ft_over_15_count,
SUM(CASE WHEN ft_over_25 THEN 1 ELSE 0 END) AS ft_over_25_count,
SUM(CASE WHEN ft_over_35 THEN 1 ELSE 0 END) AS ft_over_35_count,
SUM(CASE WHEN btts THEN 1 ELSE 0 END) AS btts_count,
AVG(ft_home_odds_close) AS avg_ft_home_odds,
AVG(ft_draw_odds_close) AS avg_ft_draw_odds,
AVG(ft_away_odds_close) AS avg_ft_away_odds,
AVG(over_25_odds_close) AS avg_over_25_odds,
AVG(btts_yes_odds_close) AS avg_btts_yes_odds,
COUNT(DISTINCT league) AS unique_leagues,
COUNT(DISTINCT home_team) AS unique_teams`

// AggregatedStats computes the aggregate view of the same population a
// listing with the same spec would return. It reuses the plan built by
// query.Build rather than maintaining a second predicate implementation;
// that reuse is what keeps listing totals and stats totals equal.
func (s *Store) AggregatedStats(ctx context.Context, spec filter.FilterSpec) (models.AggregatedStats, error) {
	plan := query.Build(spec)

	ctx, cancel := s.bound(ctx)
	defer cancel()

	var row statsRow
	err := s.scoped(ctx, plan).Select(statsSelect).Scan(&row).Error
	if err != nil {
		return models.AggregatedStats{}, repository.WrapQuery("aggregate matches", err)
	}

	stats := models.AggregatedStats{
		TotalMatches:   row.TotalMatches,
		HTOver05Count:  row.HTOver05Count,
		FTOver15Count:  row.FTOver15Count,
		FTOver25Count:  row.FTOver25Count,
		FTOver35Count:  row.FTOver35Count,
		BTTSCount:      row.BTTSCount,
		AvgFTHomeOdds:  round2(row.AvgFTHomeOdds),
		AvgFTDrawOdds:  round2(row.AvgFTDrawOdds),
		AvgFTAwayOdds:  round2(row.AvgFTAwayOdds),
		AvgOver25Odds:  round2(row.AvgOver25Odds),
		AvgBTTSYesOdds: round2(row.AvgBTTSYesOdds),
		UniqueLeagues:  row.UniqueLeagues,
		UniqueTeams:    row.UniqueTeams,
	}
	stats.HTOver05Pct = percentage(row.HTOver05Count, row.TotalMatches)
	stats.FTOver15Pct = percentage(row.FTOver15Count, row.TotalMatches)
	stats.FTOver25Pct = percentage(row.FTOver25Count, row.TotalMatches)
	stats.FTOver35Pct = percentage(row.FTOver35Count, row.TotalMatches)
	stats.BTTSPct = percentage(row.BTTSCount, row.TotalMatches)
	return stats, nil
}

func (s *Store) scoped(ctx context.Context, plan query.Plan) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.MatchRecord{})
	if plan.Where != "" {
		q = q.Where(plan.Where, plan.Params)
	}
	return q
}

// bound derives the per-query deadline from the caller's context, so a
// disconnecting caller still cancels in-flight work.
func (s *Store) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// percentage is hits/total*100 rounded half-up to two decimals. A zero total
// yields 0, never NaN.
func percentage(hits, total int64) float64 {
	if total <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(hits).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 2)
	return pct.InexactFloat64()
}

// round2 rounds a nullable average to two decimals, half-up. NULL (no rows,
// or no odds quoted in the population) becomes 0.
func round2(v *float64) float64 {
	if v == nil {
		return 0
	}
	return decimal.NewFromFloat(*v).Round(2).InexactFloat64()
}

var _ repository.Repository = (*Store)(nil)
