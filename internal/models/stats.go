package models

// AggregatedStats summarizes the population matched by one filter. It is
// always computed from the same predicate as the corresponding listing, so
// TotalMatches equals the listing's total for the same filter.
type AggregatedStats struct {
	TotalMatches int64 `json:"total_matches"`

	HTOver05Count int64 `json:"ht_over_05_count"`
	FTOver15Count int64 `json:"ft_over_15_count"`
	FTOver25Count int64 `json:"ft_over_25_count"`
	FTOver35Count int64 `json:"ft_over_35_count"`
	BTTSCount     int64 `json:"btts_count"`

	HTOver05Pct float64 `json:"ht_over_05_pct"`
	FTOver15Pct float64 `json:"ft_over_15_pct"`
	FTOver25Pct float64 `json:"ft_over_25_pct"`
	FTOver35Pct float64 `json:"ft_over_35_pct"`
	BTTSPct     float64 `json:"btts_pct"`

	AvgFTHomeOdds  float64 `json:"avg_ft_home_odds"`
	AvgFTDrawOdds  float64 `json:"avg_ft_draw_odds"`
	AvgFTAwayOdds  float64 `json:"avg_ft_away_odds"`
	AvgOver25Odds  float64 `json:"avg_over_25_odds"`
	AvgBTTSYesOdds float64 `json:"avg_btts_yes_odds"`

	UniqueLeagues int64 `json:"unique_leagues"`
	UniqueTeams   int64 `json:"unique_teams"`
}
