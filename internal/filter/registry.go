package filter

import "sort"

// MarketKey identifies one registered odds-market filter. The registry is
// closed: keys outside it never reach a query, which keeps every column name
// in generated SQL under this package's control.
type MarketKey string

const (
	MarketFTHomeOdds MarketKey = "ft_home_odds"
	MarketFTDrawOdds MarketKey = "ft_draw_odds"
	MarketFTAwayOdds MarketKey = "ft_away_odds"

	MarketHTHomeOdds MarketKey = "ht_home_odds"
	MarketHTDrawOdds MarketKey = "ht_draw_odds"
	MarketHTAwayOdds MarketKey = "ht_away_odds"

	MarketSHHomeOdds MarketKey = "sh_home_odds"
	MarketSHDrawOdds MarketKey = "sh_draw_odds"
	MarketSHAwayOdds MarketKey = "sh_away_odds"

	MarketDC1XOdds MarketKey = "dc_1x_odds"
	MarketDC12Odds MarketKey = "dc_12_odds"
	MarketDCX2Odds MarketKey = "dc_x2_odds"

	MarketOver15Odds  MarketKey = "over_15_odds"
	MarketUnder15Odds MarketKey = "under_15_odds"
	MarketOver25Odds  MarketKey = "over_25_odds"
	MarketUnder25Odds MarketKey = "under_25_odds"
	MarketOver35Odds  MarketKey = "over_35_odds"
	MarketUnder35Odds MarketKey = "under_35_odds"

	MarketBTTSYesOdds MarketKey = "btts_yes_odds"
	MarketBTTSNoOdds  MarketKey = "btts_no_odds"

	MarketAHMinus05Odds MarketKey = "ah_minus_05_odds"
	MarketAHPlus05Odds  MarketKey = "ah_plus_05_odds"

	MarketEHMinus1Odds MarketKey = "eh_minus_1_odds"
	MarketEHPlus1Odds  MarketKey = "eh_plus_1_odds"
)

// Odds filters always target the closing line.
var marketColumns = map[MarketKey]string{
	MarketFTHomeOdds: "ft_home_odds_close",
	MarketFTDrawOdds: "ft_draw_odds_close",
	MarketFTAwayOdds: "ft_away_odds_close",

	MarketHTHomeOdds: "ht_home_odds_close",
	MarketHTDrawOdds: "ht_draw_odds_close",
	MarketHTAwayOdds: "ht_away_odds_close",

	MarketSHHomeOdds: "sh_home_odds_close",
	MarketSHDrawOdds: "sh_draw_odds_close",
	MarketSHAwayOdds: "sh_away_odds_close",

	MarketDC1XOdds: "dc_1x_odds_close",
	MarketDC12Odds: "dc_12_odds_close",
	MarketDCX2Odds: "dc_x2_odds_close",

	MarketOver15Odds:  "over_15_odds_close",
	MarketUnder15Odds: "under_15_odds_close",
	MarketOver25Odds:  "over_25_odds_close",
	MarketUnder25Odds: "under_25_odds_close",
	MarketOver35Odds:  "over_35_odds_close",
	MarketUnder35Odds: "under_35_odds_close",

	MarketBTTSYesOdds: "btts_yes_odds_close",
	MarketBTTSNoOdds:  "btts_no_odds_close",

	MarketAHMinus05Odds: "ah_minus_05_home_odds_close",
	MarketAHPlus05Odds:  "ah_plus_05_home_odds_close",

	MarketEHMinus1Odds: "eh_minus_1_home_odds_close",
	MarketEHPlus1Odds:  "eh_plus_1_away_odds_close",
}

// MarketColumn maps a registered key to its column name. ok is false for
// anything outside the registry.
func MarketColumn(key MarketKey) (string, bool) {
	col, ok := marketColumns[key]
	return col, ok
}

// MarketKeys returns every registered key in sorted order. Sorted iteration
// keeps plan generation deterministic.
func MarketKeys() []MarketKey {
	keys := make([]MarketKey, 0, len(marketColumns))
	for k := range marketColumns {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
