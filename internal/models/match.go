package models

import (
	"gorm.io/datatypes"
)

// MatchRecord is one historical match as ingested by the external pipeline.
// The table is append-mostly and read-only from this service's point of view.
// Odds are decimal (payout = stake x odds, always >= 1.0) and nullable: a
// bookmaker may not have quoted every market. Open/close values are paired
// independently per market. Correct-score grids and other long-tail markets
// stay in RawJSON; only the filterable markets get their own columns.
type MatchRecord struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	HomeTeam string `gorm:"type:varchar(120);not null;index" json:"home_team"`
	AwayTeam string `gorm:"type:varchar(120);not null;index" json:"away_team"`
	League   string `gorm:"type:varchar(160);not null;index" json:"league"`

	Year      int    `gorm:"not null;index" json:"year"`
	Month     int    `gorm:"not null" json:"month"`
	Day       int    `gorm:"not null" json:"day"`
	MatchTime string `gorm:"type:varchar(5);not null" json:"time"`
	Bookmaker string `gorm:"type:varchar(80);not null" json:"bookmaker"`

	HTScore string `gorm:"type:varchar(10)" json:"ht_score"`
	FTScore string `gorm:"type:varchar(10)" json:"ft_score"`

	// Digit-bearing names get explicit columns: gorm's own renaming would
	// glue the goal line onto the word (ht_over05) and break the SQL the
	// query planner emits.
	HTOver05 bool `gorm:"column:ht_over_05;not null;default:false" json:"ht_over_05"`
	FTOver15 bool `gorm:"column:ft_over_15;not null;default:false" json:"ft_over_15"`
	FTOver25 bool `gorm:"column:ft_over_25;not null;default:false" json:"ft_over_25"`
	FTOver35 bool `gorm:"column:ft_over_35;not null;default:false" json:"ft_over_35"`
	BTTS     bool `gorm:"not null;default:false" json:"btts"`

	// Full-time 1X2.
	FTHomeOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"ft_home_odds_open"`
	FTHomeOddsClose *float64 `gorm:"type:numeric(8,3);index" json:"ft_home_odds_close"`
	FTDrawOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"ft_draw_odds_open"`
	FTDrawOddsClose *float64 `gorm:"type:numeric(8,3)" json:"ft_draw_odds_close"`
	FTAwayOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"ft_away_odds_open"`
	FTAwayOddsClose *float64 `gorm:"type:numeric(8,3)" json:"ft_away_odds_close"`

	// Half-time 1X2.
	HTHomeOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"ht_home_odds_open"`
	HTHomeOddsClose *float64 `gorm:"type:numeric(8,3)" json:"ht_home_odds_close"`
	HTDrawOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"ht_draw_odds_open"`
	HTDrawOddsClose *float64 `gorm:"type:numeric(8,3)" json:"ht_draw_odds_close"`
	HTAwayOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"ht_away_odds_open"`
	HTAwayOddsClose *float64 `gorm:"type:numeric(8,3)" json:"ht_away_odds_close"`

	// Second-half 1X2.
	SHHomeOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"sh_home_odds_open"`
	SHHomeOddsClose *float64 `gorm:"type:numeric(8,3)" json:"sh_home_odds_close"`
	SHDrawOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"sh_draw_odds_open"`
	SHDrawOddsClose *float64 `gorm:"type:numeric(8,3)" json:"sh_draw_odds_close"`
	SHAwayOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"sh_away_odds_open"`
	SHAwayOddsClose *float64 `gorm:"type:numeric(8,3)" json:"sh_away_odds_close"`

	// Double chance.
	DC1XOddsOpen  *float64 `gorm:"column:dc_1x_odds_open;type:numeric(8,3)" json:"dc_1x_odds_open"`
	DC1XOddsClose *float64 `gorm:"column:dc_1x_odds_close;type:numeric(8,3)" json:"dc_1x_odds_close"`
	DC12OddsOpen  *float64 `gorm:"column:dc_12_odds_open;type:numeric(8,3)" json:"dc_12_odds_open"`
	DC12OddsClose *float64 `gorm:"column:dc_12_odds_close;type:numeric(8,3)" json:"dc_12_odds_close"`
	DCX2OddsOpen  *float64 `gorm:"column:dc_x2_odds_open;type:numeric(8,3)" json:"dc_x2_odds_open"`
	DCX2OddsClose *float64 `gorm:"column:dc_x2_odds_close;type:numeric(8,3)" json:"dc_x2_odds_close"`

	// Over/under goal lines.
	Over15OddsOpen   *float64 `gorm:"column:over_15_odds_open;type:numeric(8,3)" json:"over_15_odds_open"`
	Over15OddsClose  *float64 `gorm:"column:over_15_odds_close;type:numeric(8,3)" json:"over_15_odds_close"`
	Under15OddsOpen  *float64 `gorm:"column:under_15_odds_open;type:numeric(8,3)" json:"under_15_odds_open"`
	Under15OddsClose *float64 `gorm:"column:under_15_odds_close;type:numeric(8,3)" json:"under_15_odds_close"`
	Over25OddsOpen   *float64 `gorm:"column:over_25_odds_open;type:numeric(8,3)" json:"over_25_odds_open"`
	Over25OddsClose  *float64 `gorm:"column:over_25_odds_close;type:numeric(8,3);index" json:"over_25_odds_close"`
	Under25OddsOpen  *float64 `gorm:"column:under_25_odds_open;type:numeric(8,3)" json:"under_25_odds_open"`
	Under25OddsClose *float64 `gorm:"column:under_25_odds_close;type:numeric(8,3)" json:"under_25_odds_close"`
	Over35OddsOpen   *float64 `gorm:"column:over_35_odds_open;type:numeric(8,3)" json:"over_35_odds_open"`
	Over35OddsClose  *float64 `gorm:"column:over_35_odds_close;type:numeric(8,3)" json:"over_35_odds_close"`
	Under35OddsOpen  *float64 `gorm:"column:under_35_odds_open;type:numeric(8,3)" json:"under_35_odds_open"`
	Under35OddsClose *float64 `gorm:"column:under_35_odds_close;type:numeric(8,3)" json:"under_35_odds_close"`

	// Both teams to score.
	BTTSYesOddsOpen  *float64 `gorm:"type:numeric(8,3)" json:"btts_yes_odds_open"`
	BTTSYesOddsClose *float64 `gorm:"type:numeric(8,3)" json:"btts_yes_odds_close"`
	BTTSNoOddsOpen   *float64 `gorm:"type:numeric(8,3)" json:"btts_no_odds_open"`
	BTTSNoOddsClose  *float64 `gorm:"type:numeric(8,3)" json:"btts_no_odds_close"`

	// Asian handicap, home side at the +-0.5 lines.
	AHMinus05HomeOddsOpen  *float64 `gorm:"column:ah_minus_05_home_odds_open;type:numeric(8,3)" json:"ah_minus_05_home_odds_open"`
	AHMinus05HomeOddsClose *float64 `gorm:"column:ah_minus_05_home_odds_close;type:numeric(8,3)" json:"ah_minus_05_home_odds_close"`
	AHPlus05HomeOddsOpen   *float64 `gorm:"column:ah_plus_05_home_odds_open;type:numeric(8,3)" json:"ah_plus_05_home_odds_open"`
	AHPlus05HomeOddsClose  *float64 `gorm:"column:ah_plus_05_home_odds_close;type:numeric(8,3)" json:"ah_plus_05_home_odds_close"`

	// European handicap at the one-goal line.
	EHMinus1HomeOddsOpen  *float64 `gorm:"column:eh_minus_1_home_odds_open;type:numeric(8,3)" json:"eh_minus_1_home_odds_open"`
	EHMinus1HomeOddsClose *float64 `gorm:"column:eh_minus_1_home_odds_close;type:numeric(8,3)" json:"eh_minus_1_home_odds_close"`
	EHPlus1AwayOddsOpen   *float64 `gorm:"column:eh_plus_1_away_odds_open;type:numeric(8,3)" json:"eh_plus_1_away_odds_open"`
	EHPlus1AwayOddsClose  *float64 `gorm:"column:eh_plus_1_away_odds_close;type:numeric(8,3)" json:"eh_plus_1_away_odds_close"`

	// Original ingested payload, including HT/FT combinations and the
	// correct-score grid that have no dedicated columns.
	RawJSON datatypes.JSON `gorm:"type:jsonb" json:"-"`
}

func (MatchRecord) TableName() string {
	return "match_records"
}
