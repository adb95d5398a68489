package models

// Precomputed rollups, refreshed by the ingestion pipeline outside this
// service. They are read-only here and carry no odds-level detail: their
// grain is league/date/team only, so odds filters cannot be applied to them.

type LeagueRollup struct {
	League     string `gorm:"primaryKey;type:varchar(160)" json:"league"`
	MatchCount int64  `gorm:"not null" json:"match_count"`
}

func (LeagueRollup) TableName() string {
	return "league_rollups"
}

type DailyRollup struct {
	League     string `gorm:"primaryKey;type:varchar(160)" json:"league"`
	Year       int    `gorm:"primaryKey" json:"year"`
	Month      int    `gorm:"primaryKey" json:"month"`
	Day        int    `gorm:"primaryKey" json:"day"`
	MatchCount int64  `gorm:"not null" json:"match_count"`
}

func (DailyRollup) TableName() string {
	return "daily_rollups"
}

type MonthlyLeagueRollup struct {
	League     string `gorm:"primaryKey;type:varchar(160)" json:"league"`
	Year       int    `gorm:"primaryKey" json:"year"`
	Month      int    `gorm:"primaryKey" json:"month"`
	MatchCount int64  `gorm:"not null" json:"match_count"`
}

func (MonthlyLeagueRollup) TableName() string {
	return "monthly_league_rollups"
}

type TeamRollup struct {
	Team       string `gorm:"primaryKey;type:varchar(120)" json:"team"`
	Venue      string `gorm:"primaryKey;type:varchar(4)" json:"venue"` // home or away
	League     string `gorm:"primaryKey;type:varchar(160)" json:"league"`
	MatchCount int64  `gorm:"not null" json:"match_count"`
}

func (TeamRollup) TableName() string {
	return "team_rollups"
}
