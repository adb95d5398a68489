package query

import (
	"fmt"
	"strconv"
	"strings"

	"matchstats/internal/filter"
)

const (
	MinLimit = 1
	MaxLimit = 1000
)

// DefaultOrder sorts newest first with the row id as a deterministic
// tiebreaker so pagination is stable across repeated calls.
const DefaultOrder = "year DESC, month DESC, day DESC, match_time DESC, id DESC"

// Plan is the backend-agnostic translation of a FilterSpec: a conjunctive
// WHERE predicate built from static fragments and registry columns, with
// every dynamic value carried as a named parameter. Value-equal FilterSpecs
// always produce value-equal Plans.
type Plan struct {
	Where   string
	Params  map[string]any
	Limit   int
	Offset  int
	OrderBy string
}

// Build derives the Plan for one FilterSpec. No user-supplied text ever ends
// up in Plan.Where; user values travel only through Plan.Params.
func Build(spec filter.FilterSpec) Plan {
	var conds []string
	params := make(map[string]any)

	if len(spec.Leagues) > 0 {
		placeholders := make([]string, len(spec.Leagues))
		for i, league := range spec.Leagues {
			name := "league_" + strconv.Itoa(i)
			placeholders[i] = "@" + name
			params[name] = league
		}
		conds = append(conds, "league IN ("+strings.Join(placeholders, ", ")+")")
	}

	// Date filtering compares the 4-digit year only. The dataset is
	// year-partitioned and finer-grained date filtering has never been
	// part of the contract.
	if y, ok := yearOf(spec.DateFrom); ok {
		conds = append(conds, "year >= @date_from_year")
		params["date_from_year"] = y
	}
	if y, ok := yearOf(spec.DateTo); ok {
		conds = append(conds, "year <= @date_to_year")
		params["date_to_year"] = y
	}

	// Kick-off times are stored as zero-padded HH:MM, so lexical
	// comparison matches chronological order.
	if spec.TimeFrom != "" {
		conds = append(conds, "match_time >= @time_from")
		params["time_from"] = spec.TimeFrom
	}
	if spec.TimeTo != "" {
		conds = append(conds, "match_time <= @time_to")
		params["time_to"] = spec.TimeTo
	}

	if spec.HomeTeam != "" {
		conds = append(conds, "LOWER(home_team) LIKE @home_team")
		params["home_team"] = pattern(spec.HomeTeam)
	}
	if spec.AwayTeam != "" {
		conds = append(conds, "LOWER(away_team) LIKE @away_team")
		params["away_team"] = pattern(spec.AwayTeam)
	}
	if spec.TeamSearch != "" {
		conds = append(conds, "(LOWER(home_team) LIKE @team_search OR LOWER(away_team) LIKE @team_search)")
		params["team_search"] = pattern(spec.TeamSearch)
	}

	for _, key := range filter.MarketKeys() {
		expr, ok := spec.Odds[key]
		if !ok {
			continue
		}
		col, ok := filter.MarketColumn(key)
		if !ok {
			continue
		}
		base := "m_" + string(key)
		switch expr.Kind {
		case filter.GreaterThan:
			conds = append(conds, col+" > @"+base)
			params[base] = expr.Value
		case filter.LessThan:
			conds = append(conds, col+" < @"+base)
			params[base] = expr.Value
		case filter.Between:
			conds = append(conds, fmt.Sprintf("%s BETWEEN @%s_min AND @%s_max", col, base, base))
			params[base+"_min"] = expr.Min
			params[base+"_max"] = expr.Max
		}
	}

	limit := ClampLimit(spec.Limit)
	page := spec.Page
	if page < 1 {
		page = 1
	}

	return Plan{
		Where:   strings.Join(conds, " AND "),
		Params:  params,
		Limit:   limit,
		Offset:  (page - 1) * limit,
		OrderBy: DefaultOrder,
	}
}

// ClampLimit bounds a page size to [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func yearOf(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

// pattern builds the case-insensitive substring LIKE operand. LIKE
// metacharacters in the term keep their wildcard meaning; the value is still
// bound as a parameter and never enters the predicate text.
func pattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
