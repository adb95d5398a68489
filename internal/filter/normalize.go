package filter

import (
	"strings"

	"github.com/spf13/cast"
)

// DefaultLimit is the page size used when the caller does not send one.
const DefaultLimit = 50

// Raw is the loosely typed filter bag as received at the system boundary.
// Values may be strings, string slices, numbers or booleans depending on the
// transport (query parameters, JSON bodies).
type Raw map[string]any

// FilterSpec is the normalized, immutable representation of one request's
// search criteria. It is built once per request, never persisted and never
// shared across requests.
type FilterSpec struct {
	Leagues    []string
	DateFrom   string
	DateTo     string
	TimeFrom   string
	TimeTo     string
	HomeTeam   string
	AwayTeam   string
	TeamSearch string
	Odds       map[MarketKey]OddsExpression
	Page       int
	Limit      int
}

// Normalizer maps raw filter bags into FilterSpecs. It holds only the odds
// tolerance, so one instance is safe for concurrent use.
type Normalizer struct {
	tolerance float64
}

func NewNormalizer(tolerance float64) *Normalizer {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Normalizer{tolerance: tolerance}
}

// Normalize builds a FilterSpec from the raw bag. Malformed or unregistered
// entries are dropped silently: a single bad filter never rejects the whole
// request. Normalize never touches the dataset.
func (n *Normalizer) Normalize(raw Raw) FilterSpec {
	spec := FilterSpec{
		Leagues:    stringList(raw["leagues"]),
		DateFrom:   stringField(raw, "dateFrom"),
		DateTo:     stringField(raw, "dateTo"),
		TimeFrom:   stringField(raw, "timeFrom"),
		TimeTo:     stringField(raw, "timeTo"),
		HomeTeam:   stringField(raw, "homeTeam"),
		AwayTeam:   stringField(raw, "awayTeam"),
		TeamSearch: stringField(raw, "teamSearch"),
		Page:       cast.ToInt(raw["page"]),
		Limit:      DefaultLimit,
	}
	if spec.Page < 1 {
		spec.Page = 1
	}
	if v, ok := raw["limit"]; ok {
		spec.Limit = cast.ToInt(v)
	}

	for _, key := range MarketKeys() {
		v, ok := raw[string(key)]
		if !ok {
			continue
		}
		expr, ok := Parse(cast.ToString(v), n.tolerance)
		if !ok {
			continue
		}
		if spec.Odds == nil {
			spec.Odds = make(map[MarketKey]OddsExpression)
		}
		spec.Odds[key] = expr
	}

	return spec
}

func stringField(raw Raw, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	if list, ok := v.([]string); ok {
		if len(list) == 0 {
			return ""
		}
		v = list[0]
	}
	return strings.TrimSpace(cast.ToString(v))
}

func stringList(v any) []string {
	var items []string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		items = []string{val}
	case []string:
		items = val
	case []any:
		for _, item := range val {
			items = append(items, cast.ToString(item))
		}
	default:
		items = []string{cast.ToString(val)}
	}
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
