package filter

import (
	"math"
	"strconv"
	"strings"
)

// DefaultTolerance is the half-width of the window applied to a bare numeric
// odds filter so it behaves as equality despite decimal-odds quantization.
// The value is a heuristic; callers can override it per normalizer.
const DefaultTolerance = 0.005

// minOdds is the floor of the decimal-odds convention.
const minOdds = 1.0

type ExprKind int

const (
	GreaterThan ExprKind = iota + 1
	LessThan
	Between
)

// OddsExpression is one parsed odds comparison. For GreaterThan and LessThan
// only Value is set; for Between the inclusive bounds Min and Max are set.
type OddsExpression struct {
	Kind  ExprKind
	Value float64
	Min   float64
	Max   float64
}

// Parse turns one raw comparison string into an OddsExpression. Supported
// forms, in priority order: ">N", "<N", "N-M" (inclusive range, N < M) and a
// bare number, which becomes a tolerance window of +-tol around it. The
// second return value is false for anything unparseable, a range with
// min >= max, or any operand below 1.0. An invalid filter is a no-op signal
// for the normalizer, never an error.
func Parse(raw string, tol float64) (OddsExpression, bool) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return OddsExpression{}, false
	}

	if rest, ok := strings.CutPrefix(raw, ">"); ok {
		v, ok := parseOdds(rest)
		if !ok {
			return OddsExpression{}, false
		}
		return OddsExpression{Kind: GreaterThan, Value: v}, true
	}

	if rest, ok := strings.CutPrefix(raw, "<"); ok {
		v, ok := parseOdds(rest)
		if !ok {
			return OddsExpression{}, false
		}
		return OddsExpression{Kind: LessThan, Value: v}, true
	}

	if lo, hi, ok := strings.Cut(raw, "-"); ok {
		minV, okMin := parseOdds(lo)
		maxV, okMax := parseOdds(hi)
		if !okMin || !okMax || minV >= maxV {
			return OddsExpression{}, false
		}
		return OddsExpression{Kind: Between, Min: minV, Max: maxV}, true
	}

	v, ok := parseOdds(raw)
	if !ok {
		return OddsExpression{}, false
	}
	return OddsExpression{Kind: Between, Min: v - tol, Max: v + tol}, true
}

// Matches evaluates the expression against one odds value in memory. The
// query path never calls this; it exists so expression semantics can be
// checked against fixtures without a database.
func (e OddsExpression) Matches(v float64) bool {
	switch e.Kind {
	case GreaterThan:
		return v > e.Value
	case LessThan:
		return v < e.Value
	case Between:
		return v >= e.Min && v <= e.Max
	}
	return false
}

func parseOdds(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v < minOdds {
		return 0, false
	}
	return v, true
}
