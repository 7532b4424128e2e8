package planner

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var leadingNumber = regexp.MustCompile(`^[-+]?\d+(\.\d+)?`)

// NormalizeDuration coerces a raw duration from an untrusted source into
// minutes within [MinDurationMinutes, MaxDurationMinutes]. Values that are
// missing, zero or not numeric are replaced by EstimateDuration.
func NormalizeDuration(raw any, name string, index, count int) int {
	minutes, ok := parseMinutes(raw)
	if !ok || minutes == 0 {
		return EstimateDuration(name, index, count)
	}
	return clampMinutes(minutes)
}

// EstimateDuration guesses a duration from the task name length and its
// position in the batch.
func EstimateDuration(name string, index, count int) int {
	n := utf8.RuneCountInString(strings.TrimSpace(name))

	var d int
	switch {
	case n < 20:
		d = 30
	case n < 40:
		d = 60
	case n < 60:
		d = 90
	default:
		d = 120
	}

	if index == 0 {
		d += EdgeTaskBonus
	}
	if count > 0 && index == count-1 {
		d += EdgeTaskBonus
	}
	return clampMinutes(float64(d))
}

// parseMinutes returns the truncated numeric value of raw.
func parseMinutes(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case nil:
		return 0, false
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return parseString(v.String())
		}
		f = parsed
	case string:
		return parseString(v)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return math.Trunc(f), true
}

func parseString(s string) (float64, bool) {
	token := leadingNumber.FindString(strings.TrimSpace(s))
	if token == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return math.Trunc(f), true
}

func clampMinutes(f float64) int {
	switch {
	case f < MinDurationMinutes:
		return MinDurationMinutes
	case f > MaxDurationMinutes:
		return MaxDurationMinutes
	default:
		return int(f)
	}
}
