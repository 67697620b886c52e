package tool

import (
	"encoding/json"
	"strconv"
	"strings"
)

// stringArg reads a trimmed string argument; anything else yields "".
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

// partySizeArg coerces party_size into a positive integer. JSON numbers
// arrive as float64 and are truncated; numeric strings are parsed. A
// non-numeric value and a non-positive value carry distinct messages.
func partySizeArg(args map[string]any) (int, *ValidationError) {
	n, ok := coerceInt(args["party_size"])
	if !ok {
		return 0, &ValidationError{Error: true, Message: msgPartySizeNotNumeric}
	}
	if n <= 0 {
		return 0, &ValidationError{Error: true, Message: msgPartySizeNotPos}
	}
	return n, nil
}

// optionalIntArg is the lenient variant used by list_restaurants filters:
// absent or unparseable values impose no constraint.
func optionalIntArg(args map[string]any, key string) int {
	n, ok := coerceInt(args[key])
	if !ok || n < 0 {
		return 0
	}
	return n
}

func coerceInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// validDate accepts YYYY-MM-DD structurally: splitting on "-" must yield
// exactly three fields.
func validDate(date string) bool {
	return date != "" && len(strings.Split(date, "-")) == 3
}

// validTime accepts HH:MM structurally: splitting on ":" must yield exactly
// two fields.
func validTime(timeOfDay string) bool {
	return timeOfDay != "" && len(strings.Split(timeOfDay, ":")) == 2
}
