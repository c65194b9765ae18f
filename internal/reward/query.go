package reward

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	categoryKey = "category"
	sortKey     = "sort"
)

// RewardQuery is a structured reward search. Category holds decoded labels
// with no duplicates; nil means no category filter. An empty Sort means the
// sort mode was not given. Fields carries every other query parameter as a
// string, float64, bool, or []any of those.
type RewardQuery struct {
	Category []string
	Sort     RewardSort
	Fields   map[string]any
}

// Route is the routing input for ParseRewardQuery: the raw query string and
// the category path parameter, if the route has one.
type Route struct {
	RawQuery string
	Category string
}

// StringifyRewardQuery renders q as a canonical query string. Categories are
// encoded to slugs and sorted; keys are emitted in sorted order. q is not
// modified.
func StringifyRewardQuery(q RewardQuery) string {
	values := url.Values{}

	if q.Category != nil {
		slugs := make([]string, 0, len(q.Category))
		for _, c := range q.Category {
			slugs = append(slugs, EncodeCategory(c))
		}
		slices.Sort(slugs)
		values[categoryKey] = slices.Compact(slugs)
	}
	if q.Sort != "" {
		values.Set(sortKey, string(q.Sort))
	}
	for key, val := range q.Fields {
		if key == categoryKey || key == sortKey {
			continue
		}
		values[key] = formatField(val)
	}
	return values.Encode()
}

// ParseRewardQuery builds a RewardQuery from a route. Numeric and boolean
// looking values of pass-through fields are coerced. A category path
// parameter is appended to the query's categories unless already present.
func ParseRewardQuery(route Route) RewardQuery {
	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(strings.TrimPrefix(route.RawQuery, "?"))

	var q RewardQuery
	categories := &CategorySet{}
	for key, vals := range values {
		switch key {
		case categoryKey:
			for _, v := range vals {
				if v != "" {
					categories.AddSlug(v)
				}
			}
		case sortKey:
			if len(vals) > 0 {
				q.Sort = RewardSort(vals[0])
			}
		default:
			if q.Fields == nil {
				q.Fields = make(map[string]any)
			}
			q.Fields[key] = parseField(vals)
		}
	}
	if route.Category != "" {
		categories.AddSlug(route.Category)
	}
	q.Category = categories.Values()
	return q
}

func parseField(vals []string) any {
	if len(vals) == 1 {
		return coerce(vals[0])
	}
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = coerce(v)
	}
	return out
}

func coerce(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	if strings.TrimSpace(v) == "" {
		return v
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return v
}

func formatField(val any) []string {
	switch v := val.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, formatScalar(item))
		}
		return out
	case []string:
		return append([]string(nil), v...)
	default:
		return []string{formatScalar(v)}
	}
}

func formatScalar(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
