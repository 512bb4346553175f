package shared

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ParsePeriod reads the year and month query parameters (month 1-12),
// defaulting to the month of now when both are absent.
func ParsePeriod(r *http.Request, now time.Time) (int, time.Month, error) {
	rawYear := r.URL.Query().Get("year")
	rawMonth := r.URL.Query().Get("month")
	if rawYear == "" && rawMonth == "" {
		return now.Year(), now.Month(), nil
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 2000 || year > 2200 {
		return 0, 0, fmt.Errorf("year must be a four-digit year")
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month must be 1-12")
	}
	return year, time.Month(month), nil
}

// ParseLimitOffset reads pagination query parameters with sane caps.
func ParseLimitOffset(r *http.Request, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	offset := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit, offset
}
