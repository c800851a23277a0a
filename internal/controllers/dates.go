package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q, use RFC 3339 or YYYY-MM-DD", value)
}

// parseDateRange reads the optional start/end query parameters. Absent
// parameters return nil bounds (unbounded query).
func parseDateRange(c *gin.Context) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time

	if raw := c.Query("start"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		startDate = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return nil, nil, err
		}
		endDate = &t
	}

	return startDate, endDate, nil
}
