package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDateRangeQuery reads the optional fromDate/toDate query parameters.
// A missing parameter yields the zero time, meaning unbounded on that side.
// The range is half-open: fromDate is included, toDate is not.
func parseDateRangeQuery(c *gin.Context) (from, to time.Time, err error) {
	if s := c.Query("fromDate"); s != "" {
		from, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid fromDate %q, expected YYYY-MM-DD", s)
		}
	}
	if s := c.Query("toDate"); s != "" {
		to, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid toDate %q, expected YYYY-MM-DD", s)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("toDate precedes fromDate")
	}
	return from, to, nil
}
