// Package analytics holds the pure computations behind the dashboard and
// streak views. Nothing in here touches a store; callers fetch a snapshot
// and hand it over.
package analytics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskpulse/model"
)

var ErrInvalidDays = errors.New("days must be a non-negative integer")

const day = 24 * time.Hour

// Window is a run of whole UTC calendar days. Start and End are both
// midnight; End is the last day included.
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseDays validates the raw days parameter. maxDays <= 0 disables the
// upper bound.
func ParseDays(raw string, maxDays int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing", ErrInvalidDays)
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDays, raw)
	}
	if days < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDays, days)
	}
	if maxDays > 0 && days > maxDays {
		return 0, fmt.Errorf("%w: %d exceeds maximum of %d", ErrInvalidDays, days, maxDays)
	}
	return days, nil
}

// ResolveWindow returns the window covering today and the days before it.
func ResolveWindow(days int, now time.Time) Window {
	end := model.StartOfDay(now)
	return Window{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}

// EndExclusive is midnight after End. Store queries use [Start, EndExclusive).
func (w Window) EndExclusive() time.Time {
	return w.End.AddDate(0, 0, 1)
}

// Days counts the calendar days in the window, both ends included.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start)/day) + 1
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.EndExclusive())
}

// Each calls fn for every day from Start to End in order.
func (w Window) Each(fn func(time.Time)) {
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
