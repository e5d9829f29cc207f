// Package analytics turns a flat list of habit events into daily, weekly and
// monthly rollups, insights and the current streak.
//
// Every function is pure over its inputs and the Calculator's configuration: the
// calendar location used to read event dates, the clock used for "today", and the
// locale used for generated text. Nothing here touches storage.
package analytics

import (
	"time"

	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
)

type Calculator struct {
	loc    *time.Location
	now    func() time.Time
	locale Locale
}

type Option func(*Calculator)

// WithLocation sets the calendar in which event dates and hours are read.
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) {
		if loc != nil {
			c.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLocale(l Locale) Option {
	return func(c *Calculator) {
		c.locale = l
	}
}

// NewCalculator defaults to UTC, the wall clock and English text.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		loc:    time.UTC,
		now:    time.Now,
		locale: English,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Location() *time.Location { return c.loc }

// Today is the current calendar date in the configured location.
func (c *Calculator) Today() time.Time {
	return c.dateOf(c.now())
}

// dateOf returns the calendar date of t in the configured location, encoded as
// midnight UTC so date arithmetic never crosses a DST transition.
func (c *Calculator) dateOf(t time.Time) time.Time {
	return civilDate(t.In(c.loc))
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(d time.Time) string {
	return d.Format(domain.DateLayout)
}

// inRange reports whether from <= d <= to for calendar dates.
func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}
