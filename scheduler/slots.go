// Package scheduler computes bookable appointment slots from weekly
// availability rules, blackout dates and existing bookings. It performs no
// I/O: callers fetch the inputs, inject the current time and feed everything
// in as plain values.
package scheduler

import (
	"sort"
	"time"
)

const (
	DefaultStepMin   = 15 // minutes between candidate slot starts
	DefaultBufferMin = 10 // minimum lead time for same-day slots
)

// RuleWindow is one weekly availability window with its boundaries already
// parsed. It only produces slots on dates matching its weekday.
type RuleWindow struct {
	Weekday time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
}

// NewRuleWindow parses the "HH:MM" boundaries of a weekly rule.
func NewRuleWindow(weekday int, start, end string) (RuleWindow, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return RuleWindow{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return RuleWindow{}, err
	}
	return RuleWindow{Weekday: time.Weekday(weekday), Start: s, End: e}, nil
}

// Booking is an occupied interval. Slots may not overlap [StartsAt, EndsAt).
type Booking struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// Options tunes slot generation. A non-positive StepMin and a negative
// BufferMin fall back to the defaults; a BufferMin of zero is honored, so a
// no-lead-time policy stays representable.
type Options struct {
	StepMin   int
	BufferMin int
}

// DefaultOptions is the standard booking policy: candidates every 15 minutes
// with a 10-minute lead time for same-day slots.
func DefaultOptions() Options {
	return Options{StepMin: DefaultStepMin, BufferMin: DefaultBufferMin}
}

func (o Options) withDefaults() Options {
	if o.StepMin <= 0 {
		o.StepMin = DefaultStepMin
	}
	if o.BufferMin < 0 {
		o.BufferMin = DefaultBufferMin
	}
	return o
}

// SameDate reports whether a and b fall on the same calendar date, evaluated
// in a's location. Dates are always compared by year/month/day components,
// never as raw instants.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DailySlots computes the sorted, deduplicated bookable start times for one
// calendar day. Only the date part of date is used. Windows for other
// weekdays are ignored; a blackout on the date wins over everything.
//
// The result is advisory: it reflects the bookings passed in, and a returned
// slot can still lose a race to a concurrent booking. The write path must
// run its own conflict check. Dates before today are a caller precondition;
// the generator does not guard against them.
func DailySlots(date time.Time, durationMin int, windows []RuleWindow, blackouts []time.Time, booked []Booking, now time.Time, opts Options) []time.Time {
	if durationMin <= 0 {
		return nil
	}
	opts = opts.withDefaults()

	for _, b := range blackouts {
		if SameDate(date, b) {
			return nil
		}
	}

	day := StartOfDay(date)

	// Same-day bookings need a lead time; future days are open from midnight.
	floor := day
	if SameDate(date, now) {
		floor = now.Add(time.Duration(opts.BufferMin) * time.Minute)
	}

	duration := time.Duration(durationMin) * time.Minute
	step := time.Duration(opts.StepMin) * time.Minute

	var slots []time.Time
	for _, w := range windows {
		if w.Weekday != day.Weekday() {
			continue
		}
		windowEnd := w.End.On(day)
		// The per-candidate end check is the source of truth: a step that
		// does not divide the duration must not skip or admit edge slots.
		for s := w.Start.On(day); s.Before(windowEnd); s = s.Add(step) {
			end := s.Add(duration)
			if end.After(windowEnd) {
				continue
			}
			if s.Before(floor) {
				continue
			}
			if overlapsAny(s, end, booked) {
				continue
			}
			slots = append(slots, s)
		}
	}

	return dedupeSorted(slots)
}

// RangeSlots runs the daily generator over [from, to] inclusive and returns
// the non-empty days keyed by "2006-01-02". Days before today are skipped.
// The walk constructs each date from explicit year/month/day components in
// now's location, so a boundary parsed in another zone can never land on the
// wrong calendar day.
func RangeSlots(from, to time.Time, durationMin int, windows []RuleWindow, blackouts []time.Time, booked []Booking, now time.Time, opts Options) map[string][]time.Time {
	loc := now.Location()
	first := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	last := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)
	today := StartOfDay(now)

	out := make(map[string][]time.Time)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if day.Before(today) {
			continue
		}
		slots := DailySlots(day, durationMin, windows, blackouts, booked, now, opts)
		if len(slots) == 0 {
			continue
		}
		out[day.Format("2006-01-02")] = slots
	}
	return out
}

// overlapsAny applies the open-interval test: [s, e) collides with
// [b.StartsAt, b.EndsAt) iff s < b.EndsAt and e > b.StartsAt.
func overlapsAny(s, e time.Time, booked []Booking) bool {
	for _, b := range booked {
		if s.Before(b.EndsAt) && e.After(b.StartsAt) {
			return true
		}
	}
	return false
}

func dedupeSorted(slots []time.Time) []time.Time {
	if len(slots) == 0 {
		return nil
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	out := slots[:1]
	for _, s := range slots[1:] {
		if !s.Equal(out[len(out)-1]) {
			out = append(out, s)
		}
	}
	return out
}
