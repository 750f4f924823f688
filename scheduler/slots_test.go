package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var berlin = mustLoad("Europe/Berlin")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// 2026-03-10 is a Tuesday.
func tuesday() time.Time {
	return time.Date(2026, time.March, 10, 0, 0, 0, 0, berlin)
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func window(t *testing.T, weekday int, start, end string) RuleWindow {
	t.Helper()
	w, err := NewRuleWindow(weekday, start, end)
	require.NoError(t, err)
	return w
}

// now long before the target date, so no buffer floor interferes
func distantPast() time.Time {
	return time.Date(2026, time.January, 5, 9, 0, 0, 0, berlin)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 8, Minute: 30}, tod)
	assert.Equal(t, "08:30", tod.String())

	for _, bad := range []string{"", "8am", "25:00", "12:60", "12-30"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDailySlotsFullWindow(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}

	slots := DailySlots(tuesday(), 60, windows, nil, nil, distantPast(), Options{})

	// 08:00 through 11:00 at 15-minute cadence: last start with a full
	// hour before the 12:00 close is 11:00.
	require.Len(t, slots, 13)
	assert.Equal(t, at(tuesday(), 8, 0), slots[0])
	assert.Equal(t, at(tuesday(), 11, 0), slots[12])
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 15*time.Minute, slots[i].Sub(slots[i-1]))
	}
}

func TestDailySlotsExistingBookingBlocksOverlaps(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}
	booked := []Booking{{StartsAt: at(tuesday(), 9, 0), EndsAt: at(tuesday(), 10, 0)}}

	slots := DailySlots(tuesday(), 60, windows, nil, booked, distantPast(), Options{})

	// Starts from 08:15 through 09:45 collide with the 09:00-10:00 booking;
	// 08:00 ends exactly at 09:00 and 10:00 starts exactly at its end, so
	// both survive the open-interval test.
	want := []time.Time{
		at(tuesday(), 8, 0),
		at(tuesday(), 10, 0), at(tuesday(), 10, 15), at(tuesday(), 10, 30), at(tuesday(), 10, 45),
		at(tuesday(), 11, 0),
	}
	assert.Equal(t, want, slots)
}

func TestDailySlotsBlackoutWins(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}
	// Blackout stored with an arbitrary time component; only the date counts.
	blackouts := []time.Time{at(tuesday(), 16, 45)}

	slots := DailySlots(tuesday(), 60, windows, blackouts, nil, distantPast(), Options{})
	assert.Empty(t, slots)
}

func TestDailySlotsSameDayBuffer(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "14:00", "16:00")}
	now := at(tuesday(), 14, 32)

	slots := DailySlots(tuesday(), 30, windows, nil, nil, now, Options{BufferMin: 10})

	// Floor is 14:42, so the first surviving candidate is 14:45. The buffer
	// is not rounded to the step grid.
	require.NotEmpty(t, slots)
	assert.Equal(t, at(tuesday(), 14, 45), slots[0])
	for _, s := range slots {
		assert.False(t, s.Before(now.Add(10*time.Minute)), "slot %v under buffer floor", s)
	}
}

func TestDailySlotsZeroBufferIsHonored(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "14:00", "16:00")}
	now := at(tuesday(), 14, 30)

	// An explicit zero buffer means slots starting right now are bookable;
	// it must not silently fall back to the 10-minute default.
	slots := DailySlots(tuesday(), 30, windows, nil, nil, now, Options{StepMin: 15, BufferMin: 0})
	require.NotEmpty(t, slots)
	assert.Equal(t, at(tuesday(), 14, 30), slots[0])

	// The default policy rejects the 14:30 candidate.
	slots = DailySlots(tuesday(), 30, windows, nil, nil, now, DefaultOptions())
	require.NotEmpty(t, slots)
	assert.Equal(t, at(tuesday(), 14, 45), slots[0])
}

func TestDailySlotsFutureDayHasNoBuffer(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}
	// Late Monday evening; Tuesday's opening slot must still be offered.
	now := time.Date(2026, time.March, 9, 23, 55, 0, 0, berlin)

	slots := DailySlots(tuesday(), 60, windows, nil, nil, now, Options{})
	require.NotEmpty(t, slots)
	assert.Equal(t, at(tuesday(), 8, 0), slots[0])
}

func TestDailySlotsWindowShorterThanService(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "09:00", "09:30")}
	slots := DailySlots(tuesday(), 60, windows, nil, nil, distantPast(), Options{})
	assert.Empty(t, slots)
}

func TestDailySlotsWeekdayIsolation(t *testing.T) {
	// Monday rule contributes nothing on a Tuesday.
	windows := []RuleWindow{window(t, 1, "08:00", "12:00")}
	slots := DailySlots(tuesday(), 60, windows, nil, nil, distantPast(), Options{})
	assert.Empty(t, slots)
}

func TestDailySlotsMultipleWindowsPooledAndSorted(t *testing.T) {
	windows := []RuleWindow{
		window(t, 2, "14:00", "16:00"),
		window(t, 2, "08:00", "10:00"),
	}

	slots := DailySlots(tuesday(), 60, windows, nil, nil, distantPast(), Options{})

	require.NotEmpty(t, slots)
	assert.Equal(t, at(tuesday(), 8, 0), slots[0])
	assert.Equal(t, at(tuesday(), 15, 0), slots[len(slots)-1])
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]), "output must be strictly ascending")
	}
}

func TestDailySlotsOverlappingWindowsDeduplicated(t *testing.T) {
	windows := []RuleWindow{
		window(t, 2, "08:00", "12:00"),
		window(t, 2, "08:00", "12:00"),
	}

	slots := DailySlots(tuesday(), 60, windows, nil, nil, distantPast(), Options{})

	require.Len(t, slots, 13)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}
}

func TestDailySlotsStepDoesNotDivideDuration(t *testing.T) {
	// 50-minute service at 15-minute cadence in a 09:00-10:00 window:
	// only 09:00 fits, 09:15 would already end at 10:05.
	windows := []RuleWindow{window(t, 2, "09:00", "10:00")}

	slots := DailySlots(tuesday(), 50, windows, nil, nil, distantPast(), Options{})
	assert.Equal(t, []time.Time{at(tuesday(), 9, 0)}, slots)
}

func TestDailySlotsWindowContainment(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}
	slots := DailySlots(tuesday(), 45, windows, nil, nil, distantPast(), Options{})

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.Before(at(tuesday(), 8, 0)))
		assert.False(t, s.Add(45*time.Minute).After(at(tuesday(), 12, 0)))
	}
}

func TestDailySlotsNonPositiveDuration(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}
	assert.Empty(t, DailySlots(tuesday(), 0, windows, nil, nil, distantPast(), Options{}))
	assert.Empty(t, DailySlots(tuesday(), -30, windows, nil, nil, distantPast(), Options{}))
}

func TestDailySlotsDeterministic(t *testing.T) {
	windows := []RuleWindow{
		window(t, 2, "08:00", "10:00"),
		window(t, 2, "09:00", "11:00"),
	}
	booked := []Booking{{StartsAt: at(tuesday(), 9, 30), EndsAt: at(tuesday(), 10, 0)}}
	now := at(tuesday(), 7, 12)

	first := DailySlots(tuesday(), 30, windows, nil, booked, now, Options{})
	second := DailySlots(tuesday(), 30, windows, nil, booked, now, Options{})
	assert.Equal(t, first, second)
}

func TestRangeSlotsSkipsPastDaysAndEmptyDays(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}
	now := at(tuesday(), 9, 0)

	// Week around the target Tuesday: Monday is in the past, only Tuesday
	// has a rule, so the map holds a single entry.
	from := time.Date(2026, time.March, 9, 0, 0, 0, 0, berlin)
	to := time.Date(2026, time.March, 15, 0, 0, 0, 0, berlin)

	byDay := RangeSlots(from, to, 60, windows, nil, nil, now, DefaultOptions())

	require.Len(t, byDay, 1)
	slots, ok := byDay["2026-03-10"]
	require.True(t, ok)
	// Same-day floor applies: 09:00 + 10 min buffer rejects everything
	// before 09:15.
	assert.Equal(t, at(tuesday(), 9, 15), slots[0])
}

func TestRangeSlotsUTCBoundaryStaysOnLocalDay(t *testing.T) {
	windows := []RuleWindow{window(t, 2, "08:00", "12:00")}
	now := distantPast()

	// A UTC-parsed boundary that is already Tuesday 01:00 in Berlin must
	// still generate under the Tuesday rule, not Monday.
	from := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := from

	byDay := RangeSlots(from, to, 60, windows, nil, nil, now, Options{})
	_, ok := byDay["2026-03-10"]
	assert.True(t, ok)
}

func TestSameDate(t *testing.T) {
	a := time.Date(2026, time.March, 10, 23, 59, 0, 0, berlin)
	b := time.Date(2026, time.March, 10, 0, 1, 0, 0, berlin)
	assert.True(t, SameDate(a, b))

	// 23:30 UTC on the 9th is already the 10th in Berlin.
	utcEvening := time.Date(2026, time.March, 9, 23, 30, 0, 0, time.UTC)
	assert.True(t, SameDate(b, utcEvening))
	assert.False(t, SameDate(a, a.AddDate(0, 0, 1)))
}
