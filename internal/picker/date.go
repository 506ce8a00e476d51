package picker

import "time"

// Column is one spinner of the date wheel.
type Column int

const (
	ColumnMonth Column = iota
	ColumnDay
	ColumnYear
)

const (
	minYear = 1900
	maxYear = 2100
)

// DateWheel is the date selector behind date mode. It keeps a calendar date
// at midnight in its location and never holds an invalid day.
type DateWheel struct {
	year  int
	month time.Month
	day   int
	loc   *time.Location
	focus Column
}

func NewDateWheel(t time.Time) *DateWheel {
	w := &DateWheel{}
	w.SetDate(t)
	return w
}

func (w *DateWheel) SetDate(t time.Time) {
	w.loc = t.Location()
	w.year, w.month, w.day = t.Date()
	w.year = min(maxYear, max(minYear, w.year))
	w.clampDay()
}

// Date is the currently selected instant.
func (w *DateWheel) Date() time.Time {
	return time.Date(w.year, w.month, w.day, 0, 0, 0, 0, w.loc)
}

func (w *DateWheel) Focus() Column { return w.focus }

func (w *DateWheel) FocusLeft() {
	if w.focus > ColumnMonth {
		w.focus--
	}
}

func (w *DateWheel) FocusRight() {
	if w.focus < ColumnYear {
		w.focus++
	}
}

// Step moves the focused column by delta, wrapping months and days and
// clamping years.
func (w *DateWheel) Step(delta int) {
	switch w.focus {
	case ColumnMonth:
		w.month = time.Month(wrap(int(w.month)-1+delta, 12) + 1)
	case ColumnDay:
		w.day = wrap(w.day-1+delta, daysIn(w.year, w.month)) + 1
	case ColumnYear:
		w.year = min(maxYear, max(minYear, w.year+delta))
	}
	w.clampDay()
}

func (w *DateWheel) clampDay() {
	w.day = min(max(1, w.day), daysIn(w.year, w.month))
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
