package query

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of task deadlines
const DateLayout = "2006-01-02"

var ErrInvalidDeadline = errors.New("invalid deadline")

// Bucket names how close a deadline is to the reference date
type Bucket string

const (
	BucketOverdue  Bucket = "overdue"
	BucketToday    Bucket = "today"
	BucketTomorrow Bucket = "tomorrow"
	BucketFuture   Bucket = "future"
)

// Urgency is the classification of a deadline against a reference date
type Urgency struct {
	Bucket   Bucket
	Days     int // days from the reference date to the deadline
	Critical bool
}

// TruncateToDay returns midnight of t's calendar day in t's location
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayDifference returns the number of calendar days from from to to.
// The result is positive when to is later than from. Time of day and
// daylight saving transitions never affect it.
func DayDifference(from, to time.Time) int {
	return int(civil(to).Sub(civil(from)) / (24 * time.Hour))
}

// civil places t's calendar date at UTC midnight, where every day is 24h long
func civil(t time.Time) time.Time {
	y, m, d := TruncateToDay(t).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDeadline parses a YYYY-MM-DD deadline. A trailing time component
// such as "T00:00:00Z" is ignored.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, s)
	}
	return t, nil
}

// Classify buckets deadline relative to ref
func Classify(deadline, ref time.Time) Urgency {
	days := DayDifference(ref, deadline)
	switch {
	case days < 0:
		return Urgency{Bucket: BucketOverdue, Days: days, Critical: true}
	case days == 0:
		return Urgency{Bucket: BucketToday, Days: days, Critical: true}
	case days == 1:
		return Urgency{Bucket: BucketTomorrow, Days: days}
	default:
		return Urgency{Bucket: BucketFuture, Days: days}
	}
}

// ClassifyDeadline parses and classifies a task deadline string.
// ok is false when the deadline is absent or unparseable.
func ClassifyDeadline(deadline string, ref time.Time) (u Urgency, ok bool) {
	if deadline == "" {
		return Urgency{}, false
	}
	d, err := ParseDeadline(deadline)
	if err != nil {
		return Urgency{}, false
	}
	return Classify(d, ref), true
}

// InWindow reports whether deadline falls inside window w relative to ref.
// Absent deadlines are inside every window; unparseable ones are inside none
// except WindowAll.
func InWindow(deadline string, w Window, ref time.Time) bool {
	if w == WindowAll || deadline == "" {
		return true
	}

	d, err := ParseDeadline(deadline)
	if err != nil {
		return false
	}
	days := DayDifference(ref, d)

	switch w {
	case WindowToday:
		return days == 0
	case WindowTomorrow:
		return days == 1
	case WindowNextWeek:
		return days >= 0 && days <= 7
	case WindowNextMonth:
		return days >= 0 && days <= 30
	default:
		return true
	}
}
