package domain

import (
	"fmt"
	"math"
	"time"
)

// DateRange is an inclusive [Start, End] window at day granularity.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange builds a range from two optional date filters. Both dates must
// be supplied together; nil is returned when neither is set (all-time).
func NewDateRange(start, end *time.Time) (*DateRange, error) {
	startSet := start != nil && !start.IsZero()
	endSet := end != nil && !end.IsZero()

	if !startSet && !endSet {
		return nil, nil
	}

	if !startSet || !endSet {
		return nil, fmt.Errorf("startDate and endDate must be provided together")
	}

	if start.After(*end) {
		return nil, fmt.Errorf("startDate cannot be after endDate")
	}

	return &DateRange{Start: *start, End: *end}, nil
}

// Days is the difference between End and Start in whole days, rounded up.
func (r DateRange) Days() int {
	return int(math.Ceil(r.End.Sub(r.Start).Hours() / 24))
}

// PreviousPeriod returns the window of identical length immediately
// preceding this one, ending the day before Start.
func (r DateRange) PreviousPeriod() DateRange {
	daysDiff := r.Days()
	prevEnd := r.Start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -daysDiff)

	return DateRange{Start: prevStart, End: prevEnd}
}

// SplitChunks breaks the range into consecutive windows of at most maxDays
// days each, the last one capped at End.
func (r DateRange) SplitChunks(maxDays int) []DateRange {
	if maxDays <= 0 {
		return []DateRange{r}
	}

	chunks := make([]DateRange, 0)
	cursor := r.Start

	for !cursor.After(r.End) {
		chunkEnd := cursor.AddDate(0, 0, maxDays-1)
		if chunkEnd.After(r.End) {
			chunkEnd = r.End
		}

		chunks = append(chunks, DateRange{Start: cursor, End: chunkEnd})
		cursor = chunkEnd.AddDate(0, 0, 1)
	}

	return chunks
}

// Contains reports whether t falls within [Start 00:00, End 23:59:59.999].
func (r DateRange) Contains(t time.Time) bool {
	dayStart := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, t.Location())
	dayEnd := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 23, 59, 59, 999000000, t.Location())

	return !t.Before(dayStart) && !t.After(dayEnd)
}
