package utils

import "time"

// ParseDate parses a YYYY-MM-DD query parameter. An empty string yields the
// zero time so callers can treat the filter as absent.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
