package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	start := day(2025, 2, 1)
	end := day(2025, 2, 10)

	t.Run("both dates", func(t *testing.T) {
		r, err := NewDateRange(&start, &end)
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, start, r.Start)
		assert.Equal(t, end, r.End)
	})

	t.Run("neither date means all-time", func(t *testing.T) {
		r, err := NewDateRange(nil, nil)
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("only one date is an error", func(t *testing.T) {
		_, err := NewDateRange(&start, nil)
		assert.Error(t, err)
	})

	t.Run("start after end is an error", func(t *testing.T) {
		_, err := NewDateRange(&end, &start)
		assert.Error(t, err)
	})
}

func TestPreviousPeriodLengthInvariance(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "ten days", start: day(2025, 2, 1), end: day(2025, 2, 10)},
		{name: "single day", start: day(2025, 3, 15), end: day(2025, 3, 15)},
		{name: "across month boundary", start: day(2025, 1, 20), end: day(2025, 2, 5)},
		{name: "45 days", start: day(2025, 1, 1), end: day(2025, 2, 14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DateRange{Start: tt.start, End: tt.end}
			prev := r.PreviousPeriod()

			assert.Equal(t, r.End.Sub(r.Start), prev.End.Sub(prev.Start))
			assert.Equal(t, tt.start.AddDate(0, 0, -1), prev.End)
			assert.True(t, prev.End.Before(r.Start))
		})
	}
}

func TestSplitChunks(t *testing.T) {
	t.Run("range shorter than max stays whole", func(t *testing.T) {
		r := DateRange{Start: day(2025, 2, 1), End: day(2025, 2, 10)}
		chunks := r.SplitChunks(30)
		require.Len(t, chunks, 1)
		assert.Equal(t, r, chunks[0])
	})

	t.Run("45 days split at 30", func(t *testing.T) {
		r := DateRange{Start: day(2025, 1, 1), End: day(2025, 2, 14)}
		chunks := r.SplitChunks(30)
		require.Len(t, chunks, 2)

		assert.Equal(t, day(2025, 1, 1), chunks[0].Start)
		assert.Equal(t, day(2025, 1, 30), chunks[0].End)
		assert.Equal(t, day(2025, 1, 31), chunks[1].Start)
		assert.Equal(t, day(2025, 2, 14), chunks[1].End)
	})

	t.Run("chunks cover the range without gaps or overlap", func(t *testing.T) {
		r := DateRange{Start: day(2025, 1, 1), End: day(2025, 3, 20)}

		for _, maxDays := range []int{7, 15, 30} {
			chunks := r.SplitChunks(maxDays)
			require.NotEmpty(t, chunks)

			assert.Equal(t, r.Start, chunks[0].Start)
			assert.Equal(t, r.End, chunks[len(chunks)-1].End)

			for i := 1; i < len(chunks); i++ {
				assert.Equal(t, chunks[i-1].End.AddDate(0, 0, 1), chunks[i].Start)
			}
		}
	})
}

func TestContains(t *testing.T) {
	r := DateRange{Start: day(2025, 2, 1), End: day(2025, 2, 10)}

	assert.True(t, r.Contains(day(2025, 2, 1)))
	assert.True(t, r.Contains(time.Date(2025, 2, 10, 23, 59, 59, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, 2, 5, 12, 30, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(day(2025, 2, 11)))
}
