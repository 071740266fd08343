package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery_Validate(t *testing.T) {
	validDate := time.Date(2025, 3, 23, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		query   SearchQuery
		wantErr string
	}{
		{
			name:  "valid single-day query",
			query: SearchQuery{Departure: "BHX", Date: validDate},
		},
		{
			name:  "valid month sweep with weekend filter",
			query: SearchQuery{Departure: "BHX", Date: validDate, MonthSweep: true, WeekendOnly: true},
		},
		{
			name:  "four-letter code accepted",
			query: SearchQuery{Departure: "EGBB", Date: validDate},
		},
		{
			name:    "missing departure",
			query:   SearchQuery{Date: validDate},
			wantErr: "departure is required",
		},
		{
			name:    "lowercase departure rejected",
			query:   SearchQuery{Departure: "bhx", Date: validDate},
			wantErr: "IATA airport code",
		},
		{
			name:    "two-letter departure rejected",
			query:   SearchQuery{Departure: "BH", Date: validDate},
			wantErr: "IATA airport code",
		},
		{
			name:    "missing date",
			query:   SearchQuery{Departure: "BHX"},
			wantErr: "date is required",
		},
		{
			name:    "negative adults",
			query:   SearchQuery{Departure: "BHX", Date: validDate, Adults: -1},
			wantErr: "adults",
		},
		{
			name:    "negative children",
			query:   SearchQuery{Departure: "BHX", Date: validDate, Children: -2},
			wantErr: "children",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, IsInvalidRequest(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchQuery_Day(t *testing.T) {
	q := SearchQuery{
		Departure: "BHX",
		Date:      time.Date(2025, 3, 23, 18, 45, 12, 0, time.UTC),
	}

	day := q.Day()
	assert.Equal(t, time.Date(2025, 3, 23, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, time.UTC, day.Location())
}
