package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsISODate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid date", input: "2025-03-14", want: true},
		{name: "leap day", input: "2024-02-29", want: true},
		{name: "invalid day", input: "2025-02-30", want: false},
		{name: "timestamp not a date", input: "2025-03-14T10:00:00Z", want: false},
		{name: "missing zero padding", input: "2025-3-4", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsISODate(tt.input))
		})
	}
}

func TestIsOnOrBefore(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		reference string
		want      bool
	}{
		{name: "yesterday is due", date: "2025-03-13", reference: "2025-03-14", want: true},
		{name: "same day is due", date: "2025-03-14", reference: "2025-03-14", want: true},
		{name: "tomorrow is not due", date: "2025-03-15", reference: "2025-03-14", want: false},
		{name: "year boundary", date: "2024-12-31", reference: "2025-01-01", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOnOrBefore(tt.date, tt.reference))
		})
	}
}
