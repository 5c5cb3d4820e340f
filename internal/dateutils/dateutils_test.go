package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "italian day-first form",
			input:    "15/03/2024",
			expected: "2024-03-15",
		},
		{
			name:     "ISO form",
			input:    "2024-03-15",
			expected: "2024-03-15",
		},
		{
			name:     "whitespace is trimmed",
			input:    "  01/01/2023 ",
			expected: "2023-01-01",
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseFlexibleDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed.Format(LayoutISO))
		})
	}
}

func TestToItalian(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", ToItalian(d))
}

func TestToCompact(t *testing.T) {
	d := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05032024", ToCompact(d))
}
