package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{value: 0, want: "0"},
		{value: 468, want: "468"},
		{value: 999, want: "999"},
		{value: 1000, want: "1,000"},
		{value: 1234, want: "1,234"},
		{value: 7244, want: "7,244"},
		{value: 1234567, want: "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForDisplay(tt.value))
		})
	}
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "7,244", FormatKg(7243.5111))
	assert.Equal(t, "16", FormatKg(15.6))
	assert.Equal(t, "0", FormatKg(0))
}
