package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		completed int
		want      int
	}{
		{completed: -1, want: 0},
		{completed: 0, want: 0},
		{completed: 1, want: 16},
		{completed: 2, want: 33},
		{completed: 3, want: 50},
		{completed: 4, want: 66},
		{completed: 5, want: 83},
		{completed: 6, want: 100},
		{completed: 7, want: 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateProgress(tt.completed), "completed=%d", tt.completed)
	}
}
