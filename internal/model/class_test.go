package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClass_HasStarted(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		classDate time.Time
		startTime string
		want      bool
	}{
		{"yesterday", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), "18:00", true},
		{"today earlier", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "09:00", true},
		{"today exactly now", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "12:30", true},
		{"today later", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "12:31", false},
		{"tomorrow", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), "09:00", false},
		{"next month earlier clock time", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "08:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Class{ClassDate: tt.classDate, StartTime: tt.startTime}
			assert.Equal(t, tt.want, c.HasStarted(now))
		})
	}
}
