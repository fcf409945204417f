package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUntilNextHour(t *testing.T) {
	loc := time.FixedZone("America/Mexico_City", -6*3600)

	cases := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "todavía no llega la hora de hoy",
			now:  time.Date(2026, 3, 10, 5, 30, 0, 0, loc),
			hour: 7,
			want: 90 * time.Minute,
		},
		{
			name: "la hora de hoy ya pasó: mañana",
			now:  time.Date(2026, 3, 10, 9, 0, 0, 0, loc),
			hour: 7,
			want: 22 * time.Hour,
		},
		{
			name: "exactamente a la hora: la siguiente es mañana",
			now:  time.Date(2026, 3, 10, 7, 0, 0, 0, loc),
			hour: 7,
			want: 24 * time.Hour,
		},
		{
			name: "un segundo antes",
			now:  time.Date(2026, 3, 10, 6, 59, 59, 0, loc),
			hour: 7,
			want: time.Second,
		},
		{
			name: "medianoche como hora de barrido",
			now:  time.Date(2026, 3, 10, 0, 0, 1, 0, loc),
			hour: 0,
			want: 24*time.Hour - time.Second,
		},
		{
			name: "fin de mes",
			now:  time.Date(2026, 3, 31, 23, 0, 0, 0, loc),
			hour: 7,
			want: 8 * time.Hour,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := untilNextHour(tc.now, tc.hour)
			assert.Equal(t, tc.want, got)
			assert.Positive(t, got)
		})
	}
}
