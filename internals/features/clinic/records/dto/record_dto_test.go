package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptedLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2026-02-10T10:30": time.Date(2026, 2, 10, 10, 30, 0, 0, time.UTC),
		"2026-02-10 10:30": time.Date(2026, 2, 10, 10, 30, 0, 0, time.UTC),
		"2026-02-10":       time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		req := &CreateAppointmentRequest{Date: raw}
		got, ok := req.ParseDate()
		require.True(t, ok, raw)
		assert.True(t, want.Equal(got), raw)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "mañana", "10/02/2026"} {
		req := &CreateAppointmentRequest{Date: raw}
		_, ok := req.ParseDate()
		assert.False(t, ok, raw)
	}
}
