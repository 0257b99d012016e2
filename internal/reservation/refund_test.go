package reservation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRefundFraction(t *testing.T) {
	cases := []struct {
		name    string
		minutes int64
		want    string
	}{
		{"two days ahead", 48 * 60, "1"},
		{"exactly 24 hours", 24 * 60, "1"},
		{"just under 24 hours", 24*60 - 1, "0.75"},
		{"13 hours", 13 * 60, "0.75"},
		{"exactly 12 hours", 12 * 60, "0.75"},
		{"10 hours", 10 * 60, "0.5"},
		{"exactly 2 hours", 2 * 60, "0.5"},
		{"just under 2 hours", 2*60 - 1, "0.25"},
		{"one hour", 60, "0.25"},
		{"one minute", 1, "0.25"},
		{"under a minute", 0, "0"},
		{"already started", -30, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := refundFraction(tc.minutes)
			want := decimal.RequireFromString(tc.want)
			assert.True(t, got.Equal(want), "want %s, got %s", want, got)
		})
	}
}
