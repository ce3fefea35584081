package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCrossFormatEquivalence(t *testing.T) {
	n := NewDateNormalizer(nil)
	want := time.Date(2025, time.May, 14, 21, 21, 0, 0, DefaultLocation)

	tests := []struct {
		name     string
		fragment string
	}{
		{"month first 12h", "May 14, 2025 9:21 PM"},
		{"day first 24h", "14 May 2025 21:21"},
		{"iso like", "2025-05-14 21:21"},
		{"iso like T separator", "2025/05/14T21:21"},
		{"mdy 12h", "05-14-2025 9:21 PM"},
		{"epoch seconds", "timestamp 1747228860"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.Parse(tt.fragment)
			require.True(t, ok, "fragment %q should parse", tt.fragment)
			assert.True(t, want.Equal(got), "want %v, got %v", want, got)
		})
	}
}

func TestParseEpochMilliseconds(t *testing.T) {
	n := NewDateNormalizer(nil)
	got, ok := n.Parse("unix 1747228860000")
	require.True(t, ok)
	want := time.Date(2025, time.May, 14, 21, 21, 0, 0, DefaultLocation)
	assert.True(t, want.Equal(got))
}

func TestParseFirstMatchWins(t *testing.T) {
	n := NewDateNormalizer(nil)

	// Both a month-first and an ISO-like shape present; the earlier family in
	// the priority list must win even though the ISO one appears first in text.
	got, ok := n.Parse("2025-01-01 08:00 and also May 14, 2025 9:21 PM")
	require.True(t, ok)
	assert.Equal(t, time.May, got.Month())
	assert.Equal(t, 14, got.Day())
}

func TestParseInvalidCalendarDateDoesNotFallThrough(t *testing.T) {
	n := NewDateNormalizer(nil)

	// The ISO family matches "2025-02-30 10:00" but February 30 is not a real
	// date; the fragment also carries an epoch that a fallthrough would find.
	_, ok := n.Parse("2025-02-30 10:00 epoch 1747228860")
	assert.False(t, ok)
}

func TestParseNoDate(t *testing.T) {
	n := NewDateNormalizer(nil)
	_, ok := n.Parse("no temporal content here")
	assert.False(t, ok)
}

func TestParseDay(t *testing.T) {
	n := NewDateNormalizer(nil)

	tests := []struct {
		name     string
		fragment string
		want     time.Time
		ok       bool
	}{
		{"month name", "May 14, 2025", time.Date(2025, time.May, 14, 0, 0, 0, 0, DefaultLocation), true},
		{"month name no comma", "May 14 2025", time.Date(2025, time.May, 14, 0, 0, 0, 0, DefaultLocation), true},
		{"ymd", "2025/05/14", time.Date(2025, time.May, 14, 0, 0, 0, 0, DefaultLocation), true},
		{"mdy", "05/14/2025", time.Date(2025, time.May, 14, 0, 0, 0, 0, DefaultLocation), true},
		{"february 30", "2025-02-30", time.Time{}, false},
		{"garbage", "hello world", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.ParseDay(tt.fragment)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseLoosePrefersTimedShape(t *testing.T) {
	n := NewDateNormalizer(nil)
	got, ok := n.ParseLoose("May 14, 2025 9:21 PM")
	require.True(t, ok)
	assert.Equal(t, 21, got.Hour())

	got, ok = n.ParseLoose("May 14, 2025")
	require.True(t, ok)
	assert.Equal(t, 0, got.Hour())
}

func TestExplicitLocationOverridesDefault(t *testing.T) {
	utc := time.UTC
	n := NewDateNormalizer(utc)
	got, ok := n.Parse("May 14, 2025 9:21 PM")
	require.True(t, ok)
	assert.Equal(t, utc, got.Location())
	assert.Equal(t, int64(1747257660), got.Unix()) // 8h later than the +08 reading
}
