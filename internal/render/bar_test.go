package render

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	full := BarGlyphs[7]
	cycle := 2 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"never ticked", 0, ""},
		{"half", time.Second, strings.Repeat(full, 10) + BarGlyphs[0]},
		{"ratio 0.54", 1080 * time.Millisecond, strings.Repeat(full, 10) + BarGlyphs[6]},
		{"ratio 0.55", 1100 * time.Millisecond, strings.Repeat(full, 11) + BarGlyphs[0]},
		{"tiny", time.Nanosecond, BarGlyphs[0]},
		{"almost done", 1998 * time.Millisecond, strings.Repeat(full, 19) + BarGlyphs[7]},
		{"exactly on boundary", cycle, strings.Repeat(full, 20)},
		{"past boundary", 3 * cycle, strings.Repeat(full, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.elapsed, cycle, BarWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), BarWidth)
		})
	}
}

func TestProgressBarDegenerate(t *testing.T) {
	assert.Equal(t, "", ProgressBar(time.Second, 0, BarWidth))
	assert.Equal(t, "", ProgressBar(time.Second, time.Second, 0))
	assert.Equal(t, "", ProgressBar(-time.Second, time.Second, BarWidth))
}

func TestProgressBarHugeDurations(t *testing.T) {
	cycle := 1000 * 24 * time.Hour
	got := ProgressBar(cycle/4, cycle, BarWidth)
	assert.Equal(t, strings.Repeat(BarGlyphs[7], 5)+BarGlyphs[0], got)
}

func TestProgressBarNeverExceedsWidth(t *testing.T) {
	cycle := 1500 * time.Millisecond
	for elapsed := time.Duration(1); elapsed <= cycle; elapsed += time.Second / 30 {
		got := ProgressBar(elapsed, cycle, BarWidth)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), BarWidth, "elapsed %v", elapsed)
	}
}

func TestTimer(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{999 * time.Millisecond, "00:00:00"},
		{1500 * time.Millisecond, "00:00:01"},
		{59 * time.Second, "00:00:59"},
		{3661 * time.Second, "01:01:01"},
		{100 * time.Hour, "100:00:00"},
		{-time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Timer(tt.d), "duration %v", tt.d)
	}
}
