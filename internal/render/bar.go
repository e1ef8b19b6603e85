package render

import (
	"fmt"
	"math/bits"
	"strings"
	"time"
)

// BarWidth is the number of cells of a business progress bar.
const BarWidth = 20

// BarGlyphs are the eighth-step fills of one bar cell, emptiest first.
var BarGlyphs = [8]string{
	"\u258F", // ▏
	"\u258E", // ▎
	"\u258D", // ▍
	"\u258C", // ▌
	"\u258B", // ▋
	"\u258A", // ▊
	"\u2589", // ▉
	"\u2588", // █
}

// ProgressBar draws elapsed/cycle over width cells with eighth-cell
// resolution: floor(ratio*width) full cells followed by one partial glyph
// picked by the remaining eighths. It is empty while nothing has elapsed
// and never exceeds width cells.
func ProgressBar(elapsed, cycle time.Duration, width int) string {
	if elapsed <= 0 || cycle <= 0 || width <= 0 {
		return ""
	}
	full := BarGlyphs[len(BarGlyphs)-1]

	// eighths = floor(elapsed * width * 8 / cycle) in 128-bit arithmetic.
	hi, lo := bits.Mul64(uint64(elapsed), uint64(width)*8)
	if hi >= uint64(cycle) {
		return strings.Repeat(full, width)
	}
	eighths, _ := bits.Div64(hi, lo, uint64(cycle))

	blocks := eighths / 8
	if blocks >= uint64(width) {
		return strings.Repeat(full, width)
	}
	return strings.Repeat(full, int(blocks)) + BarGlyphs[eighths%8]
}

// Timer formats d as zero-padded HH:MM:SS, truncating to whole seconds.
func Timer(d time.Duration) string {
	s := int64(d / time.Second)
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s%3600/60, s%60)
}
