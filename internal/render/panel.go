package render

import (
	"fmt"
	"strings"

	"botnetworth/internal/domain"
)

// Panel geometry in cells.
const (
	PanelWidth  = 40
	PanelHeight = 3
)

// PanelLines formats a business as its three panel rows, each padded to
// PanelWidth so a redraw overwrites whatever the previous frame left:
//
//	Click Farm
//	Lvl 2  $2.00/cycle
//	[██████████▏         ] 00:00:01
func PanelLines(b domain.Business) [PanelHeight]string {
	bar := ProgressBar(b.Elapsed(), b.Cycle(), BarWidth)
	return [PanelHeight]string{
		Pad(b.Name, PanelWidth),
		Pad(fmt.Sprintf("Lvl %d  $%.2f/cycle", b.Level(), b.Revenue()), PanelWidth),
		Pad("["+Pad(bar, BarWidth)+"] "+Timer(b.Remaining()), PanelWidth),
	}
}

// Panel positions the panel of b with its first row at (x, y).
func Panel(b domain.Business, x, y int) string {
	var sb strings.Builder
	for i, line := range PanelLines(b) {
		sb.WriteString(Text{X: x, Y: y + i, Content: line}.String())
	}
	return sb.String()
}
