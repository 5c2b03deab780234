package termlabel

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/drift/pkg/graphics"
)

// pointsPerCell maps layout points to terminal columns.
const pointsPerCell = 10

const (
	defaultWidth = 40
	echoChar     = '•'
)

// SubtleStyle renders help text.
var SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Color converts a Drift color to a lipgloss color. Alpha is dropped.
func Color(c graphics.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF))
}

func foreground(c graphics.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Color(c))
}

func cells(points float64) int {
	return max(int(points/pointsPerCell+0.5), 0)
}
