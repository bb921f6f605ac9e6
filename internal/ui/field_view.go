// Package ui provides the terminal catalog preview using Bubble Tea.
package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/skysim/internal/catalog"
	"github.com/litescript/skysim/internal/version"
)

const (
	// Half-width of the view in degrees
	defaultSpan = 1.25
	minSpan     = 0.05
	maxSpan     = 20.0
	zoomStep    = 1.25

	// Star glyphs by cell density
	glyphStarSingle = '·'
	glyphStarFew    = '•'
	glyphStarDense  = '●'

	glyphCenter = '+'
	glyphCircle = '∘'

	colorStarSingle = "244" // dim gray
	colorStarFew    = "250" // medium gray
	colorStarDense  = "255" // bright white
	colorCircle     = "60"  // muted purple
	colorCenter     = "229" // bright gold
	colorBackground = "236"

	// Fallback before the first WindowSizeMsg
	defaultWidth  = 80
	defaultHeight = 24

	// Header and footer lines around the canvas
	chromeLines = 2
)

// FieldModel renders a generated catalog as a density plot around its center.
// RA increases to the left and Dec upward, as on a sky chart.
type FieldModel struct {
	result *catalog.Result
	dest   string

	width  int
	height int

	span       float64
	showCircle bool
}

// NewFieldModel creates a preview for res. dest is shown in the header.
func NewFieldModel(res *catalog.Result, dest string) FieldModel {
	return FieldModel{
		result:     res,
		dest:       dest,
		width:      defaultWidth,
		height:     defaultHeight,
		span:       defaultSpan,
		showCircle: res.Clipped,
	}
}

// Run starts the preview and blocks until the user quits.
func Run(res *catalog.Result, dest string) error {
	p := tea.NewProgram(NewFieldModel(res, dest), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m FieldModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=":
			m.span = math.Max(m.span/zoomStep, minSpan)
		case "-", "_":
			m.span = math.Min(m.span*zoomStep, maxSpan)
		case "0":
			m.span = defaultSpan
		case "c":
			m.showCircle = !m.showCircle
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View implements tea.Model.
func (m FieldModel) View() string {
	if m.width < 20 || m.height < chromeLines+5 {
		return "Preview requires larger terminal"
	}

	grid := buildGrid(m.result, m.width, m.height-chromeLines, m.span, m.showCircle)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(renderGrid(grid))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m FieldModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")) // violet
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("skysim " + version.Version)
	center := dimStyle.Render(m.result.Center.Label())
	view := dimStyle.Render(fmt.Sprintf("±%.2f°", m.span))

	header := fmt.Sprintf("%s | %s | %s", title, center, view)
	if m.dest != "" {
		header += " | " + dimStyle.Render(m.dest)
	}
	return header
}

func (m FieldModel) renderStatus() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorCenter))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	counts := fmt.Sprintf("%d sampled, %d retained", m.result.Sampled, m.result.Retained())
	if m.result.Clipped {
		counts += fmt.Sprintf(" (clip %s)", m.result.Clip.Mode)
	}
	help := "+/- zoom  0 reset  c circle  q quit"
	return accentStyle.Render(counts) + "  " + dimStyle.Render(help)
}

// cell is one canvas position: the number of stars that fell in it plus
// any overlay glyph.
type cell struct {
	stars   int
	overlay rune
}

// buildGrid bins the retained points into a cols x rows canvas covering
// center ± span on both axes.
func buildGrid(res *catalog.Result, cols, rows int, span float64, circle bool) [][]cell {
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
	}
	if cols == 0 || rows == 0 {
		return grid
	}

	cra, cdec := res.Center.RAdeg, res.Center.DecDeg
	toCell := func(ra, dec float64) (int, int, bool) {
		x := int(math.Floor((cra + span - ra) / (2 * span) * float64(cols)))
		y := int(math.Floor((cdec + span - dec) / (2 * span) * float64(rows)))
		return x, y, x >= 0 && x < cols && y >= 0 && y < rows
	}

	if circle {
		drawCircle(grid, res, span)
	}
	if x, y, ok := toCell(cra, cdec); ok {
		grid[y][x].overlay = glyphCenter
	}
	for _, p := range res.Points {
		if x, y, ok := toCell(p.RA, p.Dec); ok {
			grid[y][x].stars++
		}
	}
	return grid
}

// drawCircle marks the cells the clip boundary passes through.
func drawCircle(grid [][]cell, res *catalog.Result, span float64) {
	rows, cols := len(grid), len(grid[0])
	cellW := 2 * span / float64(cols)
	cellH := 2 * span / float64(rows)

	r := res.Clip.EffectiveRadius()
	var ora, odec float64 // origin mode clips around (0, 0)
	if res.Clip.Mode == catalog.ClipCenter {
		ora, odec = res.Center.RAdeg, res.Center.DecDeg
	}

	for y := 0; y < rows; y++ {
		dec := res.Center.DecDeg + span - (float64(y)+0.5)*cellH
		for x := 0; x < cols; x++ {
			ra := res.Center.RAdeg + span - (float64(x)+0.5)*cellW
			d := math.Hypot(ra-ora, dec-odec)
			if math.Abs(d-r) <= math.Max(cellW, cellH)/2 {
				grid[y][x].overlay = glyphCircle
			}
		}
	}
}

func (c cell) glyph() (rune, string) {
	switch {
	case c.stars >= 4:
		return glyphStarDense, colorStarDense
	case c.stars >= 2:
		return glyphStarFew, colorStarFew
	case c.stars == 1:
		return glyphStarSingle, colorStarSingle
	case c.overlay == glyphCenter:
		return glyphCenter, colorCenter
	case c.overlay != 0:
		return c.overlay, colorCircle
	default:
		return ' ', colorBackground
	}
}

func renderGrid(grid [][]cell) string {
	styles := make(map[string]lipgloss.Style)
	style := func(color string) lipgloss.Style {
		s, ok := styles[color]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = s
		}
		return s
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			g, color := c.glyph()
			if g == ' ' {
				b.WriteRune(g)
				continue
			}
			b.WriteString(style(color).Render(string(g)))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
