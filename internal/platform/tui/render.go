package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vbelenko/termblast/internal/config"
	"github.com/vbelenko/termblast/internal/core"
	"github.com/vbelenko/termblast/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// glyphs maps sprite sheet cells, addressed as [row][col], to the
// terminal cell used to fill that sprite's projected area. Backdrops
// render blank; the HUD text carries those screens.
var glyphs = [4][4]core.Cell{
	{ // row 0
		{Rune: '▲', Color: core.ColorBrightCyan}, // player, facing right
		{Rune: ' ', Color: core.ColorDefault},
		{Rune: '▲', Color: core.ColorBrightCyan}, // player, facing left
		{Rune: '•', Color: core.ColorBrightRed},  // enemy eyes
	},
	{ // row 1
		{Rune: '*', Color: core.ColorBrightMagenta}, // enemy shot
		{Rune: '▒', Color: core.ColorGreen},         // enemy body, frame A
		{Rune: '▓', Color: core.ColorGreen},         // enemy body, frame B
		{Rune: '|', Color: core.ColorBrightYellow},  // player shot
	},
	{ // row 2
		{Rune: '░', Color: core.ColorGray},        // health bar border
		{Rune: '█', Color: core.ColorBrightGreen}, // health bar fill
		{Rune: ' ', Color: core.ColorDefault},     // win backdrop
		{Rune: ' ', Color: core.ColorDefault},     // game-over backdrop
	},
	{ // row 3
		{Rune: ' ', Color: core.ColorDefault}, // title backdrop
		{Rune: ' ', Color: core.ColorDefault}, // boss gate backdrop
		{Rune: ' ', Color: core.ColorDefault}, // stage-cleared backdrop
		{Rune: ' ', Color: core.ColorDefault},
	},
}

// Renderer projects the simulation's sprite registry onto a terminal
// cell buffer. The playfield coordinate system has y growing upward;
// the screen has y growing downward, so rows are flipped.
type Renderer struct {
	field config.PlayfieldConfig
}

// NewRenderer creates a renderer for the given playfield dimensions.
func NewRenderer(field config.PlayfieldConfig) *Renderer {
	return &Renderer{field: field}
}

// Draw clears the screen and renders the current simulation frame:
// active sprites largest-first so small ones stay on top, then the
// state-specific HUD text.
func (r *Renderer) Draw(sim *game.Simulation, s *core.Screen) {
	s.Clear()

	reg := sim.Registry()
	type drawable struct {
		slot int
		area float64
	}
	var order []drawable
	for slot, attr := range reg.Attrs() {
		if !reg.Active(slot) || attr.IsZero() {
			continue
		}
		order = append(order, drawable{slot, attr.Screen.W * attr.Screen.H})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].area != order[j].area {
			return order[i].area > order[j].area
		}
		return order[i].slot < order[j].slot
	})

	for _, d := range order {
		r.drawSprite(reg.At(d.slot).Screen, reg.At(d.slot).Atlas, s)
	}

	r.drawHUD(sim, s)
}

// drawSprite fills the sprite's projected cell rectangle with its glyph.
func (r *Renderer) drawSprite(world, atlas core.Rect, s *core.Screen) {
	col, row, ok := game.AtlasIndex(atlas)
	if !ok {
		return
	}
	cell := glyphs[row][col]
	if cell.Rune == ' ' {
		return
	}

	x0, y0, w, h := r.project(world, s)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetCell(x0+dx, y0+dy, cell)
		}
	}
}

// project maps a playfield rect to screen cells, flipping the y axis.
// Every visible sprite spans at least one cell.
func (r *Renderer) project(world core.Rect, s *core.Screen) (x, y, w, h int) {
	sw := float64(s.Width())
	sh := float64(s.Height())

	x = int(world.X / r.field.Width * sw)
	w = core.Max(1, int(world.W/r.field.Width*sw))
	h = core.Max(1, int(world.H/r.field.Height*sh))
	// Top edge of the sprite in screen rows.
	y = int((1 - (world.Y+world.H)/r.field.Height) * sh)
	return x, y, w, h
}

// drawHUD overlays state-specific text.
func (r *Renderer) drawHUD(sim *game.Simulation, s *core.Screen) {
	mid := s.Height() / 2

	switch sim.State() {
	case game.StateTitle:
		s.DrawTextCentered(mid-2, "T E R M B L A S T")
		s.DrawTextCentered(mid, "enter: start    tab: boss gate")
		s.DrawTextCentered(mid+1, "a/d: move    space: shoot    q: quit")
	case game.StateTitle2:
		s.DrawTextCentered(mid-2, "B O S S   G A T E")
		s.DrawTextCentered(mid, "enter: fight    tab: back")
	case game.StateGameOver, game.StateBossGameOver:
		s.DrawTextCentered(mid-1, "G A M E   O V E R")
		s.DrawTextCentered(mid+1, "r: retry    q: quit")
	case game.StateStageCleared:
		s.DrawTextCentered(mid-1, "S T A G E   C L E A R E D")
		s.DrawTextCentered(mid+1, "enter: next stage")
	case game.StateWin:
		s.DrawTextCentered(mid-1, "Y O U   W I N")
		s.DrawTextCentered(mid+1, "q: quit")
	case game.StateGameplay:
		if p := sim.Player(); p != nil {
			s.DrawText(1, s.Height()-1, fmt.Sprintf("charge %d", p.Charge))
		}
		s.DrawText(1, 0, fmt.Sprintf("stage %d", sim.LevelIndex()+1))
	case game.StateBossGameplay:
		s.DrawTextColored(1, 0, "boss", core.ColorBrightRed)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
