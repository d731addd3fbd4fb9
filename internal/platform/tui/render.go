package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/game"
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
	core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorGold:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// Camera maps world pixels onto a rectangle of screen cells.
type Camera struct {
	X, Y         float64 // world position of the top-left cell
	CellW, CellH float64 // world pixels per cell
	Left, Top    int     // screen offset of the view
	Cols, Rows   int
}

// NewCamera fits the viewport into cols x rows cells, following the player
// horizontally and keeping the ground near the bottom.
func NewCamera(s *game.Snapshot, wc config.WorldConfig, groundY float64, top, cols, rows int) Camera {
	cols, rows = max(cols, 1), max(rows, 1)
	c := Camera{
		CellW: wc.ViewportWidth / float64(cols),
		CellH: wc.ViewportHeight / float64(rows),
		Top:   top,
		Cols:  cols,
		Rows:  rows,
	}
	center := s.Player.X + s.Player.W/2
	c.X = core.ClampF(center-wc.ViewportWidth/2, 0, math.Max(0, s.WorldWidth-wc.ViewportWidth))
	c.Y = groundY + c.CellH*2 - wc.ViewportHeight
	return c
}

// Cell converts a world point to a screen cell.
func (c Camera) Cell(x, y float64) (int, int) {
	return c.Left + int(math.Floor((x-c.X)/c.CellW)), c.Top + int(math.Floor((y-c.Y)/c.CellH))
}

func (c Camera) visible(cx, cy int) bool {
	return cx >= c.Left && cx < c.Left+c.Cols && cy >= c.Top && cy < c.Top+c.Rows
}

func (c Camera) put(scr *core.Screen, x, y float64, r rune, col core.Color) {
	cx, cy := c.Cell(x, y)
	if c.visible(cx, cy) {
		scr.SetColored(cx, cy, r, col)
	}
}

func (c Camera) text(scr *core.Screen, x, y float64, s string, col core.Color) {
	cx, cy := c.Cell(x, y)
	cx -= len(s) / 2
	for i, r := range s {
		if c.visible(cx+i, cy) {
			scr.SetColored(cx+i, cy, r, col)
		}
	}
}

// fill draws a world rectangle, always covering at least one cell.
func (c Camera) fill(scr *core.Screen, r core.Rect, glyph rune, col core.Color) {
	x0, y0 := c.Cell(r.X, r.Y)
	x1, y1 := c.Cell(r.Right()-0.01, r.Bottom()-0.01)
	for y := y0; y <= max(y0, y1); y++ {
		for x := x0; x <= max(x0, x1); x++ {
			if c.visible(x, y) {
				scr.SetColored(x, y, glyph, col)
			}
		}
	}
}

// RenderWorld draws a snapshot through the camera.
func RenderWorld(scr *core.Screen, s *game.Snapshot, content *config.Content, c Camera) {
	for _, pl := range s.Platforms {
		if pl.Ground {
			c.fill(scr, pl.Rect, '▀', core.ColorBrown)
			continue
		}
		c.fill(scr, core.NewRect(pl.X, pl.Y, pl.W, c.CellH/2), '=', core.ColorGreen)
	}

	exit := s.WorldWidth - 50
	for y := c.Y; y < c.Y+float64(c.Rows)*c.CellH; y += c.CellH {
		col := core.ColorBrightGreen
		if s.Boss != nil {
			col = core.ColorRed
		}
		c.put(scr, exit, y, '|', col)
	}

	for i := range s.Items {
		drawItem(scr, c, &s.Items[i])
	}
	for i := range s.Enemies {
		drawEnemy(scr, c, &s.Enemies[i])
	}
	drawPlayer(scr, c, &s.Player, content)
	for i := range s.Projectiles {
		drawProjectile(scr, c, &s.Projectiles[i])
	}
	for i := range s.Particles {
		drawParticle(scr, c, &s.Particles[i])
	}
}

func drawPlayer(scr *core.Screen, c Camera, p *game.Player, content *config.Content) {
	glyph := '@'
	if cl := content.Class(p.Class); cl != nil && cl.Glyph != "" {
		glyph = []rune(cl.Glyph)[0]
	}
	col := core.ColorBrightWhite
	switch {
	case p.Dead:
		col = core.ColorGray
	case p.Guard > 0:
		col = core.ColorCyan
	case p.Invincible > 0 && p.Invincible%6 < 3:
		col = core.ColorYellow
	}
	c.fill(scr, p.Rect(), glyph, col)
	face := '>'
	fx := p.X + p.W + c.CellW/2
	if p.Facing < 0 {
		face = '<'
		fx = p.X - c.CellW/2
	}
	c.put(scr, fx, p.Y+p.H/2, face, core.ColorWhite)
}

func drawEnemy(scr *core.Screen, c Camera, e *game.Enemy) {
	if e.Dead && e.Fade <= 0 {
		return
	}
	glyph := 'm'
	if e.Type != nil && e.Type.Glyph != "" {
		glyph = []rune(e.Type.Glyph)[0]
	}
	col := core.ColorRed
	switch {
	case e.Dead:
		col = core.ColorGray
	case e.Freeze > 0:
		col = core.ColorBrightCyan
	case e.Stun > 0:
		col = core.ColorYellow
	case e.Boss:
		col = core.ColorBrightMagenta
	case e.Slow > 0:
		col = core.ColorBlue
	}
	c.fill(scr, e.Rect(), glyph, col)

	if e.Dead || e.MaxHP <= 0 {
		return
	}
	// HP bar above the enemy.
	x0, y := c.Cell(e.X, e.Y-c.CellH)
	x1, _ := c.Cell(e.X+e.W, e.Y)
	width := max(1, x1-x0)
	filled := int(math.Ceil(float64(width) * float64(e.HP) / float64(e.MaxHP)))
	for i := range width {
		r := '·'
		if i < filled {
			r = '▬'
		}
		if c.visible(x0+i, y) {
			scr.SetColored(x0+i, y, r, core.ColorRed)
		}
	}
}

func drawProjectile(scr *core.Screen, c Camera, pr *game.Projectile) {
	glyph := '*'
	if pr.Glyph != "" {
		glyph = []rune(pr.Glyph)[0]
	}
	col := core.ColorBrightYellow
	switch {
	case pr.Enemy:
		col = core.ColorBrightRed
	case pr.Summon:
		col = core.ColorBrightMagenta
	case pr.Magic:
		col = core.ColorBrightBlue
	case pr.Trap:
		col = core.ColorOrange
	}
	c.fill(scr, pr.Rect(), glyph, col)
}

func drawItem(scr *core.Screen, c Camera, it *game.Item) {
	glyph, col := '$', core.ColorGold
	switch it.Kind {
	case game.ItemHPPotion:
		glyph, col = '♥', core.ColorRed
	case game.ItemMPPotion:
		glyph, col = '♦', core.ColorBlue
	case game.ItemWeapon:
		glyph, col = '†', core.ColorBrightWhite
	case game.ItemQuest:
		glyph, col = '?', core.ColorBrightGreen
	}
	r := it.Rect()
	c.put(scr, r.CenterX(), r.CenterY(), glyph, col)
}

func drawParticle(scr *core.Screen, c Camera, pt *game.Particle) {
	switch pt.Kind {
	case game.ParticleText:
		c.text(scr, pt.X, pt.Y, pt.Text, pt.Color)
	case game.ParticleRing, game.ParticleBurst:
		if pt.Radius <= 0 {
			c.put(scr, pt.X, pt.Y, '*', pt.Color)
			return
		}
		for a := 0.0; a < 2*math.Pi; a += math.Pi / 4 {
			c.put(scr, pt.X+math.Cos(a)*pt.Radius, pt.Y+math.Sin(a)*pt.Radius/2, '·', pt.Color)
		}
	case game.ParticlePillar:
		for i := range 3 {
			c.put(scr, pt.X, pt.Y-float64(i)*c.CellH, '‖', pt.Color)
		}
	}
}
