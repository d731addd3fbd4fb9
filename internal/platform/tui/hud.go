package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/game"
	"github.com/vovakirdan/tui-rpg/internal/quest"
)

// hudRows is the height of the status area above the world.
const hudRows = 2

// bar renders a fixed width gauge such as [#####-----].
func bar(cur, maxVal, width int) string {
	if maxVal <= 0 || width <= 0 {
		return "[" + strings.Repeat("-", max(width, 0)) + "]"
	}
	filled := core.Clamp(cur*width/maxVal, 0, width)
	if cur > 0 && filled == 0 {
		filled = 1
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// cursorText writes text at x and returns the column after it.
func cursorText(scr *core.Screen, x, y int, text string, c core.Color) int {
	scr.DrawTextColored(x, y, text, c)
	return x + len([]rune(text))
}

// DrawHUD draws the two status rows: vitals on the first, progress on the
// second.
func DrawHUD(scr *core.Screen, s *game.Snapshot, content *config.Content, q *quest.Quest) {
	p := &s.Player
	name := p.Class
	if cl := content.Class(p.Class); cl != nil {
		name = cl.Name
		if p.Advanced && cl.AdvancedName != "" {
			name = cl.AdvancedName
		}
	}

	x := cursorText(scr, 0, 0, fmt.Sprintf("%s Lv.%d ", name, p.Level), core.ColorBrightWhite)
	x = cursorText(scr, x, 0, "HP"+bar(p.HP, p.MaxHP, 10), core.ColorRed)
	x = cursorText(scr, x, 0, fmt.Sprintf(" %d/%d ", p.HP, p.MaxHP), core.ColorWhite)
	if p.Shield > 0 {
		x = cursorText(scr, x, 0, fmt.Sprintf("+%d ", p.Shield), core.ColorCyan)
	}
	x = cursorText(scr, x, 0, "MP"+bar(p.MP, p.MaxMP, 8), core.ColorBlue)
	x = cursorText(scr, x, 0, fmt.Sprintf(" %d/%d ", p.MP, p.MaxMP), core.ColorWhite)
	x = cursorText(scr, x, 0, "EXP"+bar(p.Exp, p.MaxExp, 8), core.ColorGreen)
	if p.SP > 0 {
		x = cursorText(scr, x, 0, fmt.Sprintf(" SP %d", p.SP), core.ColorBrightYellow)
	}
	if s.Boss != nil {
		x = cursorText(scr, x+1, 0, fmt.Sprintf("%s ", s.Boss.Type.ID), core.ColorBrightMagenta)
		cursorText(scr, x, 0, bar(s.Boss.HP, s.Boss.MaxHP, 12), core.ColorBrightMagenta)
	}

	x = cursorText(scr, 0, 1, fmt.Sprintf("Stage %d %s ", s.Stage, s.Biome), core.ColorBrightGreen)
	x = cursorText(scr, x, 1, fmt.Sprintf("%dG ", p.Gold), core.ColorGold)
	x = cursorText(scr, x, 1, fmt.Sprintf("♥%d ", p.HPPotions), core.ColorRed)
	x = cursorText(scr, x, 1, fmt.Sprintf("♦%d ", p.MPPotions), core.ColorBlue)
	x = cursorText(scr, x, 1, fmt.Sprintf("[%s] ", p.Weapon), core.ColorBrightWhite)

	keys := []string{"a", "s", "d", "f", "g"}
	for i, a := range core.SkillActions {
		id, ok := p.Slots[a]
		if !ok {
			x = cursorText(scr, x, 1, keys[i]+":- ", core.ColorGray)
			continue
		}
		label := id
		if sd := content.Skill(id); sd != nil && sd.Name != "" {
			label = sd.Name
		}
		col := core.ColorCyan
		if cd := p.Cooldowns[id]; cd > 0 {
			label = fmt.Sprintf("%s %ds", label, (cd+59)/60)
			col = core.ColorGray
		}
		x = cursorText(scr, x, 1, keys[i]+":"+label+" ", col)
	}

	if q != nil && !q.Completed {
		cursorText(scr, x, 1, fmt.Sprintf("| %s %d/%d", q.ItemName, q.CurrentCount, q.TargetCount), core.ColorYellow)
	}
}

// DrawEventLog draws the newest lines at the bottom of the given rows.
func DrawEventLog(scr *core.Screen, lines []string, top, rows int) {
	start := max(0, len(lines)-rows)
	for i, l := range lines[start:] {
		col := core.ColorGray
		if i == len(lines[start:])-1 {
			col = core.ColorWhite
		}
		scr.DrawTextColored(1, top+i, l, col)
	}
}
