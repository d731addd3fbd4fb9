package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/game"
)

func testSnapshot(t *testing.T, class string) (game.Snapshot, *config.Content, config.TuningConfig) {
	t.Helper()
	content := config.MustDefaultContent()
	tuning := config.DefaultTuningConfig()
	w := game.New(content, tuning)
	if !w.Reset(class, 7) {
		t.Fatalf("Reset(%s) failed", class)
	}
	return w.Snapshot(), content, tuning
}

func screenContains(s *core.Screen, r rune) bool {
	for y := range s.Height() {
		if strings.ContainsRune(s.Row(y), r) {
			return true
		}
	}
	return false
}

func TestBar(t *testing.T) {
	tests := []struct {
		cur, max, width int
		want            string
	}{
		{10, 10, 4, "[####]"},
		{0, 10, 4, "[----]"},
		{5, 10, 4, "[##--]"},
		{1, 100, 4, "[#---]"},
		{20, 10, 4, "[####]"},
		{3, 0, 2, "[--]"},
	}
	for _, tt := range tests {
		if got := bar(tt.cur, tt.max, tt.width); got != tt.want {
			t.Errorf("bar(%d, %d, %d) = %s, want %s", tt.cur, tt.max, tt.width, got, tt.want)
		}
	}
}

func TestCameraClampsToWorld(t *testing.T) {
	s, _, tuning := testSnapshot(t, "Warrior")
	ground := tuning.Physics.GroundY

	cam := NewCamera(&s, tuning.World, ground, 0, 100, 30)
	if cam.X != 0 {
		t.Errorf("camera at the start should sit at x=0, got %v", cam.X)
	}

	s.Player.X = s.WorldWidth - 10
	cam = NewCamera(&s, tuning.World, ground, 0, 100, 30)
	if want := s.WorldWidth - tuning.World.ViewportWidth; cam.X != want {
		t.Errorf("camera at the end = %v, want %v", cam.X, want)
	}

	s.Player.X = s.WorldWidth / 2
	cam = NewCamera(&s, tuning.World, ground, 0, 100, 30)
	cx, _ := cam.Cell(s.Player.X+s.Player.W/2, ground)
	if cx < 45 || cx > 55 {
		t.Errorf("player should be centered, got column %d", cx)
	}
}

func TestCameraGroundNearBottom(t *testing.T) {
	s, _, tuning := testSnapshot(t, "Warrior")
	cam := NewCamera(&s, tuning.World, tuning.Physics.GroundY, 2, 100, 30)

	_, row := cam.Cell(0, tuning.Physics.GroundY)
	if row != 2+30-2 {
		t.Errorf("ground row = %d, want %d", row, 30)
	}
}

func TestRenderWorldDrawsEntities(t *testing.T) {
	s, content, tuning := testSnapshot(t, "Archer")
	scr := core.NewScreen(100, 30)
	cam := NewCamera(&s, tuning.World, tuning.Physics.GroundY, 0, 100, 30)

	RenderWorld(scr, &s, content, cam)

	if !screenContains(scr, 'A') {
		t.Error("archer glyph not drawn")
	}
	if !screenContains(scr, '▀') {
		t.Error("ground not drawn")
	}
	if !screenContains(scr, '>') {
		t.Error("facing marker not drawn")
	}
}

func TestRenderWorldSkipsOffscreen(t *testing.T) {
	s, content, tuning := testSnapshot(t, "Warrior")
	s.Enemies = []game.Enemy{{
		Type: content.Enemy("Slime"),
		X:    s.WorldWidth - 100, Y: tuning.Physics.GroundY - 40, W: 40, H: 40,
		HP: 30, MaxHP: 30,
	}}
	scr := core.NewScreen(100, 30)
	cam := NewCamera(&s, tuning.World, tuning.Physics.GroundY, 0, 100, 30)

	RenderWorld(scr, &s, content, cam)
	if screenContains(scr, 'o') {
		t.Error("enemy outside the viewport should not be drawn")
	}
}

func TestDrawHUD(t *testing.T) {
	s, content, _ := testSnapshot(t, "Mage")
	scr := core.NewScreen(160, 3)

	DrawHUD(scr, &s, content, nil)

	top := scr.Row(0)
	if !strings.Contains(top, "Mage Lv.1") {
		t.Errorf("HUD top row missing class and level: %q", top)
	}
	if !strings.Contains(top, "100/100") {
		t.Errorf("HUD top row missing hp: %q", top)
	}
	second := scr.Row(1)
	if !strings.Contains(second, "Stage 1") {
		t.Errorf("HUD second row missing stage: %q", second)
	}
	if !strings.Contains(second, "a:-") {
		t.Errorf("HUD should show empty skill slots: %q", second)
	}
}

func TestDrawEventLogShowsNewest(t *testing.T) {
	scr := core.NewScreen(40, 5)
	DrawEventLog(scr, []string{"one", "two", "three", "four"}, 2, 2)

	if !strings.Contains(scr.Row(2), "three") || !strings.Contains(scr.Row(3), "four") {
		t.Errorf("expected the two newest lines, got %q / %q", scr.Row(2), scr.Row(3))
	}
	if strings.Contains(scr.String(), "one") {
		t.Error("oldest line should be dropped")
	}
}

func TestDrawPanel(t *testing.T) {
	scr := core.NewScreen(60, 20)
	drawPanel(scr, "SHOP", []string{"potion", "upgrade"}, 1)

	out := scr.String()
	if !strings.Contains(out, "SHOP") {
		t.Error("panel title missing")
	}
	if !strings.Contains(out, "> upgrade") {
		t.Error("selected line should be marked")
	}
	if strings.Contains(out, "> potion") {
		t.Error("only the selected line is marked")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawTextColored(0, 0, "gold", core.ColorGold)
	scr.DrawTextColored(0, 1, "dirt", core.ColorBrown)

	out := RenderScreen(scr)
	if !strings.Contains(out, "gold") || !strings.Contains(out, "dirt") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
