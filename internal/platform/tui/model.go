package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/game"
	"github.com/vovakirdan/tui-rpg/internal/quest"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

// Options is everything a play session needs besides the chosen class.
type Options struct {
	Content *config.Content
	Tuning  config.TuningConfig
	Store   *storage.Store  // nil disables run records
	Logger  *log.Logger     // nil discards
	Quests  quest.Generator // nil uses static quests only
	Runtime core.RuntimeConfig
}

type panel int

const (
	panelNone panel = iota
	panelPause
	panelSkills
	panelShop
)

const eventLogRows = 4

// chatChance is the 1-in-N chance a struck monster says something.
const chatChance = 6

var shopItems = []game.ShopItem{game.ShopHPPotion, game.ShopMPPotion, game.ShopAttack, game.ShopMaxHP, game.ShopMaxMP}

// GameModel is the Bubble Tea model hosting one world.
type GameModel struct {
	opts    Options
	world   *game.World
	journal *quest.Journal
	class   string
	seed    int64
	rng     *rand.Rand // host-side randomness, never shared with the world

	keys   GameKeyMap
	help   help.Model
	input  *KeyState
	screen *core.Screen
	snap   game.Snapshot
	lines  []string
	last   time.Time
	loop   uint64

	panel       panel
	cursor      int
	cause       string
	saved       bool
	questFailed int // stage on which the last quest request failed
	quitting    bool
	backToMenu  bool
}

// NewGameModel starts a run of class.
func NewGameModel(class string, opts Options) (GameModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	journal := quest.NewJournal(opts.Content)
	world := game.New(opts.Content, opts.Tuning,
		game.WithLogger(opts.Logger),
		game.WithQuestTracker(journal),
	)
	if !world.Reset(class, seed) {
		return GameModel{}, fmt.Errorf("unknown class %q", class)
	}

	m := GameModel{
		opts:    opts,
		world:   world,
		journal: journal,
		class:   class,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)), //#nosec G404 -- cosmetic chat lines
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		input:   NewKeyState(),
		screen:  core.NewScreen(max(opts.Runtime.ScreenW, 1), max(opts.Runtime.ScreenH-1, 1)),
		loop:    newLoopID(),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.snap = world.Snapshot()
	m.logEvents(world.DrainEvents())
	m.ensureQuest()
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	}

	if m.snap.GameOver {
		switch {
		case key.Matches(msg, m.keys.Restart):
			m.restart()
		case msg.String() == "esc", msg.String() == "b":
			m.backToMenu = true
		}
		return m, nil
	}

	if m.panel != panelNone {
		m.handlePanelKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.openPanel(panelPause)
	case key.Matches(msg, m.keys.SkillPanel):
		m.openPanel(panelSkills)
	case key.Matches(msg, m.keys.Shop):
		m.openPanel(panelShop)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Advance):
		if !m.world.AdvanceClass() {
			m.addLine("Cannot advance yet")
		}
		m.afterCommand()
	default:
		m.input.Press(m.keys.Action(msg))
	}
	return m, nil
}

func (m *GameModel) openPanel(p panel) {
	m.panel = p
	m.cursor = 0
	m.input.Reset()
}

func (m *GameModel) handlePanelKey(msg tea.KeyMsg) {
	switch m.panel {
	case panelPause:
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.panel = panelNone
		case msg.String() == "b":
			m.finishRun()
			m.backToMenu = true
		}
		return
	case panelSkills:
		if key.Matches(msg, m.keys.SkillPanel) || msg.String() == "esc" {
			m.panel = panelNone
			return
		}
	case panelShop:
		if key.Matches(msg, m.keys.Shop) || msg.String() == "esc" {
			m.panel = panelNone
			return
		}
	}

	n := m.panelLen()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
		return
	case "enter":
		m.panelSelect()
		return
	}

	// Skill hotkeys bind the highlighted skill.
	if m.panel == panelSkills {
		skills := m.world.Content().ClassSkills(m.class)
		for i, b := range m.keys.Skills {
			if key.Matches(msg, b) && m.cursor < len(skills) {
				if !m.world.AssignSkillSlot(skills[m.cursor].ID, core.SkillActions[i]) {
					m.addLine("Only learned active skills can be bound")
				}
				m.afterCommand()
			}
		}
	}
}

func (m *GameModel) panelLen() int {
	switch m.panel {
	case panelSkills:
		return len(m.world.Content().ClassSkills(m.class))
	case panelShop:
		return len(shopItems)
	}
	return 0
}

func (m *GameModel) panelSelect() {
	switch m.panel {
	case panelSkills:
		skills := m.world.Content().ClassSkills(m.class)
		if m.cursor >= len(skills) {
			return
		}
		s := skills[m.cursor]
		if !m.world.UpgradeSkill(s.ID) {
			m.addLine(fmt.Sprintf("Cannot learn %s", s.Name))
		}
	case panelShop:
		item := shopItems[m.cursor]
		price := m.world.PriceOf(item)
		if !m.world.Purchase(item, price) {
			m.addLine(fmt.Sprintf("Cannot buy %s", item))
		}
	}
	m.afterCommand()
}

// afterCommand refreshes state changed outside Advance.
func (m *GameModel) afterCommand() {
	m.snap = m.world.Snapshot()
	m.logEvents(m.world.DrainEvents())
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0
	if !m.last.IsZero() {
		dt = core.FrameDelta(float64(now.Sub(m.last).Microseconds()) / 1000)
	}
	m.last = now

	res := m.world.Advance(dt, m.input.Frame(), m.panel == panelNone)
	m.snap = res.Snapshot
	m.logEvents(res.Events)
	m.ensureQuest()

	if m.snap.GameOver {
		m.finishRun()
	}
	return m, tickCmd(m.opts.Runtime.TickRate, m.loop)
}

func (m *GameModel) addLine(s string) {
	m.lines = append(m.lines, s)
	if len(m.lines) > 50 {
		m.lines = m.lines[len(m.lines)-50:]
	}
}

func (m *GameModel) logEvents(events []game.Event) {
	for _, e := range events {
		switch e.Kind {
		case game.EventEnemyHit:
			if m.rng.Intn(chatChance) == 0 {
				m.addLine(fmt.Sprintf("%s: %q", e.Subject, quest.ChatLine(e.Subject, m.rng)))
			}
		case game.EventJump, game.EventPlayerHit, game.EventPlayerEvaded:
		case game.EventGameOver:
			m.cause = e.Subject
			m.addLine(e.Message)
		default:
			m.addLine(e.Message)
		}
	}
}

// ensureQuest hands out a new quest when the journal is idle. A failed
// request is retried on the next stage.
func (m *GameModel) ensureQuest() {
	if !m.journal.NeedsQuest() || m.questFailed == m.snap.Stage || m.snap.GameOver {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), quest.GenerateTimeout)
	defer cancel()

	p := m.world.Player()
	q, err := m.journal.Next(ctx, m.opts.Quests, m.world.Biome(), p.Level, m.snap.Stage, m.rng)
	if err != nil {
		m.opts.Logger.Debug("quest request", "stage", m.snap.Stage, "error", err)
		if errors.Is(err, quest.ErrNoTemplates) {
			m.questFailed = m.snap.Stage
			return
		}
	}
	m.addLine(fmt.Sprintf("New quest: %s", q.Title))
}

// finishRun records the run once.
func (m *GameModel) finishRun() {
	if m.saved {
		return
	}
	m.saved = true
	if m.opts.Store == nil {
		return
	}
	p := m.world.Player()
	rec := storage.RunRecord{
		Class:    p.Class,
		Level:    p.Level,
		MaxStage: p.MaxStage,
		Gold:     p.Gold,
		Kills:    p.Kills,
		Ticks:    m.world.Tick(),
		Cause:    m.cause,
		Advanced: p.Advanced,
		Seed:     m.seed,
	}
	id, err := m.opts.Store.SaveRun(rec)
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "id", id, "class", rec.Class, "stage", rec.MaxStage, "level", rec.Level)
}

func (m *GameModel) restart() {
	m.seed = m.rng.Int63()
	m.world.Reset(m.class, m.seed)
	m.journal.Abandon()
	m.input.Reset()
	m.lines = nil
	m.cause = ""
	m.saved = false
	m.questFailed = 0
	m.panel = panelNone
	m.afterCommand()
	m.ensureQuest()
}

// View renders the world, HUD, panels and help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	scr := m.screen
	scr.Clear()
	w, h := scr.Width(), scr.Height()
	worldRows := max(h-hudRows-eventLogRows, 1)

	cam := NewCamera(&m.snap, m.opts.Tuning.World, m.opts.Tuning.Physics.GroundY, hudRows, w, worldRows)
	RenderWorld(scr, &m.snap, m.opts.Content, cam)

	var active *quest.Quest
	if q, ok := m.journal.Active(); ok {
		active = &q
	}
	DrawHUD(scr, &m.snap, m.opts.Content, active)
	DrawEventLog(scr, m.lines, hudRows+worldRows, eventLogRows)

	switch {
	case m.snap.GameOver:
		m.drawGameOver(scr)
	case m.panel == panelPause:
		drawPanel(scr, "PAUSED", []string{"p: resume", "b: abandon run"}, -1)
	case m.panel == panelSkills:
		drawPanel(scr, fmt.Sprintf("SKILLS (SP %d)", m.snap.Player.SP), m.skillLines(), m.cursor)
	case m.panel == panelShop:
		drawPanel(scr, fmt.Sprintf("SHOP (%dG)", m.snap.Player.Gold), m.shopLines(), m.cursor)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(scr) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func (m GameModel) skillLines() []string {
	p := &m.snap.Player
	skills := m.opts.Content.ClassSkills(m.class)
	lines := make([]string, 0, len(skills)+1)
	for _, s := range skills {
		slot := ""
		if a, ok := p.SlotOf(s.ID); ok {
			slot = " [" + a.String() + "]"
		}
		req := ""
		if p.Level < s.ReqLevel {
			req = fmt.Sprintf(" (Lv.%d)", s.ReqLevel)
		}
		lines = append(lines, fmt.Sprintf("%-14s %-7s %d/%d%s%s", s.Name, s.Kind, p.Skills[s.ID], s.MaxLevel, req, slot))
	}
	return append(lines, "", "enter: learn  a-g: bind")
}

func (m GameModel) shopLines() []string {
	lines := make([]string, 0, len(shopItems)+2)
	for _, it := range shopItems {
		price := m.world.PriceOf(it)
		if price == math.MaxInt {
			lines = append(lines, fmt.Sprintf("%-16s %7s", it, "maxed"))
			continue
		}
		lines = append(lines, fmt.Sprintf("%-16s %6dG", it, price))
	}
	return append(lines, "", "enter: buy")
}

func (m GameModel) drawGameOver(scr *core.Screen) {
	p := &m.snap.Player
	lines := []string{
		fmt.Sprintf("Reached stage %d at level %d", p.MaxStage, p.Level),
		fmt.Sprintf("%d kills, %d gold", p.Kills, p.Gold),
	}
	if m.cause != "" {
		lines = append(lines, "Slain by "+m.cause)
	}
	lines = append(lines, "", "r: restart  b: menu")
	drawPanel(scr, "YOU DIED", lines, -1)
}

// drawPanel draws a centered box with a title and lines. selected < 0
// highlights nothing.
func drawPanel(scr *core.Screen, title string, lines []string, selected int) {
	width := len([]rune(title)) + 4
	for _, l := range lines {
		width = max(width, len([]rune(l))+6)
	}
	height := len(lines) + 4
	x0 := max(0, (scr.Width()-width)/2)
	y0 := max(0, (scr.Height()-height)/2)

	scr.FillRect(x0, y0, width, height, ' ', core.ColorDefault)
	scr.DrawBox(x0, y0, width, height, core.ColorWhite)
	scr.DrawTextColored(x0+(width-len([]rune(title)))/2, y0+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		col, prefix := core.ColorWhite, "  "
		if i == selected {
			col, prefix = core.ColorBrightCyan, "> "
		}
		scr.DrawTextColored(x0+2, y0+3+i, prefix+l, col)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program: class picker, then play.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
