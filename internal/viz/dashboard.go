package viz

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/logistic"
)

// Model is the dashboard state. It is a value type; Update returns the
// modified copy.
type Model struct {
	params  logistic.Params
	fields  []logistic.Field
	cursor  int
	editing bool
	editBuf string
	editErr error

	series logistic.Series
	err    error
	cycles int

	offset    int
	tableRows int
	chartH    int
	chartW    int

	theme   int
	styles  styles
	presets []string
	preset  int

	keys     KeyMap
	help     help.Model
	showHelp bool

	width, height int
	logger        zerolog.Logger
}

// NewModel builds the dashboard from cfg and runs the first render cycle.
func NewModel(cfg *config.Config, logger zerolog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := themeIndex(cfg.Theme)
	m := Model{
		params:    cfg.Params,
		fields:    logistic.Fields(),
		tableRows: max(cfg.TableRows, 1),
		chartH:    max(cfg.ChartHeight, 2),
		chartW:    max(cfg.ChartWidth, 10),
		theme:     theme,
		styles:    newStyles(Themes[theme]),
		presets:   config.ListPresets(),
		preset:    -1,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     100,
		height:    40,
		logger:    logger,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Params() logistic.Params { return m.params }
func (m Model) Series() logistic.Series { return m.series }
func (m Model) Err() error              { return m.err }
func (m Model) Cycles() int             { return m.cycles }

// recompute is one render cycle: evaluate in full, or record the error and
// drop the previous series.
func (m *Model) recompute() {
	m.cycles++
	m.series, m.err = logistic.Evaluate(m.params)
	if m.err != nil {
		m.series = nil
		m.offset = 0
		m.logger.Warn().Err(m.err).Int("n0", m.params.N0).Float64("r", m.params.R).
			Int("k", m.params.K).Int("tmax", m.params.TMax).Msg("evaluation refused")
		return
	}
	m.offset = min(m.offset, max(len(m.series)-m.tableRows, 0))
	m.logger.Debug().Int("points", len(m.series)).Int("cycle", m.cycles).Msg("series evaluated")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Dec):
		m.step(-1)
	case key.Matches(msg, m.keys.Inc):
		m.step(1)
	case key.Matches(msg, m.keys.Edit):
		f := m.fields[m.cursor]
		m.editing, m.editErr = true, nil
		m.editBuf = strconv.FormatFloat(f.Get(m.params), 'f', -1, 64)
	case key.Matches(msg, m.keys.Preset):
		m.preset = (m.preset + 1) % len(m.presets)
		p, _ := config.GetPreset(m.presets[m.preset])
		m.params = p.Params
		m.recompute()
	case key.Matches(msg, m.keys.Reset):
		m.params = logistic.DefaultParams()
		m.preset = -1
		m.recompute()
	case key.Matches(msg, m.keys.Theme):
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	case key.Matches(msg, m.keys.PageUp):
		m.offset = max(m.offset-m.tableRows, 0)
	case key.Matches(msg, m.keys.PageDown):
		m.offset = min(m.offset+m.tableRows, max(len(m.series)-m.tableRows, 0))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Edit):
		m.commitEdit()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.editing, m.editBuf, m.editErr = false, "", nil
		return m, nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				m.editBuf += string(r)
			}
		}
	}
	return m, nil
}

func (m *Model) commitEdit() {
	f := m.fields[m.cursor]
	v, err := strconv.ParseFloat(m.editBuf, 64)
	if err != nil {
		m.editErr = fmt.Errorf("%s: not a number: %q", f.Name, m.editBuf)
		return
	}
	m.editing, m.editBuf, m.editErr = false, "", nil
	m.params = f.Set(m.params, v)
	m.recompute()
}

func (m *Model) step(dir int) {
	f := m.fields[m.cursor]
	next := f.Set(m.params, f.Increment(f.Get(m.params), dir))
	if next == m.params {
		return
	}
	m.params = next
	m.recompute()
}
