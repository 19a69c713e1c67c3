// Package ui is a changelog browser built on the lace widget. It drives
// every delegate capability from one screen: a separated delegate with
// labeled rules, live swapping to a plain delegate, starred releases kept
// in the host state store, and a fuzzy jump prompt.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/loomworks/lace"
	"github.com/loomworks/lace/internal/config"
	"github.com/loomworks/lace/rule"
	"github.com/loomworks/lace/widget"
)

// ---- MODEL ----

type mode int

const (
	modeBrowse mode = iota
	modeJump
)

type Model struct {
	cfg       config.Config
	styles    styles
	keys      keyMap
	help      help.Model
	input     textinput.Model
	list      *widget.List
	entries   []entry
	separated bool
	mode      mode
	jumpFrom  int
	width     int
	height    int
}

func New(cfg config.Config) *Model {
	m := &Model{
		cfg:       cfg,
		styles:    newStyles(cfg),
		keys:      newKeyMap(cfg.Keys),
		help:      help.New(),
		entries:   changelog(),
		separated: true,
	}
	m.input = textinput.New()
	m.input.Prompt = "/"
	m.input.Placeholder = "jump to release"
	m.list = widget.New(m.separatedDelegate())
	m.list.Focus()
	return m
}

// buildEntry produces the element for one release. The index is in
// release space regardless of the active delegate; the star marker is
// read from the host store under the child index.
func (m *Model) buildEntry(ctx lace.Context, index int) lace.Element {
	return entryElement{
		entry:    m.entries[index],
		starred:  m.list.State(m.childIndex(index)) != nil,
		selected: ctx.Cursor == index,
		styles:   m.styles,
	}
}

// buildRule produces the rule between release index and index+1,
// labeling it when a major version boundary falls between the two.
func (m *Model) buildRule(_ lace.Context, index int) lace.Element {
	sep := m.cfg.UI.Separator
	r := rule.Rule{Style: m.styles.rule}
	switch sep.Style {
	case "dots":
		r.Line = "·"
	case "gradient":
		r.GradientFrom = sep.GradientFrom
		r.GradientTo = sep.GradientTo
	}
	if above, below := m.entries[index], m.entries[index+1]; above.major != below.major {
		r.Label = fmt.Sprintf("v%d.x", below.major)
		r.LabelStyle = m.styles.accent
		r.Align = lipgloss.Center
	}
	return r
}

func (m *Model) separatedDelegate() *lace.Separated {
	d := lace.NewSeparated(len(m.entries), m.buildEntry, m.buildRule)
	d.FindChildIndexFunc = func(previous int) (int, bool) {
		// Release j moves from plain index j to combined index 2j.
		if previous < 0 || previous*2 >= d.Len() {
			return 0, false
		}
		return previous * 2, true
	}
	return d
}

func (m *Model) plainDelegate() *lace.Builder {
	d := lace.NewBuilder(len(m.entries), m.buildEntry)
	d.FindChildIndexFunc = func(previous int) (int, bool) {
		// Combined index 2j collapses to j; rules have no counterpart.
		if previous < 0 || previous%2 != 0 || previous/2 >= d.Count {
			return 0, false
		}
		return previous / 2, true
	}
	return d
}

// childIndex maps a release index to its child index in the active
// delegate.
func (m *Model) childIndex(index int) int {
	if m.separated {
		return index * 2
	}
	return index
}

func (m *Model) titles() []string {
	titles := make([]string, len(m.entries))
	for i, e := range m.entries {
		titles[i] = e.version + " " + e.title
	}
	return titles
}

func (m *Model) starredCount() int {
	count := 0
	for i := 0; i < m.list.Len(); i++ {
		if m.list.State(i) != nil {
			count++
		}
	}
	return count
}

// ---- UPDATE ----

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeJump {
			return m.updateJump(msg)
		}
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.up):
			m.list.CursorUp()
		case key.Matches(msg, m.keys.down):
			m.list.CursorDown()
		case key.Matches(msg, m.keys.pageUp):
			m.list.PageUp()
		case key.Matches(msg, m.keys.pageDown):
			m.list.PageDown()
		case key.Matches(msg, m.keys.top):
			m.list.GotoTop()
		case key.Matches(msg, m.keys.bottom):
			m.list.GotoBottom()
		case key.Matches(msg, m.keys.star):
			m.toggleStar()
		case key.Matches(msg, m.keys.toggle):
			m.toggleSeparators()
		case key.Matches(msg, m.keys.jump):
			m.openJump()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
		}
	}
	return m, nil
}

func (m *Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.closeJump()
		m.list.Select(m.jumpFrom)
		return m, nil
	case key.Matches(msg, m.keys.accept):
		m.closeJump()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.followMatch()
	return m, cmd
}

func (m *Model) toggleStar() {
	if m.list.Len() == 0 {
		return
	}
	child := m.list.Cursor()
	if m.list.State(child) != nil {
		m.list.SetState(child, nil)
	} else {
		m.list.SetState(child, true)
	}
	m.list.Invalidate(child)
}

func (m *Model) toggleSeparators() {
	m.separated = !m.separated
	if m.separated {
		m.list.SetDelegate(m.separatedDelegate())
	} else {
		m.list.SetDelegate(m.plainDelegate())
	}
}

func (m *Model) openJump() {
	m.mode = modeJump
	m.jumpFrom = m.list.Cursor()
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) closeJump() {
	m.mode = modeBrowse
	m.input.Blur()
}

// followMatch moves the cursor to the best fuzzy match for the prompt,
// staying put when nothing matches.
func (m *Model) followMatch() {
	query := m.input.Value()
	if query == "" {
		return
	}
	matches := fuzzy.Find(query, m.titles())
	if len(matches) == 0 {
		return
	}
	m.list.Select(m.childIndex(matches[0].Index))
}

func (m *Model) layout() {
	m.help.Width = m.width
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 4
	}
	m.list.SetSize(m.width, max(0, m.height-3-helpHeight))
}

// ---- VIEW ----

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	status := m.statusLine()
	if m.mode == modeJump {
		status = m.input.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("lace changelog"),
		m.styles.subtle.Render(fmt.Sprintf("%d releases", len(m.entries))),
		m.list.View(),
		status,
		m.help.View(m.keys),
	)
}

func (m *Model) statusLine() string {
	parts := make([]string, 0, 3)
	if k, n, ok := m.list.SemanticPosition(); ok {
		parts = append(parts, fmt.Sprintf("release %d of %d", k+1, n))
	}
	if m.separated {
		parts = append(parts, "separators on")
	} else {
		parts = append(parts, "separators off")
	}
	if starred := m.starredCount(); starred > 0 {
		parts = append(parts, fmt.Sprintf("%d starred", starred))
	}
	return m.styles.footer.Render(strings.Join(parts, " │ "))
}
