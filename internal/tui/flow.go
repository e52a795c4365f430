// Package tui implements the interactive entry flow: a short bubbletea
// wizard that walks through kind, feelings, contexts, valence, and
// location, then writes the finished entry to the store.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/model"
	"github.com/tmoriguchi/mindtracer/internal/service"
)

type step int

const (
	stepKind step = iota
	stepFeelings
	stepContexts
	stepValence
	stepLocation
	stepConfirm
)

// valenceStep is the left/right adjustment granularity.
const valenceStep = 0.05

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	selectedStyle = lipgloss.NewStyle().Foreground(cli.SuccessColor)
	dimStyle      = lipgloss.NewStyle().Foreground(cli.SubtleColor)
)

// Model is the bubbletea model for the entry flow.
type Model struct {
	store service.EntryStore
	now   func() time.Time
	keys  KeyMap
	help  help.Model

	step   step
	cursor int

	kind             model.Kind
	selectedFeelings map[int]bool
	selectedContexts map[int]bool
	valence          float64
	valenceTouched   bool

	// locations[0] is always the "no location" choice.
	locations   []model.SavedLocation
	locationIdx int

	saved *model.Entry
	err   error
	quit  bool
}

// NewModel creates an entry flow writing to store. Saved locations are
// offered as choices on the location step.
func NewModel(store service.EntryStore, locations []model.SavedLocation, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	choices := make([]model.SavedLocation, 0, len(locations)+1)
	choices = append(choices, model.SavedLocation{Name: "No location"})
	choices = append(choices, locations...)

	return Model{
		store:            store,
		now:              now,
		keys:             DefaultKeyMap(),
		help:             help.New(),
		kind:             model.KindMomentaryEmotion,
		selectedFeelings: make(map[int]bool),
		selectedContexts: make(map[int]bool),
		locations:        choices,
	}
}

// Saved returns the entry written by the flow, or nil when the user quit
// before confirming.
func (m Model) Saved() *model.Entry {
	return m.saved
}

// Err returns the store error that ended the flow, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit), key.Matches(keyMsg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Back):
		if m.step > stepKind {
			m.step--
			m.cursor = 0
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
		return m, nil
	}

	switch m.step {
	case stepKind:
		return m.updateKind(keyMsg)
	case stepFeelings:
		return m.updateFeelings(keyMsg)
	case stepContexts:
		return m.updateContexts(keyMsg)
	case stepValence:
		return m.updateValence(keyMsg)
	case stepLocation:
		return m.updateLocation(keyMsg)
	case stepConfirm:
		return m.updateConfirm(keyMsg)
	}
	return m, nil
}

func (m Model) optionCount() int {
	switch m.step {
	case stepKind:
		return 2
	case stepFeelings:
		return len(model.AllFeelings)
	case stepContexts:
		return len(model.AllContexts)
	case stepLocation:
		return len(m.locations)
	default:
		return 1
	}
}

func (m Model) updateKind(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		if m.cursor == 0 {
			m.kind = model.KindMomentaryEmotion
		} else {
			m.kind = model.KindDailyMood
		}
		m.step = stepFeelings
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateFeelings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.selectedFeelings[m.cursor] = !m.selectedFeelings[m.cursor]
	case key.Matches(msg, m.keys.Select):
		if len(m.feelings()) == 0 {
			return m, nil
		}
		// Seed the valence slider from the chosen feelings; the user can
		// still adjust it on the next step.
		if !m.valenceTouched {
			m.valence = model.FeelingsValence(m.feelings())
		}
		m.step = stepContexts
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateContexts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.selectedContexts[m.cursor] = !m.selectedContexts[m.cursor]
	case key.Matches(msg, m.keys.Select):
		m.step = stepValence
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateValence(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.valence = model.ClampValence(m.valence - valenceStep)
		m.valenceTouched = true
	case key.Matches(msg, m.keys.Right):
		m.valence = model.ClampValence(m.valence + valenceStep)
		m.valenceTouched = true
	case key.Matches(msg, m.keys.Select):
		m.step = stepLocation
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateLocation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		m.locationIdx = m.cursor
		m.step = stepConfirm
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		entry := m.buildEntry()
		if err := m.store.Add(entry); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.saved = &entry
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) feelings() []model.Feeling {
	var out []model.Feeling
	for i, f := range model.AllFeelings {
		if m.selectedFeelings[i] {
			out = append(out, f)
		}
	}
	return out
}

func (m Model) contexts() []model.Context {
	var out []model.Context
	for i, c := range model.AllContexts {
		if m.selectedContexts[i] {
			out = append(out, c)
		}
	}
	return out
}

func (m Model) buildEntry() model.Entry {
	var coord *model.Coordinate
	var name string
	if m.locationIdx > 0 {
		loc := m.locations[m.locationIdx]
		c := loc.ToCoordinate()
		coord = &c
		name = loc.Name
	}
	return model.NewEntry(m.now(), m.kind, m.valence, m.feelings(), m.contexts(), coord, name, nil)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quit || m.saved != nil || m.err != nil {
		return ""
	}

	var b strings.Builder
	switch m.step {
	case stepKind:
		b.WriteString(titleStyle.Render("What kind of entry is this?"))
		b.WriteString("\n\n")
		m.writeChoices(&b, []string{"Momentary emotion (right now)", "Daily mood (the whole day)"}, nil)
	case stepFeelings:
		b.WriteString(titleStyle.Render("How are you feeling?"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Pick at least one."))
		b.WriteString("\n\n")
		m.writeFeelingChoices(&b)
	case stepContexts:
		b.WriteString(titleStyle.Render("What's this about?"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Optional. Toggle any that apply."))
		b.WriteString("\n\n")
		labels := make([]string, len(model.AllContexts))
		for i, c := range model.AllContexts {
			labels[i] = string(c)
		}
		m.writeChoices(&b, labels, m.selectedContexts)
	case stepValence:
		b.WriteString(titleStyle.Render("How pleasant does it feel?"))
		b.WriteString("\n\n")
		b.WriteString(m.valenceGauge())
		b.WriteString("\n")
	case stepLocation:
		b.WriteString(titleStyle.Render("Where are you?"))
		b.WriteString("\n\n")
		labels := make([]string, len(m.locations))
		for i, loc := range m.locations {
			labels[i] = loc.Name
		}
		m.writeChoices(&b, labels, nil)
	case stepConfirm:
		b.WriteString(titleStyle.Render("Save this entry?"))
		b.WriteString("\n\n")
		b.WriteString(m.confirmSummary())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) writeChoices(b *strings.Builder, labels []string, selected map[int]bool) {
	for i, label := range labels {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := ""
		if selected != nil {
			mark = "[ ] "
			if selected[i] {
				mark = selectedStyle.Render("[x] ")
			}
		}
		fmt.Fprintf(b, "%s%s%s\n", cursor, mark, label)
	}
}

func (m Model) writeFeelingChoices(b *strings.Builder) {
	for i, f := range model.AllFeelings {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ] "
		if m.selectedFeelings[i] {
			mark = selectedStyle.Render("[x] ")
		}
		fmt.Fprintf(b, "%s%s%s\n", cursor, mark, cli.FeelingStyle(f).Render(string(f)))
	}
}

func (m Model) valenceGauge() string {
	// 41 cells spanning -1.0 to +1.0 in 0.05 steps.
	const cells = 41
	pos := int((model.ClampValence(m.valence) + 1) / 2 * (cells - 1))
	var b strings.Builder
	b.WriteString(dimStyle.Render("unpleasant "))
	for i := 0; i < cells; i++ {
		if i == pos {
			b.WriteString(cursorStyle.Render("●"))
		} else {
			b.WriteString(dimStyle.Render("─"))
		}
	}
	b.WriteString(dimStyle.Render(" pleasant"))
	b.WriteString("\n\n  ")
	b.WriteString(cli.FormatValence(m.valence))
	b.WriteString("  ")
	b.WriteString(model.ClassifyValence(m.valence).Prose())
	return b.String()
}

func (m Model) confirmSummary() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Kind:     %s", m.kind))

	names := make([]string, 0, len(m.feelings()))
	for _, f := range m.feelings() {
		names = append(names, string(f))
	}
	lines = append(lines, fmt.Sprintf("Feelings: %s", strings.Join(names, ", ")))

	if ctxs := m.contexts(); len(ctxs) > 0 {
		labels := make([]string, 0, len(ctxs))
		for _, c := range ctxs {
			labels = append(labels, string(c))
		}
		lines = append(lines, fmt.Sprintf("Contexts: %s", strings.Join(labels, ", ")))
	}

	lines = append(lines, fmt.Sprintf("Valence:  %s (%s)", cli.FormatValence(m.valence), model.ClassifyValence(m.valence).Prose()))
	if m.locationIdx > 0 {
		lines = append(lines, fmt.Sprintf("Location: %s", m.locations[m.locationIdx].Name))
	}
	return strings.Join(lines, "\n")
}
