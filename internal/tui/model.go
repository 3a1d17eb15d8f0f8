package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"widget-currency/internal"
	"widget-currency/internal/service/converter"
)

type Catalog interface {
	Populate(ctx context.Context, lists ...internal.SelectionList)
}

type Converter interface {
	Convert(ctx context.Context, in converter.Input)
}

type catalogLoadedMsg struct{}

// focus order; the button is not a form field
const (
	focusAmount = iota
	focusSource
	focusTarget
	focusButton
	focusCount
)

const (
	defaultListWidth  = 34
	defaultListHeight = 12
)

type optionItem struct{ opt internal.CurrencyOption }

func (i optionItem) Title() string       { return i.opt.Label }
func (i optionItem) Description() string { return "" }
func (i optionItem) FilterValue() string { return i.opt.Label }

type Model struct {
	ctx       context.Context
	catalog   Catalog
	converter Converter
	ports     *Ports

	amount textinput.Model
	source list.Model
	target list.Model
	focus  int

	loading    bool
	output     string
	asOf       string
	errText    string
	errVisible bool
}

func New(ctx context.Context, catalog Catalog, conv Converter, ports *Ports) Model {
	amount := textinput.New()
	amount.Placeholder = "Amount"
	amount.Prompt = "> "
	amount.CharLimit = 32
	amount.Focus()

	return Model{
		ctx:       ctx,
		catalog:   catalog,
		converter: conv,
		ports:     ports,
		amount:    amount,
		source:    newCurrencyList("From"),
		target:    newCurrencyList("To"),
		loading:   true,
	}
}

func newCurrencyList(title string) list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{optionItem{internal.Placeholder()}}, d, defaultListWidth, defaultListHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadCatalog())
}

func (m Model) loadCatalog() tea.Cmd {
	ctx, catalog, ports := m.ctx, m.catalog, m.ports
	return func() tea.Msg {
		catalog.Populate(ctx, ports.List(internal.SourceField), ports.List(internal.TargetField))
		return catalogLoadedMsg{}
	}
}

func (m Model) convert() tea.Cmd {
	in := converter.Input{
		Amount: m.amount.Value(),
		Source: selectedCode(m.source).String(),
		Target: selectedCode(m.target).String(),
	}
	ctx, conv := m.ctx, m.converter
	// each action runs on its own; actions are neither queued nor cancelled
	return func() tea.Msg {
		conv.Convert(ctx, in)
		return nil
	}
}

func selectedCode(l list.Model) internal.CurrencyCode {
	it, ok := l.SelectedItem().(optionItem)
	if !ok {
		return ""
	}
	return it.opt.Code
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := max(20, msg.Width/2-4)
		h := max(5, msg.Height-14)
		m.source.SetSize(w, h)
		m.target.SetSize(w, h)
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		return m, nil

	case optionsMsg:
		return m.replaceOptions(msg.field, msg.options)

	case focusMsg:
		return m.setFocus(fieldFocus(msg.field))

	case conversionMsg:
		m.output = msg.result.String()
		m.asOf = msg.result.AsOf.String()
		return m, nil

	case errorShownMsg:
		m.errText = msg.text
		m.errVisible = true
		return m, nil

	case errorHiddenMsg:
		m.errVisible = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// while a list filter is being typed every key belongs to the list
	if l := m.focusedList(); l != nil && l.FilterState() == list.Filtering {
		return m.updateFocused(msg)
	}

	switch msg.String() {
	case "esc":
		if l := m.focusedList(); l != nil && l.FilterState() != list.Unfiltered {
			return m.updateFocused(msg)
		}
		return m, tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		return m, m.convert()
	case "enter":
		if m.focus == focusAmount || m.focus == focusButton {
			return m, m.convert()
		}
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusAmount:
		m.amount, cmd = m.amount.Update(msg)
	case focusSource:
		m.source, cmd = m.source.Update(msg)
	case focusTarget:
		m.target, cmd = m.target.Update(msg)
	}
	return m, cmd
}

func (m Model) focusedList() *list.Model {
	switch m.focus {
	case focusSource:
		return &m.source
	case focusTarget:
		return &m.target
	}
	return nil
}

func (m Model) setFocus(f int) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == focusAmount {
		return m, m.amount.Focus()
	}
	m.amount.Blur()
	return m, nil
}

func fieldFocus(field internal.Field) int {
	switch field {
	case internal.SourceField:
		return focusSource
	case internal.TargetField:
		return focusTarget
	default:
		return focusAmount
	}
}

// replaceOptions swaps the whole option list; the placeholder ends up
// selected, as after any reset of a dropdown.
func (m Model) replaceOptions(field internal.Field, opts []internal.CurrencyOption) (tea.Model, tea.Cmd) {
	items := make([]list.Item, 0, len(opts))
	for _, o := range opts {
		items = append(items, optionItem{o})
	}

	var cmd tea.Cmd
	switch field {
	case internal.SourceField:
		m.source.ResetFilter()
		cmd = m.source.SetItems(items)
		m.source.Select(0)
	case internal.TargetField:
		m.target.ResetFilter()
		cmd = m.target.SetItems(items)
		m.target.Select(0)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Currency Converter"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Amount"))
	b.WriteString("\n")
	b.WriteString(m.pane(focusAmount).Render(m.amount.View()))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane(focusSource).Render(m.source.View()),
		" ",
		m.pane(focusTarget).Render(m.target.View()),
	))
	b.WriteString("\n")

	button := buttonStyle
	if m.focus == focusButton {
		button = buttonFocused
	}
	b.WriteString(button.Render("Convert"))
	b.WriteString("\n\n")

	if m.output != "" {
		b.WriteString(outputStyle.Render(m.output))
		b.WriteString("\n")
	}
	if m.errVisible {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString(statusStyle.Render("Loading currencies..."))
		b.WriteString("\n")
	case m.asOf != "":
		b.WriteString(statusStyle.Render("Rates as of " + m.asOf))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: next field • /: filter list • enter/ctrl+s: convert • esc: quit"))
	return b.String()
}

func (m Model) pane(f int) lipgloss.Style {
	if m.focus == f {
		return paneFocus
	}
	return paneStyle
}
