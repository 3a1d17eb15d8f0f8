package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"widget-currency/internal"
)

type optionsMsg struct {
	field   internal.Field
	options []internal.CurrencyOption
}

type focusMsg struct{ field internal.Field }

type conversionMsg struct{ result internal.ConversionResult }

type errorShownMsg struct{ text string }

type errorHiddenMsg struct{}

// Ports turns calls made by the services into messages for the running
// program. Calls made before Attach are dropped.
type Ports struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewPorts() *Ports { return &Ports{} }

func (p *Ports) Attach(prog *tea.Program) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = prog.Send
}

func (p *Ports) emit(msg tea.Msg) {
	p.mu.RLock()
	send := p.send
	p.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

// List returns the selection list port for the source or target field.
func (p *Ports) List(field internal.Field) internal.SelectionList {
	return listPort{ports: p, field: field}
}

func (p *Ports) Focus(field internal.Field) { p.emit(focusMsg{field: field}) }

func (p *Ports) ShowConversion(res internal.ConversionResult) { p.emit(conversionMsg{result: res}) }

func (p *Ports) Show(message string) { p.emit(errorShownMsg{text: message}) }

func (p *Ports) Hide() { p.emit(errorHiddenMsg{}) }

type listPort struct {
	ports *Ports
	field internal.Field
}

func (l listPort) Replace(opts []internal.CurrencyOption) {
	cp := make([]internal.CurrencyOption, len(opts))
	copy(cp, opts)
	l.ports.emit(optionsMsg{field: l.field, options: cp})
}
