// Package widget defines the UI elements the gate and submit handler operate
// on, together with in-memory implementations used by the CLI and tests.
//
// Components receive elements as interfaces instead of looking them up
// themselves, so any front end (terminal, test fake, remote page bridge)
// can drive them.
package widget

import "sync"

// Event names a notification a Field can emit.
type Event string

const (
	EventInput  Event = "input"
	EventChange Event = "change"
)

// Field is a text input whose value can be observed.
type Field interface {
	Value() string
	Listen(ev Event, fn func())
}

// Control is a button-like element with an enabled state and a label.
type Control interface {
	Disabled() bool
	SetDisabled(disabled bool)
	Label() string
	SetLabel(label string)
}

// Clickable is implemented by controls that can dispatch click events.
type Clickable interface {
	OnClick(fn func())
}

// Region is an element that can be shown or hidden.
type Region interface {
	Hidden() bool
	SetHidden(hidden bool)
}

// TextSink receives rendered plain text.
type TextSink interface {
	Text() string
	SetText(text string)
}

// Input is an in-memory Field.
type Input struct {
	mu        sync.Mutex
	value     string
	listeners map[Event][]func()
}

func NewInput(value string) *Input {
	return &Input{value: value, listeners: make(map[Event][]func())}
}

func (i *Input) Value() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.value
}

func (i *Input) Listen(ev Event, fn func()) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.listeners[ev] = append(i.listeners[ev], fn)
}

// SetValue replaces the value without notifying listeners.
func (i *Input) SetValue(v string) {
	i.mu.Lock()
	i.value = v
	i.mu.Unlock()
}

// Type replaces the value and fires EventInput.
func (i *Input) Type(v string) {
	i.SetValue(v)
	i.emit(EventInput)
}

// Commit replaces the value and fires EventChange.
func (i *Input) Commit(v string) {
	i.SetValue(v)
	i.emit(EventChange)
}

func (i *Input) emit(ev Event) {
	i.mu.Lock()
	fns := append([]func(){}, i.listeners[ev]...)
	i.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Button is an in-memory Control that dispatches clicks while enabled.
type Button struct {
	mu       sync.Mutex
	disabled bool
	label    string
	onClick  []func()
}

func NewButton(label string) *Button {
	return &Button{label: label}
}

func (b *Button) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

func (b *Button) SetDisabled(disabled bool) {
	b.mu.Lock()
	b.disabled = disabled
	b.mu.Unlock()
}

func (b *Button) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

func (b *Button) SetLabel(label string) {
	b.mu.Lock()
	b.label = label
	b.mu.Unlock()
}

func (b *Button) OnClick(fn func()) {
	b.mu.Lock()
	b.onClick = append(b.onClick, fn)
	b.mu.Unlock()
}

// Click runs the click listeners synchronously. It reports false and does
// nothing when the button is disabled.
func (b *Button) Click() bool {
	b.mu.Lock()
	if b.disabled {
		b.mu.Unlock()
		return false
	}
	fns := append([]func(){}, b.onClick...)
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return true
}

// Block is an in-memory Region and TextSink. It starts hidden.
type Block struct {
	mu     sync.Mutex
	hidden bool
	text   string
}

func NewBlock() *Block {
	return &Block{hidden: true}
}

func (b *Block) Hidden() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hidden
}

func (b *Block) SetHidden(hidden bool) {
	b.mu.Lock()
	b.hidden = hidden
	b.mu.Unlock()
}

func (b *Block) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *Block) SetText(text string) {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
}
