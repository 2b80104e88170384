package widget

import "sync"

// Element IDs of the translate page.
const (
	IDSourceText    = "source-text"
	IDTranslateBtn  = "translate-btn"
	IDSourceLang    = "source-lang"
	IDTargetLangs   = "target-langs"
	IDResultArea    = "result-area"
	IDResultContent = "result-content"
)

// Document maps element IDs to elements.
//
// Typed lookups return a nil interface when the ID is unknown or the element
// does not implement the requested interface, so callers can test with == nil.
type Document struct {
	mu       sync.RWMutex
	elements map[string]any
}

func NewDocument() *Document {
	return &Document{elements: make(map[string]any)}
}

// Add registers el under id, replacing any previous element.
func (d *Document) Add(id string, el any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elements[id] = el
}

func (d *Document) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, id)
}

func (d *Document) get(id string) any {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.elements[id]
}

func (d *Document) Field(id string) Field {
	if f, ok := d.get(id).(Field); ok {
		return f
	}
	return nil
}

func (d *Document) Control(id string) Control {
	if c, ok := d.get(id).(Control); ok {
		return c
	}
	return nil
}

func (d *Document) Region(id string) Region {
	if r, ok := d.get(id).(Region); ok {
		return r
	}
	return nil
}

func (d *Document) TextSink(id string) TextSink {
	if t, ok := d.get(id).(TextSink); ok {
		return t
	}
	return nil
}

// Page holds the in-memory elements of a complete translate page.
type Page struct {
	SourceText    *Input
	SourceLang    *Input
	TargetLangs   *Input
	TranslateBtn  *Button
	ResultArea    *Block
	ResultContent *Block
}

// NewPage builds a Page with every element present, the button labelled
// idleLabel, and registers the elements in a new Document.
func NewPage(idleLabel string) (*Page, *Document) {
	p := &Page{
		SourceText:    NewInput(""),
		SourceLang:    NewInput(""),
		TargetLangs:   NewInput(""),
		TranslateBtn:  NewButton(idleLabel),
		ResultArea:    NewBlock(),
		ResultContent: NewBlock(),
	}

	doc := NewDocument()
	doc.Add(IDSourceText, p.SourceText)
	doc.Add(IDSourceLang, p.SourceLang)
	doc.Add(IDTargetLangs, p.TargetLangs)
	doc.Add(IDTranslateBtn, p.TranslateBtn)
	doc.Add(IDResultArea, p.ResultArea)
	doc.Add(IDResultContent, p.ResultContent)

	return p, doc
}
