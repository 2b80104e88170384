// Package gate keeps a trigger button disabled while a text field is blank.
package gate

import (
	"strings"

	"github.com/valpere/transgate/internal/widget"
)

// Attach disables button whenever field holds only whitespace and enables it
// otherwise. The state is applied immediately and on every input or change
// event. Attach does nothing and returns false if either element is nil.
func Attach(field widget.Field, button widget.Control) bool {
	if field == nil || button == nil {
		return false
	}

	update := func() {
		button.SetDisabled(strings.TrimSpace(field.Value()) == "")
	}

	field.Listen(widget.EventInput, update)
	field.Listen(widget.EventChange, update)
	update()

	return true
}

// AttachDocument attaches the gate to the source text field and translate
// button of doc.
func AttachDocument(doc *widget.Document) bool {
	return Attach(doc.Field(widget.IDSourceText), doc.Control(widget.IDTranslateBtn))
}
