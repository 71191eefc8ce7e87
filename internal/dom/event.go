package dom

import "github.com/peternagy/thememode/internal/core"

// Event names the frontend listens on to mirror element writes.
const (
	EventSetAttribute = "dom:set-attribute"
	EventSetClass     = "dom:set-class"
)

// AttributeChange is the payload of EventSetAttribute.
type AttributeChange struct {
	Selector string `json:"selector"`
	Name     string `json:"name"`
	Value    string `json:"value"`
}

// ClassChange is the payload of EventSetClass.
type ClassChange struct {
	Selector string `json:"selector"`
	Name     string `json:"name"`
	On       bool   `json:"on"`
}

// EventElement forwards writes to a frontend document as events. An empty
// Selector addresses the document root. When Shadow is set every write is
// also applied to it so the backend can read the last state back.
type EventElement struct {
	Emitter  core.EventEmitter
	Selector string
	Shadow   *Element
}

func (e *EventElement) SetAttribute(name, value string) {
	if e.Shadow != nil {
		e.Shadow.SetAttribute(name, value)
	}
	e.Emitter.Emit(EventSetAttribute, AttributeChange{Selector: e.Selector, Name: name, Value: value})
}

func (e *EventElement) SetClass(name string, on bool) {
	if e.Shadow != nil {
		e.Shadow.SetClass(name, on)
	}
	e.Emitter.Emit(EventSetClass, ClassChange{Selector: e.Selector, Name: name, On: on})
}
