package dom

import "github.com/PuerkitoBio/goquery"

// Element is a single node of a Document.
type Element struct {
	sel *goquery.Selection
}

func (e *Element) SetAttribute(name, value string) {
	e.sel.SetAttr(name, value)
}

// SetClass adds or removes a class.
func (e *Element) SetClass(name string, on bool) {
	if on {
		e.sel.AddClass(name)
	} else {
		e.sel.RemoveClass(name)
	}
}

func (e *Element) Attribute(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e *Element) HasClass(name string) bool {
	return e.sel.HasClass(name)
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}
