package surface

import (
	"sort"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
)

// RatioChoices are the aspect-ratio buttons offered by the standard document.
var RatioChoices = []string{border.AspectAuto, "1:1", "4:3", "3:2", "16:9", "9:16"}

// ModeChoices are the background mode buttons offered by the standard document.
var ModeChoices = []string{string(border.ModeSolid), string(border.ModeGradient)}

// Element is one addressable node of a Document.
type Element struct {
	ID      border.ElementID
	Value   string
	Text    string
	Styles  map[string]string
	Attrs   map[string]string
	Classes map[string]bool
	Visible bool
	Enabled bool
}

func newElement(id border.ElementID) *Element {
	return &Element{
		ID:      id,
		Styles:  make(map[string]string),
		Attrs:   make(map[string]string),
		Classes: make(map[string]bool),
		Visible: true,
		Enabled: true,
	}
}

// Group is a multi-choice button group with at most one active option.
type Group struct {
	ID      border.ElementID
	Options []string
	Active  string
}

// Document is an in-memory surface: a set of elements and button groups the
// controller writes into and a host renders from. Writes to ids that were
// never added report false and change nothing.
type Document struct {
	elements map[border.ElementID]*Element
	groups   map[border.ElementID]*Group
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		elements: make(map[border.ElementID]*Element),
		groups:   make(map[border.ElementID]*Group),
	}
}

// NewStandardDocument creates a document holding every element the
// controller addresses.
func NewStandardDocument() *Document {
	d := NewDocument()
	d.Add(
		border.ContainerTarget, border.ImageTarget,
		border.SolidColorInput, border.GradientStartInput, border.GradientEndInput,
		border.AngleInput, border.OuterRadiusInput, border.ImageRadiusInput,
		border.ShadowInput, border.PaddingInput, border.ImageInput,
		border.OuterRadiusReadout, border.ImageRadiusReadout, border.ShadowReadout,
		border.PaddingReadout, border.AngleReadout,
		border.SolidColorReadout, border.GradientStartReadout, border.GradientEndReadout,
		border.SolidControls, border.GradientControls, border.AngleControl,
	)
	d.AddGroup(border.ModeGroup, ModeChoices...)
	d.AddGroup(border.RatioGroup, RatioChoices...)

	// The image stays hidden until a source is set.
	d.elements[border.ImageTarget].Visible = false
	return d
}

// Add registers elements. Existing elements are left unchanged.
func (d *Document) Add(ids ...border.ElementID) {
	for _, id := range ids {
		if _, ok := d.elements[id]; !ok {
			d.elements[id] = newElement(id)
		}
	}
}

// AddGroup registers a button group with its options.
func (d *Document) AddGroup(id border.ElementID, options ...string) {
	d.groups[id] = &Group{ID: id, Options: append([]string(nil), options...)}
}

// Remove deletes an element or group.
func (d *Document) Remove(id border.ElementID) {
	delete(d.elements, id)
	delete(d.groups, id)
}

// Element returns the element with id.
func (d *Document) Element(id border.ElementID) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// Group returns the button group with id.
func (d *Document) Group(id border.ElementID) (*Group, bool) {
	g, ok := d.groups[id]
	return g, ok
}

// IDs lists element ids in sorted order.
func (d *Document) IDs() []border.ElementID {
	ids := make([]border.ElementID, 0, len(d.elements))
	for id := range d.elements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SetControlValue implements border.Surface.
func (d *Document) SetControlValue(id border.ElementID, value string) bool {
	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.Value = value
	return true
}

// SetStyle implements border.Surface. An empty value removes the property.
func (d *Document) SetStyle(id border.ElementID, property, value string) bool {
	el, ok := d.elements[id]
	if !ok {
		return false
	}
	if value == "" {
		delete(el.Styles, property)
	} else {
		el.Styles[property] = value
	}
	return true
}

// SetText implements border.Surface.
func (d *Document) SetText(id border.ElementID, text string) bool {
	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.Text = text
	return true
}

// SetAttr implements border.Surface.
func (d *Document) SetAttr(id border.ElementID, name, value string) bool {
	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.Attrs[name] = value
	return true
}

// SetClass implements border.Surface.
func (d *Document) SetClass(id border.ElementID, class string, on bool) bool {
	el, ok := d.elements[id]
	if !ok {
		return false
	}
	if on {
		el.Classes[class] = true
	} else {
		delete(el.Classes, class)
	}
	return true
}

// SetVisible implements border.Surface.
func (d *Document) SetVisible(id border.ElementID, visible bool) bool {
	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.Visible = visible
	return true
}

// SetEnabled implements border.Surface.
func (d *Document) SetEnabled(id border.ElementID, enabled bool) bool {
	el, ok := d.elements[id]
	if !ok {
		return false
	}
	el.Enabled = enabled
	return true
}

// SetActive implements border.Surface. Every option of the group other than
// value becomes inactive.
func (d *Document) SetActive(group border.ElementID, value string) bool {
	g, ok := d.groups[group]
	if !ok {
		return false
	}
	g.Active = value
	return true
}

// Style returns a style property of id, or "" when unset or missing.
func (d *Document) Style(id border.ElementID, property string) string {
	if el, ok := d.elements[id]; ok {
		return el.Styles[property]
	}
	return ""
}

// Text returns the text content of id.
func (d *Document) Text(id border.ElementID) string {
	if el, ok := d.elements[id]; ok {
		return el.Text
	}
	return ""
}

// Value returns the control value of id.
func (d *Document) Value(id border.ElementID) string {
	if el, ok := d.elements[id]; ok {
		return el.Value
	}
	return ""
}

// Attr returns an attribute of id.
func (d *Document) Attr(id border.ElementID, name string) string {
	if el, ok := d.elements[id]; ok {
		return el.Attrs[name]
	}
	return ""
}

// HasClass reports whether id carries class.
func (d *Document) HasClass(id border.ElementID, class string) bool {
	if el, ok := d.elements[id]; ok {
		return el.Classes[class]
	}
	return false
}

// Visible reports whether id is shown. Missing elements are not.
func (d *Document) Visible(id border.ElementID) bool {
	if el, ok := d.elements[id]; ok {
		return el.Visible
	}
	return false
}

// Enabled reports whether id accepts input. Missing elements do not.
func (d *Document) Enabled(id border.ElementID) bool {
	if el, ok := d.elements[id]; ok {
		return el.Enabled
	}
	return false
}

// IsActive reports whether option is the active choice of group.
func (d *Document) IsActive(group border.ElementID, option string) bool {
	if g, ok := d.groups[group]; ok {
		return g.Active == option
	}
	return false
}

// ActiveOptions lists the active options of group; at most one entry.
func (d *Document) ActiveOptions(group border.ElementID) []string {
	g, ok := d.groups[group]
	if !ok {
		return nil
	}
	var active []string
	for _, opt := range g.Options {
		if opt == g.Active {
			active = append(active, opt)
		}
	}
	return active
}

var _ border.Surface = (*Document)(nil)
