package tui

import (
	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/surface"
)

type controlKind int

const (
	kindChoice controlKind = iota
	kindColor
	kindRange
	kindPath
)

// control is one editable row of the editor, bound to a surface element.
type control struct {
	id      border.ElementID
	label   string
	kind    controlKind
	readout border.ElementID
	// container hides the row when the surface hides it.
	container border.ElementID
	unit      string
}

var controls = []control{
	{id: border.ModeGroup, label: "background", kind: kindChoice},
	{id: border.SolidColorInput, label: "colour", kind: kindColor, readout: border.SolidColorReadout, container: border.SolidControls},
	{id: border.GradientStartInput, label: "gradient start", kind: kindColor, readout: border.GradientStartReadout, container: border.GradientControls},
	{id: border.GradientEndInput, label: "gradient end", kind: kindColor, readout: border.GradientEndReadout, container: border.GradientControls},
	{id: border.AngleInput, label: "angle", kind: kindRange, readout: border.AngleReadout, container: border.AngleControl, unit: "°"},
	{id: border.OuterRadiusInput, label: "outer radius", kind: kindRange, readout: border.OuterRadiusReadout, unit: "px"},
	{id: border.ImageRadiusInput, label: "image radius", kind: kindRange, readout: border.ImageRadiusReadout, unit: "px"},
	{id: border.ShadowInput, label: "shadow", kind: kindRange, readout: border.ShadowReadout},
	{id: border.PaddingInput, label: "padding", kind: kindRange, readout: border.PaddingReadout, unit: "px"},
	{id: border.RatioGroup, label: "aspect ratio", kind: kindChoice},
	{id: border.ImageInput, label: "image", kind: kindPath},
}

func (c control) visible(doc *surface.Document) bool {
	return c.container == "" || doc.Visible(c.container)
}

func (c control) enabled(doc *surface.Document) bool {
	if c.kind == kindChoice {
		return true
	}
	return doc.Enabled(c.id)
}

// cycle returns the option of a choice control delta steps from the active
// one, wrapping around.
func (c control) cycle(doc *surface.Document, delta int) (string, bool) {
	group, ok := doc.Group(c.id)
	if !ok || len(group.Options) == 0 {
		return "", false
	}
	idx := 0
	for i, opt := range group.Options {
		if opt == group.Active {
			idx = i
			break
		}
	}
	n := len(group.Options)
	return group.Options[((idx+delta)%n+n)%n], true
}
