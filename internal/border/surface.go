package border

// ElementID addresses a control, readout, group or preview target on the
// host surface.
type ElementID string

// Preview targets.
const (
	ContainerTarget ElementID = "previewBg"
	ImageTarget     ElementID = "previewImage"
)

// Controls. These double as the ids accepted by Controller.HandleInput.
const (
	SolidColorInput    ElementID = "solidColor"
	GradientStartInput ElementID = "color1"
	GradientEndInput   ElementID = "color2"
	AngleInput         ElementID = "angle"
	OuterRadiusInput   ElementID = "outerRadiusRange"
	ImageRadiusInput   ElementID = "imageRadiusRange"
	ShadowInput        ElementID = "shadowRange"
	PaddingInput       ElementID = "padding"
	ImageInput         ElementID = "imageInput"
	ModeGroup          ElementID = "mode"
	RatioGroup         ElementID = "ratio"
)

// Readouts.
const (
	OuterRadiusReadout   ElementID = "outerRadiusNumber"
	ImageRadiusReadout   ElementID = "imageRadiusNumber"
	ShadowReadout        ElementID = "shadowRangeNumber"
	PaddingReadout       ElementID = "paddingNumber"
	AngleReadout         ElementID = "angleValue"
	SolidColorReadout    ElementID = "solidColorHex"
	GradientStartReadout ElementID = "color1Hex"
	GradientEndReadout   ElementID = "color2Hex"
)

// Control groups toggled by the background mode.
const (
	SolidControls    ElementID = "solidControls"
	GradientControls ElementID = "gradientControls"
	AngleControl     ElementID = "angleControl"
)

// Surface is the capability the controller writes through. Each method
// reports whether the addressed element exists; a false return is a skipped
// write, never an error.
type Surface interface {
	SetControlValue(id ElementID, value string) bool
	SetStyle(id ElementID, property, value string) bool
	SetText(id ElementID, text string) bool
	SetAttr(id ElementID, name, value string) bool
	SetClass(id ElementID, class string, on bool) bool
	SetVisible(id ElementID, visible bool) bool
	SetEnabled(id ElementID, enabled bool) bool
	SetActive(group ElementID, value string) bool
}

type discardSurface struct{}

func (discardSurface) SetControlValue(ElementID, string) bool { return false }
func (discardSurface) SetStyle(ElementID, string, string) bool { return false }
func (discardSurface) SetText(ElementID, string) bool          { return false }
func (discardSurface) SetAttr(ElementID, string, string) bool  { return false }
func (discardSurface) SetClass(ElementID, string, bool) bool   { return false }
func (discardSurface) SetVisible(ElementID, bool) bool         { return false }
func (discardSurface) SetEnabled(ElementID, bool) bool         { return false }
func (discardSurface) SetActive(ElementID, string) bool        { return false }

// Range is the inclusive bound and step of a slider control.
type Range struct {
	Min  int
	Max  int
	Step int
}

// Clamp limits v to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Ranges are the slider bounds every host should offer.
var Ranges = map[ElementID]Range{
	OuterRadiusInput: {Min: 0, Max: 64, Step: 1},
	ImageRadiusInput: {Min: 0, Max: 64, Step: 1},
	ShadowInput:      {Min: 0, Max: 100, Step: 1},
	PaddingInput:     {Min: 0, Max: 128, Step: 1},
	AngleInput:       {Min: 0, Max: 360, Step: 1},
}
