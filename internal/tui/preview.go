package tui

import (
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/imagesource"
	"github.com/alexisbeaulieu97/borderkit/internal/surface"
	"github.com/alexisbeaulieu97/borderkit/internal/tui/components"
)

// pxPerDot is how many CSS pixels one preview dot stands for. Each terminal
// cell shows two dots stacked vertically.
const pxPerDot = 4

var (
	placeholderColor = colorful.Color{R: 0.58, G: 0.64, B: 0.72}
	shadowInk        = colorful.Color{R: 15.0 / 255, G: 23.0 / 255, B: 42.0 / 255}
	whiteBackdrop    = colorful.Color{R: 1, G: 1, B: 1}
)

// dot is one preview pixel; unset dots are transparent.
type dot struct {
	c   colorful.Color
	set bool
}

type canvas struct {
	w, h int
	dots []dot
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, dots: make([]dot, w*h)}
}

func (c *canvas) set(x, y int, col colorful.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.dots[y*c.w+x] = dot{c: col, set: true}
}

func (c *canvas) at(x, y int) dot {
	return c.dots[y*c.w+x]
}

// render draws the canvas with half blocks, two dots per cell.
func (c *canvas) render() string {
	var b strings.Builder
	for y := 0; y < c.h; y += 2 {
		for x := 0; x < c.w; x++ {
			top := c.at(x, y)
			var bottom dot
			if y+1 < c.h {
				bottom = c.at(x, y+1)
			}
			b.WriteString(cell(top, bottom))
		}
		if y+2 < c.h {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cell(top, bottom dot) string {
	switch {
	case top.set && bottom.set:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(top.c.Hex())).
			Background(lipgloss.Color(bottom.c.Hex())).
			Render("▀")
	case top.set:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(top.c.Hex())).Render("▀")
	case bottom.set:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottom.c.Hex())).Render("▄")
	default:
		return " "
	}
}

// rect is an axis-aligned box of dots with rounded corners.
type rect struct {
	x, y, w, h int
	radius     float64
}

// contains reports whether the centre of dot (px, py) lies inside the box.
func (r rect) contains(px, py int) bool {
	return r.distance(float64(px)+0.5, float64(py)+0.5) <= 0
}

// distance is the signed distance from a point to the rounded box edge,
// negative inside.
func (r rect) distance(px, py float64) float64 {
	hw, hh := float64(r.w)/2, float64(r.h)/2
	rad := math.Min(r.radius, math.Min(hw, hh))
	cx, cy := float64(r.x)+hw, float64(r.y)+hh
	qx := math.Abs(px-cx) - hw + rad
	qy := math.Abs(py-cy) - hh + rad
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside - rad
}

// previewLayout sizes the container and image boxes for a preview at most
// maxW dots wide and maxH dots tall.
func previewLayout(st border.State, img *imagesource.Image, maxW, maxH int) (container, frame rect) {
	pad := dots(st.PaddingPx)

	contentW, contentH := 24, 16
	if img != nil && img.Source.Width > 0 && img.Source.Height > 0 {
		contentW, contentH = img.Source.Width, img.Source.Height
	}

	availW := max(maxW-2*pad, 1)
	availH := max(maxH-2*pad, 1)
	if ratio, ok := ratioValue(st.AspectRatio); ok {
		// The container keeps the ratio; the image fills its content box.
		cw := maxW
		ch := int(math.Round(float64(cw) / ratio))
		if ch > maxH {
			ch = maxH
			cw = int(math.Round(float64(ch) * ratio))
		}
		cw, ch = max(cw, 2*pad+1), max(ch, 2*pad+1)
		container = rect{w: cw, h: ch, radius: float64(dots(st.OuterRadiusPx))}
		frame = rect{x: pad, y: pad, w: cw - 2*pad, h: ch - 2*pad, radius: float64(dots(st.ImageRadiusPx))}
		return container, frame
	}

	scale := math.Min(float64(availW)/float64(contentW), float64(availH)/float64(contentH))
	if scale > 1 && img == nil {
		scale = 1
	}
	iw := max(int(math.Round(float64(contentW)*scale)), 1)
	ih := max(int(math.Round(float64(contentH)*scale)), 1)
	container = rect{w: iw + 2*pad, h: ih + 2*pad, radius: float64(dots(st.OuterRadiusPx))}
	frame = rect{x: pad, y: pad, w: iw, h: ih, radius: float64(dots(st.ImageRadiusPx))}
	return container, frame
}

func dots(px int) int {
	return int(math.Round(float64(px) / pxPerDot))
}

func ratioValue(r border.AspectRatio) (float64, bool) {
	if !r.IsSet() {
		return 0, false
	}
	w, h, ok := strings.Cut(string(r), ":")
	if !ok {
		return 0, false
	}
	fw, errW := strconv.ParseFloat(w, 64)
	fh, errH := strconv.ParseFloat(h, 64)
	if errW != nil || errH != nil || fw <= 0 || fh <= 0 {
		return 0, false
	}
	return fw / fh, true
}

// fillAt returns the container fill at dot (x, y).
func fillAt(st border.State, box rect, x, y int) colorful.Color {
	if st.Mode != border.ModeGradient {
		return hexColor(st.SolidColor)
	}

	start, end := hexColor(st.GradientStart), hexColor(st.GradientEnd)
	rad := float64(st.AngleDegrees) * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	w, h := float64(box.w), float64(box.h)
	length := math.Abs(w*dx) + math.Abs(h*dy)
	if length == 0 {
		return start
	}
	px := float64(x) + 0.5 - w/2
	py := float64(y) + 0.5 - h/2
	t := (px*dx+py*dy)/length + 0.5
	t = math.Max(0, math.Min(1, t))
	return start.BlendRgb(end, t).Clamped()
}

func hexColor(hex string) colorful.Color {
	c, alpha, ok := components.ParseHex(hex)
	if !ok {
		return whiteBackdrop
	}
	return components.Flatten(c, alpha, whiteBackdrop)
}

// renderPreview draws the framed image as the surface currently shows it.
func renderPreview(doc *surface.Document, st border.State, img *imagesource.Image, maxCols, maxRows int) string {
	maxW, maxH := max(maxCols, 4), max(maxRows*2, 4)
	container, frame := previewLayout(st, img, maxW, maxH)
	cv := newCanvas(container.w, container.h)

	var pixels image.Image
	if img != nil && doc.Visible(border.ImageTarget) {
		if doc.Style(border.ImageTarget, "object-fit") == "cover" {
			pixels = img.Cover(frame.w, frame.h)
		} else {
			pixels = img.Thumbnail(frame.w, frame.h)
		}
	}

	shadow := st.Shadow()
	blur := shadow.Blur / pxPerDot
	cast := rect{
		x:      frame.x - int(math.Round(shadow.Spread/pxPerDot)),
		y:      frame.y + int(math.Round(shadow.OffsetY/pxPerDot)) - int(math.Round(shadow.Spread/pxPerDot)),
		w:      frame.w + 2*int(math.Round(shadow.Spread/pxPerDot)),
		h:      frame.h + 2*int(math.Round(shadow.Spread/pxPerDot)),
		radius: frame.radius,
	}

	offsetX, offsetY := 0, 0
	if pixels != nil {
		b := pixels.Bounds()
		offsetX = (frame.w - b.Dx()) / 2
		offsetY = (frame.h - b.Dy()) / 2
	}

	for y := 0; y < container.h; y++ {
		for x := 0; x < container.w; x++ {
			if !container.contains(x, y) {
				continue
			}
			col := fillAt(st, container, x, y)

			if st.ShadowStrength > 0 && !frame.contains(x, y) {
				d := cast.distance(float64(x)+0.5, float64(y)+0.5)
				if a := shadowAlpha(d, blur); a > 0 {
					col = col.BlendRgb(shadowInk, a).Clamped()
				}
			}

			switch {
			case !frame.contains(x, y):
			case img == nil:
				col = placeholderColor
			case pixels != nil:
				px, py := x-frame.x-offsetX, y-frame.y-offsetY
				b := pixels.Bounds()
				if px >= 0 && py >= 0 && px < b.Dx() && py < b.Dy() {
					if c, ok := colorful.MakeColor(pixels.At(b.Min.X+px, b.Min.Y+py)); ok {
						col = c
					}
				}
			}
			cv.set(x, y, col)
		}
	}
	return cv.render()
}

// shadowAlpha fades the shadow from full strength at the cast edge to nothing
// blur dots away.
func shadowAlpha(distance, blur float64) float64 {
	const opacity = 0.35
	if distance <= 0 {
		return opacity
	}
	if blur <= 0 || distance >= blur {
		return 0
	}
	return opacity * (1 - distance/blur)
}
