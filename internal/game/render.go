package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/wave-visualization/internal/wave"
)

var (
	backgroundColor = color.Black
	markerFill      = color.White
	markerOutline   = color.RGBA{R: 255, A: 255}
)

const (
	curveWidth       = 1
	outlineThickness = 1.0

	levelBarWidth  = 120
	levelBarHeight = 8
)

// drawWave puts the sampled points on screen in the current draw mode.
func (g *Game) drawWave(screen *ebiten.Image, pts []wave.Point) {
	s := g.state
	switch s.Mode {
	case wave.Curve:
		g.curve.draw(screen, pts, g.cfg.Height)
	case wave.Circle:
		drawMarkers(screen, pts, s.MarkerRadius, true, g.cfg.Height)
	case wave.CircleTransparent:
		drawMarkers(screen, pts, s.MarkerRadius, false, g.cfg.Height)
	}
}

// curveChunk bounds the points stroked per path so the triangle indices
// fit in uint16.
const curveChunk = 1024

var whiteSubImage *ebiten.Image

// whitePixel is the source texture for curve triangles.
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// curveStroker draws the points as a line strip, reusing its buffers
// between frames.
type curveStroker struct {
	runs     [][2]int
	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *curveStroker) draw(screen *ebiten.Image, pts []wave.Point, height int) {
	c.runs = curveRuns(pts, curveChunk, c.runs[:0])
	op := &vector.StrokeOptions{Width: curveWidth}
	for _, r := range c.runs {
		var path vector.Path
		first := pts[r[0]]
		path.MoveTo(float32(first.X), float32(clampY(first.Y, height)))
		for _, p := range pts[r[0]+1 : r[1]] {
			path.LineTo(float32(p.X), float32(clampY(p.Y, height)))
		}

		c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
		for i := range c.vertices {
			c.vertices[i].SrcX = 1
			c.vertices[i].SrcY = 1
			c.vertices[i].ColorR = 1
			c.vertices[i].ColorG = 1
			c.vertices[i].ColorB = 1
			c.vertices[i].ColorA = 1
		}
		screen.DrawTriangles(c.vertices, c.indices, whitePixel(), &ebiten.DrawTrianglesOptions{})
	}
}

// curveRuns appends to dst the [start, end) ranges of pts that form
// unbroken strips of finite points. Runs hold at least two points and at
// most maxLen; a run split for length shares its last point with the next.
func curveRuns(pts []wave.Point, maxLen int, dst [][2]int) [][2]int {
	start := -1
	for i, p := range pts {
		if !p.Finite() {
			if start >= 0 && i-start >= 2 {
				dst = append(dst, [2]int{start, i})
			}
			start = -1
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if i-start+1 == maxLen {
			dst = append(dst, [2]int{start, i + 1})
			start = i
		}
	}
	if start >= 0 && len(pts)-start >= 2 {
		dst = append(dst, [2]int{start, len(pts)})
	}
	return dst
}

// markerRadius converts the state radius for drawing. A radius of zero or
// less has nothing to draw.
func markerRadius(radius float64) (float32, bool) {
	if radius <= 0 {
		return 0, false
	}
	return float32(radius), true
}

func drawMarkers(screen *ebiten.Image, pts []wave.Point, radius float64, filled bool, height int) {
	r, ok := markerRadius(radius)
	if !ok {
		return
	}
	for _, p := range pts {
		if !p.Finite() || offscreen(p.Y, radius, height) {
			continue
		}
		x, y := float32(p.X), float32(p.Y)
		if filled {
			vector.DrawFilledCircle(screen, x, y, r, markerFill, false)
		}
		vector.StrokeCircle(screen, x, y, r, outlineThickness, markerOutline, false)
	}
}

// clampY keeps very tall values (tangent poles) within one screen of the
// visible area so line segments stay representable.
func clampY(y float64, height int) float64 {
	h := float64(height)
	return math.Max(-h, math.Min(2*h, y))
}

func offscreen(y, radius float64, height int) bool {
	return y+radius < 0 || y-radius > float64(height)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.state
	status := fmt.Sprintf(
		"function: %v  mode: %v\namplitude: %.1f  period: %.1f  interval: %.1f\nradius: %.1f  fps: %d (%.0f)",
		s.Function, s.Mode, s.Amplitude, s.Period, s.Interval, s.MarkerRadius, s.FrameRate, ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	help := "W/S amplitude  A/D period  Left/Right interval  Up/Down radius  Num+/Num- fps  T mode  F function  Esc quit"
	ebitenutil.DebugPrintAt(screen, help, 12, g.cfg.Height-20)

	if g.player != nil {
		drawLevel(screen, g.player.Level(), 12, 64)
	}
}

// drawLevel shows the preview loudness as a bar going from green to red.
func drawLevel(screen *ebiten.Image, level float64, x, y int) {
	r, gr, b := hsvToRgb(120*(1-level), 0.8, 0.9)
	vector.StrokeRect(screen, float32(x), float32(y), levelBarWidth, levelBarHeight, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
	if level > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(level*levelBarWidth), levelBarHeight, color.RGBA{R: r, G: gr, B: b, A: 255}, false)
	}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
