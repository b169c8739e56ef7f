// Package snapshot exports a board view as a PNG image or as JSON.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"squares/config"
	"squares/engine"
	"squares/types"
)

// Options controls the size and palette of a snapshot.
type Options struct {
	UnitPixels int // pixels per board unit
	DrawIdle   bool

	Background tcell.Color
	Dot        tcell.Color
	Line       tcell.Color
	Idle       tcell.Color
	Highlight  tcell.Color
	PlayerOne  tcell.Color
	PlayerTwo  tcell.Color
}

// OptionsFromConfig builds snapshot options from the terminal theme.
func OptionsFromConfig(c *config.Config) Options {
	colors := c.Theme.Colors
	return Options{
		UnitPixels: c.Snapshot.UnitPixels,
		DrawIdle:   c.Theme.DrawIdleEdges,
		Background: tcell.PaletteColor(colors.BoardColor),
		Dot:        tcell.PaletteColor(colors.DotColor),
		Line:       tcell.PaletteColor(colors.LineColor),
		Idle:       tcell.PaletteColor(colors.IdleColor),
		Highlight:  tcell.PaletteColor(colors.HighlightColor),
		PlayerOne:  tcell.PaletteColor(colors.PlayerOne),
		PlayerTwo:  tcell.PaletteColor(colors.PlayerTwo),
	}
}

// canvas converts board space to image pixels. Images have a top-left origin, board space a
// bottom-left one.
type canvas struct {
	dc     *gg.Context
	mapper engine.Mapper
	window types.Size
	unit   float64
}

func (c canvas) at(b types.Vec2) (float64, float64) {
	p := c.mapper.ToWindow(b, c.window)
	return p.X, c.window.H - p.Y
}

func setColor(dc *gg.Context, color tcell.Color) {
	r, g, b := color.RGB()
	dc.SetRGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// Render draws the view and returns the drawing context. The caller owns the context.
func Render(view *types.BoardView, opts Options) (*gg.Context, error) {
	if opts.UnitPixels <= 0 {
		return nil, fmt.Errorf("unit pixels must be positive, got %d", opts.UnitPixels)
	}
	mapper := engine.DefaultMapper()
	size := int(math.Round(mapper.Span() * float64(opts.UnitPixels)))
	dc := gg.NewContext(size, size)
	c := canvas{
		dc:     dc,
		mapper: mapper,
		window: types.Size{W: float64(size), H: float64(size)},
		unit:   float64(opts.UnitPixels),
	}
	if err := c.draw(view, opts); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

func (c canvas) draw(view *types.BoardView, opts Options) error {
	dc := c.dc
	r, g, b := opts.Background.RGB()
	dc.ClearWithColor(gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255))

	for _, cell := range view.Cells {
		var color tcell.Color
		switch cell.Owner {
		case types.One:
			color = opts.PlayerOne
		case types.Two:
			color = opts.PlayerTwo
		default:
			continue
		}
		// Top-left corner in image space is the cell's upper-left in board space.
		x, y := c.at(types.Vec2{X: float64(cell.Location.X), Y: float64(cell.Location.Y + 1)})
		setColor(dc, color)
		dc.DrawRectangle(x, y, c.unit, c.unit)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill cell %s: %w", cell.Location, err)
		}
	}

	for _, e := range view.Edges {
		if !e.Visible() && !opts.DrawIdle {
			continue
		}
		switch {
		case e.Activated:
			setColor(dc, opts.Line)
			dc.SetLineWidth(c.unit * 0.1)
		case e.Highlighted:
			setColor(dc, opts.Highlight)
			dc.SetLineWidth(c.unit * 0.1)
		default:
			setColor(dc, opts.Idle)
			dc.SetLineWidth(1)
		}
		from := types.Vec2{X: float64(e.Origin.X), Y: float64(e.Origin.Y)}
		to := from
		if e.Alignment == types.Vertical {
			to.Y++
		} else {
			to.X++
		}
		x1, y1 := c.at(from)
		x2, y2 := c.at(to)
		dc.DrawLine(x1, y1, x2, y2)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke edge %s: %w", e, err)
		}
	}

	setColor(dc, opts.Dot)
	for y := 0; y < view.Points; y++ {
		for x := 0; x < view.Points; x++ {
			px, py := c.at(types.Vec2{X: float64(x), Y: float64(y)})
			dc.DrawCircle(px, py, c.unit*0.08)
		}
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill dots: %w", err)
	}
	return nil
}

// Encode renders the view as PNG to w.
func Encode(w io.Writer, view *types.BoardView, opts Options) error {
	dc, err := Render(view, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// EncodeJSON writes the view as indented JSON to w.
func EncodeJSON(w io.Writer, view *types.BoardView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Save writes the view to path, creating parent directories. A ".json" path gets the JSON view,
// anything else a PNG.
func Save(path string, view *types.BoardView, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	encode := func() error { return Encode(f, view, opts) }
	if strings.EqualFold(filepath.Ext(path), ".json") {
		encode = func() error { return EncodeJSON(f, view) }
	}
	if err := encode(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Filename returns a timestamped snapshot name with the given extension, e.g.
// "2026-01-15_150405_t42.png".
func Filename(now time.Time, view *types.BoardView, ext string) string {
	return fmt.Sprintf("%s_t%d%s", now.Format("2006-01-02_150405"), view.Tick, ext)
}
