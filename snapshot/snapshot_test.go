package snapshot

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"squares/board"
	"squares/config"
	"squares/engine"
	"squares/types"
)

func testView(t *testing.T) *types.BoardView {
	t.Helper()
	b, err := board.New()
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	id, _ := b.CellAt(types.Point{X: 0, Y: 0})
	c, _ := b.Cell(id)
	for _, e := range c.Edges {
		b.Activate(e)
	}
	b.Claim(id, types.One)
	return b.View(board.NoEdge, types.One, 7)
}

func assertColor(t *testing.T, img image.Image, x, y int, want tcell.Color) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	wr, wg, wb := want.RGB()
	diff := func(a uint32, b int32) int32 {
		d := int32(a>>8) - b
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(r, wr) > 2 || diff(g, wg) > 2 || diff(b, wb) > 2 {
		t.Errorf("pixel (%d,%d) = %d,%d,%d, want %d,%d,%d", x, y, r>>8, g>>8, b>>8, wr, wg, wb)
	}
}

func TestRender(t *testing.T) {
	opts := OptionsFromConfig(&config.DefaultConfig)
	dc, err := Render(testView(t), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer dc.Close()

	size := int(engine.DefaultMapper().Span()*float64(opts.UnitPixels) + 0.5)
	if dc.Width() != size || dc.Height() != size {
		t.Fatalf("size = %dx%d, want %dx%d", dc.Width(), dc.Height(), size, size)
	}

	img := dc.Image()
	// Board (0.5, 0.5) is the centre of the owned cell; (3.5, 3.5) an empty one.
	m := engine.DefaultMapper()
	win := types.Size{W: float64(size), H: float64(size)}
	owned := m.ToWindow(types.Vec2{X: 0.5, Y: 0.5}, win)
	empty := m.ToWindow(types.Vec2{X: 3.5, Y: 3.5}, win)

	assertColor(t, img, int(owned.X), size-int(owned.Y), opts.PlayerOne)
	assertColor(t, img, int(empty.X), size-int(empty.Y), opts.Background)
}

func TestRenderRejectsZeroUnit(t *testing.T) {
	opts := OptionsFromConfig(&config.DefaultConfig)
	opts.UnitPixels = 0
	if _, err := Render(testView(t), opts); err == nil {
		t.Error("Render should reject zero unit pixels")
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	opts := OptionsFromConfig(&config.DefaultConfig)
	opts.UnitPixels = 20
	if err := Encode(&buf, testView(t), opts); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 126 {
		t.Errorf("width = %d, want 126", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "board.png")
	opts := OptionsFromConfig(&config.DefaultConfig)
	opts.UnitPixels = 10

	if err := Save(path, testView(t), opts); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a png: %v", err)
	}
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	want := testView(t)
	if err := Save(path, want, OptionsFromConfig(&config.DefaultConfig)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got types.BoardView
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("saved view does not decode: %v", err)
	}
	if !reflect.DeepEqual(&got, want) {
		t.Errorf("decoded view differs:\ngot  %+v\nwant %+v", got, *want)
	}
}

func TestEncodeJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, testView(t)); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	for _, want := range []string{`"alignment": "H"`, `"origin": [`, `"owner": 1`, `"tick": 7`} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("json missing %s", want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 1, 15, 15, 4, 5, 0, time.UTC)
	view := &types.BoardView{Tick: 42}
	if got := Filename(now, view, ".png"); got != "2026-01-15_150405_t42.png" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename(now, view, ".json"); got != "2026-01-15_150405_t42.json" {
		t.Errorf("Filename = %q", got)
	}
}
