package overlay

import (
	"reflect"
	"testing"

	"panoview/internal/projector"
)

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 40, Height: 40}
	cases := []struct {
		x, y float64
		want bool
	}{
		{30, 40, true},
		{10, 20, true},  // top-left edge
		{50, 60, true},  // bottom-right edge
		{9.9, 40, false},
		{30, 60.1, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 100, CenterY: 100, Radius: 14}
	if !c.Contains(100, 100) || !c.Contains(100, 114) {
		t.Error("center and boundary should hit")
	}
	if c.Contains(100, 114.5) || c.Contains(111, 111) {
		t.Error("points outside the radius should miss")
	}
}

func TestHitControlLayout(t *testing.T) {
	const w, h = 800, 600

	rects := controlRects(w, h)

	// Stacked bottom-right, reset flush with the bottom margin.
	if got := rects[2].Y + rects[2].Height; got != h-buttonMargin {
		t.Errorf("reset bottom = %v, want %v", got, h-buttonMargin)
	}
	if got := rects[0].X + rects[0].Width; got != w-buttonMargin {
		t.Errorf("button right = %v, want %v", got, w-buttonMargin)
	}
	for i := 0; i < 2; i++ {
		if gap := rects[i+1].Y - (rects[i].Y + rects[i].Height); gap != buttonGap {
			t.Errorf("gap below button %d = %v, want %v", i, gap, buttonGap)
		}
	}

	// Clicking each button center returns the matching control.
	want := []Control{ControlZoomIn, ControlZoomOut, ControlReset}
	for i, r := range rects {
		got := HitControl(w, h, r.X+r.Width/2, r.Y+r.Height/2)
		if got != want[i] {
			t.Errorf("button %d hit = %v, want %v", i, got, want[i])
		}
	}
	if got := HitControl(w, h, 10, 10); got != ControlNone {
		t.Errorf("far corner hit = %v, want none", got)
	}
}

func TestHitMarker(t *testing.T) {
	anchors := []projector.Anchor{
		{X: 100, Y: 100, Visible: true},
		{X: 110, Y: 100, Visible: true},
		{X: 300, Y: 300, Visible: false},
	}

	// Overlap resolves to the topmost (later) marker.
	if got := HitMarker(anchors, 105, 100); got != 1 {
		t.Errorf("overlap hit = %d, want 1", got)
	}
	// Outside the second marker's radius but inside the first.
	if got := HitMarker(anchors, 100-MarkerHitRadius+1, 100); got != 0 {
		t.Errorf("left edge hit = %d, want 0", got)
	}
	// Invisible markers never hit, even at their exact position.
	if got := HitMarker(anchors, 300, 300); got != -1 {
		t.Errorf("invisible marker hit = %d, want -1", got)
	}
	if got := HitMarker(anchors, 500, 500); got != -1 {
		t.Errorf("empty space hit = %d, want -1", got)
	}
}

func TestPanelAndCloseRects(t *testing.T) {
	const w, h = 1280, 720

	p := PanelRect(w, h)
	if p.X+p.Width/2 != w/2 || p.Y+p.Height/2 != h/2 {
		t.Errorf("panel not centered: %+v", p)
	}

	c := CloseRect(w, h)
	if !p.Contains(c.X, c.Y) || !p.Contains(c.X+c.Width, c.Y+c.Height) {
		t.Errorf("close button %+v outside panel %+v", c, p)
	}
	if c.X < p.X+p.Width/2 {
		t.Error("close button should sit in the panel's right half")
	}
}

func TestWrapText(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want []string
	}{
		{"", 10, nil},
		{"short", 10, []string{"short"}},
		{"one two three four", 9, []string{"one two", "three", "four"}},
		{"extraordinarily long", 5, []string{"extraordinarily", "long"}},
	}
	for _, c := range cases {
		if got := wrapText(c.in, c.max); !reflect.DeepEqual(got, c.want) {
			t.Errorf("wrapText(%q, %d) = %v, want %v", c.in, c.max, got, c.want)
		}
	}

	// No wrapped line exceeds the limit unless a single word does.
	for _, line := range wrapText("the quick brown fox jumps over the lazy dog", 12) {
		if len(line) > 12 {
			t.Errorf("line %q exceeds 12 chars", line)
		}
	}
}

func TestTickAdvances(t *testing.T) {
	o := New()
	for i := 0; i < 5; i++ {
		o.Tick()
	}
	if o.tick != 5 {
		t.Errorf("tick = %d, want 5", o.tick)
	}
}
