package game

import (
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/davide-muzzi/cursor-follower/config"
	"github.com/davide-muzzi/cursor-follower/internal/entity"
)

type fakeWindow struct {
	x, y   int
	w, h   int
	raised int
	tps    int
	moves  int
}

func (w *fakeWindow) Move(x, y int) { w.x, w.y = x, y; w.moves++ }

func (w *fakeWindow) Resize(ww, h int) { w.w, w.h = ww, h }

func (w *fakeWindow) Raise() { w.raised++ }

func (w *fakeWindow) SetTPS(tps int) { w.tps = tps }

type fakeCursor struct {
	p   entity.Point
	err error
}

func (c *fakeCursor) Position() (entity.Point, error) { return c.p, c.err }

// 各状态图片尺寸不同，方便检查窗口是否跟着图走
var spriteSizes = map[string][2]int{
	"following": {32, 24},
	"idle":      {40, 20},
	"mousedown": {30, 36},
}

func writeSprites(t *testing.T, skip string) *entity.CreatureProfile {
	t.Helper()
	dir := t.TempDir()
	sprites := map[string]string{}
	for name, s := range spriteSizes {
		if name == skip {
			continue
		}
		p := filepath.Join(dir, name+".png")
		f, err := os.Create(p)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, s[0], s[1]))); err != nil {
			t.Fatal(err)
		}
		f.Close()
		sprites[name] = p
	}
	return &entity.CreatureProfile{ID: "cat", Sprites: sprites}
}

type harness struct {
	mgr    *Manager
	win    *fakeWindow
	cursor *fakeCursor
	clicks chan entity.ClickEvent
	zone   entity.IdleZone
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		win:    &fakeWindow{},
		cursor: &fakeCursor{p: entity.Point{X: 100, Y: 100}},
		clicks: make(chan entity.ClickEvent, 16),
		zone:   entity.NewIdleZone(1920, 1080, 64, 64, 48),
	}
	mgr, err := New(config.NewDefault(), writeSprites(t, ""), h.zone, h.win, h.cursor, h.clicks)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.mgr = mgr
	return h
}

func (h *harness) click(t *testing.T, x, y int, pressed bool) {
	t.Helper()
	h.clicks <- entity.ClickEvent{X: x, Y: y, Button: entity.MouseButtonLeft, Pressed: pressed}
	if err := h.mgr.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

func (h *harness) zoneCenter() (int, int) {
	c := h.zone.Center()
	return int(c.X), int(c.Y)
}

func TestNewStartsFollowingAtCursor(t *testing.T) {
	h := newHarness(t)
	f := h.mgr.Follower()
	if f.Action != entity.ActionFollowing {
		t.Fatalf("action = %s", f.Action)
	}
	if f.Pos != (entity.Point{X: 100, Y: 100}) {
		t.Errorf("pos = %+v", f.Pos)
	}
	if h.win.w != 32 || h.win.h != 24 {
		t.Errorf("window = %dx%d, want 32x24", h.win.w, h.win.h)
	}
	if h.win.tps != 60 {
		t.Errorf("tps = %d", h.win.tps)
	}
}

func TestTickSmoothsTowardCursor(t *testing.T) {
	h := newHarness(t)
	f := h.mgr.Follower()

	for i := 0; i < 10; i++ {
		old := f.Pos
		h.cursor.p = entity.Point{X: float64(300 + i*7), Y: float64(50 - i*3)}
		if err := h.mgr.Step(); err != nil {
			t.Fatal(err)
		}
		want := entity.Point{
			X: old.X + (h.cursor.p.X-old.X)*0.1,
			Y: old.Y + (h.cursor.p.Y-old.Y)*0.1,
		}
		if math.Abs(f.Pos.X-want.X) > 1e-9 || math.Abs(f.Pos.Y-want.Y) > 1e-9 {
			t.Fatalf("tick %d: pos = %+v, want %+v", i, f.Pos, want)
		}
		if o := f.Origin(); h.win.x != o.X || h.win.y != o.Y {
			t.Fatalf("tick %d: window at (%d,%d), want %v", i, h.win.x, h.win.y, o)
		}
	}
}

func TestCursorFailureSkipsTick(t *testing.T) {
	h := newHarness(t)
	f := h.mgr.Follower()
	before := f.Pos
	moves := h.win.moves

	h.cursor.p = entity.Point{X: 900, Y: 900}
	h.cursor.err = errors.New("no display")
	if err := h.mgr.Step(); err != nil {
		t.Fatalf("Step should swallow cursor errors: %v", err)
	}
	if f.Pos != before || h.win.moves != moves {
		t.Error("tick should be skipped")
	}
}

// 跟随状态点窝中心 -> idle，宠物居中在窝里
func TestScenarioDock(t *testing.T) {
	h := newHarness(t)
	cx, cy := h.zoneCenter()
	h.click(t, cx, cy, true)

	f := h.mgr.Follower()
	if f.Action != entity.ActionIdle {
		t.Fatalf("action = %s", f.Action)
	}
	c := h.zone.Center()
	want := entity.Point{X: c.X - 40.0/2, Y: c.Y - 20.0/2}
	if f.Pos != want {
		t.Errorf("pos = %+v, want %+v", f.Pos, want)
	}
	if h.win.w != 40 || h.win.h != 20 {
		t.Errorf("window = %dx%d, want idle sprite size", h.win.w, h.win.h)
	}
	if o := f.Origin(); h.win.x != o.X || h.win.y != o.Y {
		t.Errorf("window not moved to dock: (%d,%d)", h.win.x, h.win.y)
	}
	if h.win.tps != 20 {
		t.Errorf("idle tps = %d", h.win.tps)
	}
}

func TestIdleIgnoresCursor(t *testing.T) {
	h := newHarness(t)
	cx, cy := h.zoneCenter()
	h.click(t, cx, cy, true)
	h.click(t, cx, cy, false) // 松开不影响 idle

	f := h.mgr.Follower()
	docked := f.Pos
	for _, p := range []entity.Point{{X: 0, Y: 0}, {X: 5000, Y: 10}, {X: 33, Y: 777}} {
		h.cursor.p = p
		if err := h.mgr.Step(); err != nil {
			t.Fatal(err)
		}
		if f.Pos != docked {
			t.Fatalf("idle follower moved to %+v", f.Pos)
		}
	}

	// 窝外点击也不理
	h.click(t, 10, 10, true)
	if f.Action != entity.ActionIdle || f.Pos != docked {
		t.Errorf("outside click changed idle follower: %s %+v", f.Action, f.Pos)
	}
}

// idle 时点窝 -> following，窗口置顶
func TestScenarioUndock(t *testing.T) {
	h := newHarness(t)
	cx, cy := h.zoneCenter()
	h.click(t, cx, cy, true)
	h.click(t, cx, cy, false)
	h.click(t, cx, cy, true)

	f := h.mgr.Follower()
	if f.Action != entity.ActionFollowing {
		t.Fatalf("action = %s", f.Action)
	}
	if h.win.raised != 1 {
		t.Errorf("raised = %d, want 1", h.win.raised)
	}
	if h.win.w != 32 || h.win.h != 24 {
		t.Errorf("window = %dx%d", h.win.w, h.win.h)
	}
	if h.win.tps != 60 {
		t.Errorf("tps = %d", h.win.tps)
	}
}

func TestDockToggleAlternates(t *testing.T) {
	h := newHarness(t)
	cx, cy := h.zoneCenter()
	want := []entity.Action{entity.ActionIdle, entity.ActionFollowing, entity.ActionIdle, entity.ActionFollowing}
	for i, w := range want {
		h.click(t, cx, cy, true)
		if got := h.mgr.Follower().Action; got != w {
			t.Fatalf("press %d: action = %s, want %s", i, got, w)
		}
		h.click(t, cx, cy, false)
	}
}

// 窝外按下 -> mousedown，任意位置松开 -> following
func TestScenarioPressAndRelease(t *testing.T) {
	h := newHarness(t)
	f := h.mgr.Follower()

	h.click(t, 500, 500, true)
	if f.Action != entity.ActionMouseDown {
		t.Fatalf("action = %s", f.Action)
	}
	if h.win.w != 30 || h.win.h != 36 {
		t.Errorf("window = %dx%d, want mousedown sprite", h.win.w, h.win.h)
	}

	// 按住时继续跟随
	h.cursor.p = entity.Point{X: 600, Y: 600}
	before := f.Pos
	if err := h.mgr.Step(); err != nil {
		t.Fatal(err)
	}
	if f.Pos == before {
		t.Error("mousedown should keep following")
	}

	// 按住时点窝不处理
	cx, cy := h.zoneCenter()
	h.click(t, cx, cy, true)
	if f.Action != entity.ActionMouseDown {
		t.Fatalf("press while held: action = %s", f.Action)
	}

	h.click(t, cx, cy, false)
	if f.Action != entity.ActionFollowing {
		t.Fatalf("after release: action = %s", f.Action)
	}
}

func TestZoneEdgeCountsAsInside(t *testing.T) {
	h := newHarness(t)
	r := h.zone.Rect
	h.click(t, r.Right(), r.Bottom(), true)
	if got := h.mgr.Follower().Action; got != entity.ActionIdle {
		t.Errorf("edge click: action = %s, want idle", got)
	}
}

func TestQueuedClicksAppliedInOrder(t *testing.T) {
	h := newHarness(t)
	cx, cy := h.zoneCenter()
	h.clicks <- entity.ClickEvent{X: 5, Y: 5, Pressed: true}
	h.clicks <- entity.ClickEvent{X: 5, Y: 5, Pressed: false}
	h.clicks <- entity.ClickEvent{X: cx, Y: cy, Pressed: true}
	if err := h.mgr.Step(); err != nil {
		t.Fatal(err)
	}
	if got := h.mgr.Follower().Action; got != entity.ActionIdle {
		t.Errorf("action = %s, want idle", got)
	}
}

func TestClosedClickSource(t *testing.T) {
	h := newHarness(t)
	close(h.clicks)
	h.cursor.p = entity.Point{X: 200, Y: 200}
	for i := 0; i < 3; i++ {
		if err := h.mgr.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if h.mgr.Follower().Pos == (entity.Point{X: 100, Y: 100}) {
		t.Error("follower should keep moving after the listener stops")
	}
}

// 缺少 idle 图：启动就失败，窗口还没出现
func TestScenarioMissingIdleSprite(t *testing.T) {
	win := &fakeWindow{}
	_, err := New(config.NewDefault(), writeSprites(t, "idle"), entity.NewIdleZone(800, 600, 64, 64, 0),
		win, &fakeCursor{}, make(chan entity.ClickEvent))
	if !errors.Is(err, config.ErrMissingActionSprite) || !errors.Is(err, config.ErrConfiguration) {
		t.Fatalf("err = %v", err)
	}
	if win.w != 0 || win.moves != 0 {
		t.Error("window touched before validation finished")
	}
}

func TestUpdateStopsWhenDockCloses(t *testing.T) {
	h := newHarness(t)
	done := make(chan struct{})
	h.mgr.QuitOn(done)

	if err := h.mgr.Update(); err != nil {
		t.Fatalf("Update before close: %v", err)
	}
	close(done)
	if err := h.mgr.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update after close = %v, want ebiten.Termination", err)
	}
}

func TestLayoutTracksSprite(t *testing.T) {
	h := newHarness(t)
	if w, hh := h.mgr.Layout(800, 600); w != 32 || hh != 24 {
		t.Errorf("layout = %dx%d", w, hh)
	}
	h.click(t, 500, 500, true)
	if w, hh := h.mgr.Layout(800, 600); w != 30 || hh != 36 {
		t.Errorf("layout = %dx%d", w, hh)
	}
}
