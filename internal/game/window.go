package game

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/davide-muzzi/cursor-follower/internal/entity"
)

// Window Manager 对窗口的全部操作，坐标和尺寸都是桌面坐标 (和鼠标同一套)
type Window interface {
	Move(x, y int)
	Resize(w, h int)
	Raise()
	SetTPS(tps int)
}

// Cursor 全局鼠标位置
type Cursor interface {
	Position() (entity.Point, error)
}

// Desktop 桌面坐标和 ebiten 窗口坐标的换算
//
// robotgo / gohook 给的是全局桌面坐标 (Windows 开了 DPI 感知时是物理像素)，
// ebiten 的窗口位置是设备无关像素，并且相对当前显示器的左上角。
type Desktop struct {
	Scale  float64     // 桌面像素 / 设备无关像素
	Origin image.Point // 当前显示器左上角 (设备无关像素)
}

// NewDesktop 用两边量到的主屏宽度算比例
// 两边一致 (比如 macOS 都是逻辑点) 时比例就是 1；量不到时退回系统缩放
func NewDesktop(desktopW, monitorW int, deviceScale float64, origin image.Point) Desktop {
	scale := deviceScale
	if desktopW > 0 && monitorW > 0 {
		scale = float64(desktopW) / float64(monitorW)
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return Desktop{Scale: scale, Origin: origin}
}

// ToWindow 桌面坐标 -> SetWindowPosition 的参数
func (d Desktop) ToWindow(x, y int) (int, int) {
	wx := int(math.Round(float64(x)/d.Scale)) - d.Origin.X
	wy := int(math.Round(float64(y)/d.Scale)) - d.Origin.Y
	return wx, wy
}

// ToWindowSize 桌面像素尺寸 -> SetWindowSize 的参数，至少 1
func (d Desktop) ToWindowSize(w, h int) (int, int) {
	ww := int(math.Ceil(float64(w) / d.Scale))
	wh := int(math.Ceil(float64(h) / d.Scale))
	return max(ww, 1), max(wh, 1)
}

// EbitenWindow 真正的 ebiten 窗口
type EbitenWindow struct {
	desktop Desktop
}

// NewEbitenWindow desktopW 是 robotgo 量到的主屏宽度
func NewEbitenWindow(desktopW int) *EbitenWindow {
	d := Desktop{Scale: 1}
	if m := ebiten.Monitor(); m != nil {
		b := m.Bounds()
		d = NewDesktop(desktopW, b.Dx(), m.DeviceScaleFactor(), b.Min)
	}
	return &EbitenWindow{desktop: d}
}

// Move 每次都重新取当前显示器，窗口跨屏后原点跟着换
func (w *EbitenWindow) Move(x, y int) {
	d := w.desktop
	if m := ebiten.Monitor(); m != nil {
		d.Origin = m.Bounds().Min
	}
	ebiten.SetWindowPosition(d.ToWindow(x, y))
}

func (w *EbitenWindow) Resize(width, height int) {
	ebiten.SetWindowSize(w.desktop.ToWindowSize(width, height))
}

// Raise ebiten 没有“置顶一次”的接口，关掉再打开 floating 让窗口管理器重新排到最前
func (w *EbitenWindow) Raise() {
	ebiten.SetWindowFloating(false)
	ebiten.SetWindowFloating(true)
}

func (w *EbitenWindow) SetTPS(tps int) { ebiten.SetTPS(tps) }

// SetupWindow 无边框、透明、置顶，passthrough 时鼠标点击直接穿过窗口
func SetupWindow(title string, passthrough bool) {
	ebiten.SetWindowDecorated(false) // 无边框
	ebiten.SetWindowFloating(true)   // 始终置顶
	ebiten.SetWindowMousePassthrough(passthrough)
	ebiten.SetRunnableOnUnfocused(true) // 失去焦点也要继续跟随
	ebiten.SetWindowTitle(title)
}

// RunOptions 透明背景
func RunOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{ScreenTransparent: true}
}
