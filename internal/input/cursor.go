package input

import (
	"errors"

	"github.com/go-vgo/robotgo"

	"github.com/davide-muzzi/cursor-follower/internal/entity"
)

// ErrNoScreen 拿不到屏幕尺寸 (比如 Wayland 下)
var ErrNoScreen = errors.New("screen size unavailable")

// Cursor 全局鼠标位置 (屏幕坐标，不依赖窗口焦点)
type Cursor struct{}

// Position 读取当前鼠标位置
func (Cursor) Position() (entity.Point, error) {
	x, y := robotgo.Location()
	return entity.Point{X: float64(x), Y: float64(y)}, nil
}

// ScreenSize 主屏幕尺寸
func ScreenSize() (int, int, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, ErrNoScreen
	}
	return w, h, nil
}
