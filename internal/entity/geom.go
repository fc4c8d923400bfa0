package entity

import (
	"image"
	"math"
)

// Point 屏幕上的连续坐标
// 用 float64 保存，只有在真正移动窗口时才取整，这样亚像素的位移不会丢
type Point struct {
	X, Y float64
}

// Round 四舍五入到整数像素
func (p Point) Round() image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Rect 屏幕矩形 (左上角 + 宽高)
type Rect struct {
	X, Y int
	W, H int
}

// Right 最右一列像素的 x
func (r Rect) Right() int { return r.X + r.W - 1 }

// Bottom 最下一行像素的 y
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// Contains 闭区间判断：点在边上也算在里面
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center 矩形中心 (可能是半像素)
func (r Rect) Center() Point {
	return Point{
		X: float64(r.X) + float64(r.W)/2,
		Y: float64(r.Y) + float64(r.H)/2,
	}
}
