package entity

// IdleZone 屏幕上固定的“窝”，点一下宠物就回窝/出窝
// 位置创建后不变
type IdleZone struct {
	Rect Rect
}

// NewIdleZone 把窝放在屏幕右下角，离边缘 margin 像素
func NewIdleZone(screenW, screenH, w, h, margin int) IdleZone {
	return IdleZone{Rect: Rect{
		X: screenW - w - margin,
		Y: screenH - h - margin,
		W: w,
		H: h,
	}}
}

// Contains 点击是否落在窝里 (边上也算)
func (z IdleZone) Contains(x, y int) bool {
	return z.Rect.Contains(x, y)
}

// Center 窝的中心
func (z IdleZone) Center() Point {
	return z.Rect.Center()
}
