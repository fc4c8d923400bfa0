package entity

// MouseButton 全局钩子报上来的按键编号 (1 = 左键)
type MouseButton uint16

const (
	MouseButtonLeft  MouseButton = 1
	MouseButtonRight MouseButton = 2
)

// ClickEvent 全局鼠标按下/松开，坐标是屏幕坐标
type ClickEvent struct {
	X, Y    int
	Button  MouseButton
	Pressed bool // true = 按下, false = 松开
}
