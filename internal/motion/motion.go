package motion

import "github.com/davide-muzzi/cursor-follower/internal/entity"

// DefaultSmoothing 默认平滑系数 α
// 每个 tick 走完剩余距离的 α 倍 (一阶低通滤波)，越大追得越紧
const DefaultSmoothing = 0.1

// Step 一次平滑：pos + (target - pos) * alpha
func Step(pos, target entity.Point, alpha float64) entity.Point {
	return entity.Point{
		X: pos.X + (target.X-pos.X)*alpha,
		Y: pos.Y + (target.Y-pos.Y)*alpha,
	}
}

// Controller 每个 tick 把宠物往鼠标方向挪
type Controller struct {
	Alpha float64
}

// NewController alpha 不合法时退回默认值
func NewController(alpha float64) Controller {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultSmoothing
	}
	return Controller{Alpha: alpha}
}

// Tick idle 时不动，返回 false；否则更新位置并返回 true
func (c Controller) Tick(f *entity.Follower, cursor entity.Point) bool {
	if !f.Action.Moves() {
		return false
	}
	f.Pos = Step(f.Pos, cursor, c.Alpha)
	return true
}
