package entity

import "image"

// CreatureProfile 一种宠物的配置：状态名 -> 图片路径
// 启动时从 sprites.json 读一次，之后只读
type CreatureProfile struct {
	ID      string            // 比如 "cat"
	Sprites map[string]string // 比如 "idle" -> "sprites/cat_idle.png"
}

// SpritePath 查某个状态对应的图片
func (p *CreatureProfile) SpritePath(a Action) (string, bool) {
	path, ok := p.Sprites[a.String()]
	return path, ok && path != ""
}

// Follower 跟着鼠标跑的那只宠物
type Follower struct {
	Profile *CreatureProfile // 共享、只读

	Pos    Point  // 窗口左上角 (连续坐标)
	Action Action // 当前状态

	Sprite image.Image // 当前显示的图，永远等于 Profile 里 Action 对应的那张
	Width  int         // 窗口宽度 (像素)，和图片一样大
	Height int         // 窗口高度 (像素)
}

// NewFollower 创建宠物，初始状态是 following
func NewFollower(profile *CreatureProfile, pos Point) *Follower {
	return &Follower{
		Profile: profile,
		Pos:     pos,
		Action:  ActionFollowing,
	}
}

// SetSprite 换图，窗口尺寸跟着图片走
func (f *Follower) SetSprite(img image.Image) {
	f.Sprite = img
	b := img.Bounds()
	f.Width = b.Dx()
	f.Height = b.Dy()
}

// Origin 窗口真正要摆放的整数位置
func (f *Follower) Origin() image.Point {
	return f.Pos.Round()
}

// CenterOn 把宠物的中心对准 p
func (f *Follower) CenterOn(p Point) {
	f.Pos = Point{
		X: p.X - float64(f.Width)/2,
		Y: p.Y - float64(f.Height)/2,
	}
}
