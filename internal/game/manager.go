package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/davide-muzzi/cursor-follower/config"
	"github.com/davide-muzzi/cursor-follower/internal/entity"
	"github.com/davide-muzzi/cursor-follower/internal/fsm"
	"github.com/davide-muzzi/cursor-follower/internal/motion"
	"github.com/davide-muzzi/cursor-follower/internal/sprite"
)

// Manager 唯一拥有宠物和窝的地方
// 监听线程只往 clicks 里塞事件，所有修改都在 Update (UI 线程) 里做
type Manager struct {
	cfg      *config.Config
	follower *entity.Follower
	zone     entity.IdleZone
	resolver *sprite.Resolver
	mover    motion.Controller

	window Window
	cursor Cursor
	clicks <-chan entity.ClickEvent
	quit   <-chan struct{} // 关闭时结束游戏循环 (窝的窗口退出了)

	frames map[entity.Action]*ebiten.Image // Draw 用的 GPU 图片缓存
}

// New 创建 Manager
// 所有状态的图都在这里预读，配置有问题直接返回错误，窗口还没出现
func New(cfg *config.Config, profile *entity.CreatureProfile, zone entity.IdleZone,
	window Window, cursor Cursor, clicks <-chan entity.ClickEvent) (*Manager, error) {
	g := &Manager{
		cfg:      cfg,
		zone:     zone,
		resolver: sprite.NewResolver(profile),
		mover:    motion.NewController(cfg.Smoothing),
		window:   window,
		cursor:   cursor,
		clicks:   clicks,
		frames:   make(map[entity.Action]*ebiten.Image, len(entity.Actions)),
	}

	// 1. 预读所有图片
	if err := g.resolver.Preload(); err != nil {
		return nil, err
	}

	// 2. 宠物出生在鼠标位置 (读不到就在原点)
	var start entity.Point
	if p, err := cursor.Position(); err == nil {
		start = p
	}
	g.follower = entity.NewFollower(profile, start)

	// 3. 设置初始图片和窗口
	if err := g.setAction(entity.ActionFollowing); err != nil {
		return nil, err
	}
	g.moveWindow()
	g.window.SetTPS(cfg.TPS)
	return g, nil
}

// Follower 当前宠物 (只读用)
func (g *Manager) Follower() *entity.Follower { return g.follower }

// QuitOn ch 关闭后下一个 tick 退出
func (g *Manager) QuitOn(ch <-chan struct{}) { g.quit = ch }

func (g *Manager) Update() error {
	// 宠物窗口拿不到焦点，退出信号来自窝 (在窝上按 ESC)
	select {
	case <-g.quit:
		return ebiten.Termination
	default:
	}
	return g.Step()
}

// Step 一个 tick：先处理排队的点击，再移动
func (g *Manager) Step() error {
	// 1. 清空点击队列
	if err := g.drainClicks(); err != nil {
		return err
	}

	// 2. 跟随鼠标
	g.tick()
	return nil
}

func (g *Manager) drainClicks() error {
	for {
		select {
		case ev, ok := <-g.clicks:
			if !ok {
				// 监听线程退出了，之后只剩跟随
				g.clicks = nil
				return nil
			}
			if err := g.HandleClick(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// HandleClick 按状态机处理一次点击
func (g *Manager) HandleClick(ev entity.ClickEvent) error {
	f := g.follower
	inZone := g.zone.Contains(ev.X, ev.Y)
	out := fsm.Transition(f.Action, ev, inZone)
	if out.Effect == fsm.EffectNone {
		return nil
	}
	if g.cfg.Debug {
		log.Printf("transition %s -> %s (%s) at (%d,%d) inZone=%v", f.Action, out.Next, out.Effect, ev.X, ev.Y, inZone)
	}

	if err := g.setAction(out.Next); err != nil {
		return err
	}

	switch out.Effect {
	case fsm.EffectDock:
		// 用 idle 图的尺寸居中到窝里
		f.CenterOn(g.zone.Center())
		g.moveWindow()
		g.window.SetTPS(g.cfg.IdleTPS)
	case fsm.EffectUndock:
		g.window.Raise()
		g.window.SetTPS(g.cfg.TPS)
	}
	return nil
}

// setAction 切换状态，图片和窗口尺寸跟着变
func (g *Manager) setAction(a entity.Action) error {
	if err := g.resolver.Apply(g.follower, a); err != nil {
		return err
	}
	g.follower.Action = a
	g.window.Resize(g.follower.Width, g.follower.Height)
	return nil
}

// tick 平滑移动，读不到鼠标就跳过这一帧
func (g *Manager) tick() {
	if !g.follower.Action.Moves() {
		return
	}
	p, err := g.cursor.Position()
	if err != nil {
		return
	}
	g.mover.Tick(g.follower, p)
	g.moveWindow()
}

func (g *Manager) moveWindow() {
	o := g.follower.Origin()
	g.window.Move(o.X, o.Y)
}

func (g *Manager) Draw(screen *ebiten.Image) {
	f := g.follower
	frame, ok := g.frames[f.Action]
	if !ok {
		frame = ebiten.NewImageFromImage(f.Sprite)
		g.frames[f.Action] = frame
	}
	screen.DrawImage(frame, nil)
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 画布大小就是图片大小
	return g.follower.Width, g.follower.Height
}
