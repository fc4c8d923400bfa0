package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/davide-muzzi/cursor-follower/config"
	"github.com/davide-muzzi/cursor-follower/internal/entity"
	"github.com/davide-muzzi/cursor-follower/internal/game"
	"github.com/davide-muzzi/cursor-follower/internal/input"
	"github.com/davide-muzzi/cursor-follower/internal/monitor"
	"github.com/davide-muzzi/cursor-follower/internal/sprite"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// 1. 读配置 (config.json + 环境变量)
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		return err
	}
	launch, err := config.ParseLaunch()
	if err != nil {
		return err
	}
	dockImg, err := sprite.LoadDockImage(cfg.DockImagePath)
	if err != nil {
		return err
	}
	sw, sh, err := input.ScreenSize()
	if err != nil {
		return err
	}

	// 子进程：只显示窝
	if launch.Role == config.RoleDock {
		return game.RunDock(dockImg, launch, game.NewEbitenWindow(sw))
	}

	// 2. 只允许一只宠物
	if running, err := monitor.OtherInstance(); err != nil {
		log.Printf("instance check skipped: %v", err)
	} else if running {
		return errors.New("another cursor-follower is already running")
	}

	// 3. 宠物配置
	sprites, err := config.LoadSpriteMap(cfg.SpritesPath)
	if err != nil {
		return err
	}
	profile, err := sprites.Creature(cfg.Creature)
	if err != nil {
		return err
	}

	// 4. 窝放在屏幕右下角 (桌面坐标，和鼠标同一套)
	b := dockImg.Bounds()
	zone := entity.NewIdleZone(sw, sh, b.Dx(), b.Dy(), cfg.DockMargin)

	// 5. 基础窗口设置 (宠物窗口不接收点击)
	game.SetupWindow("cursor-follower", true)

	// 6. 初始化逻辑 (所有图片在这里校验)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clicks := make(chan entity.ClickEvent, input.QueueSize)
	mgr, err := game.New(cfg, profile, zone, game.NewEbitenWindow(sw), input.Cursor{}, clicks)
	if err != nil {
		return err
	}

	// 7. 窝的窗口和全局鼠标监听
	dock, err := game.SpawnDock(ctx, zone)
	if err != nil {
		return err
	}
	// 窝退出 (ESC 或被关掉) 时宠物也退出
	dockDone := make(chan struct{})
	go func() {
		_ = dock.Wait()
		close(dockDone)
	}()
	mgr.QuitOn(dockDone)
	defer func() {
		cancel()
		<-dockDone
	}()
	input.Listen(ctx, clicks)

	// Ctrl+C：ebiten 没有外部退出接口，收掉子进程后直接结束
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
		<-dockDone
		os.Exit(0)
	}()

	// 8. 启动
	return ebiten.RunGameWithOptions(mgr, game.RunOptions())
}
