package game

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/davide-muzzi/cursor-follower/config"
	"github.com/davide-muzzi/cursor-follower/internal/entity"
)

// Dock 窝的窗口，只负责显示，点击由全局监听处理
// ebiten 一个进程只有一个窗口，所以窝跑在子进程里
// 宠物窗口点不到，ESC 只能在这里按：窝退出后父进程也跟着退出
type Dock struct {
	img   image.Image
	frame *ebiten.Image
}

func NewDock(img image.Image) *Dock {
	return &Dock{img: img}
}

func (d *Dock) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (d *Dock) Draw(screen *ebiten.Image) {
	if d.frame == nil {
		d.frame = ebiten.NewImageFromImage(d.img)
	}
	screen.DrawImage(d.frame, nil)
}

func (d *Dock) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

// RunDock 子进程入口：在指定位置 (桌面坐标) 显示窝
func RunDock(img image.Image, launch config.Launch, window Window) error {
	b := img.Bounds()
	SetupWindow("cursor-follower dock", false)
	window.SetTPS(10) // 静态图，只需要及时响应 ESC
	window.Resize(b.Dx(), b.Dy())
	window.Move(launch.DockX, launch.DockY)
	return ebiten.RunGameWithOptions(NewDock(img), RunOptions())
}

// SpawnDock 用同一个可执行文件启动窝的子进程，ctx 结束时子进程被杀掉
func SpawnDock(ctx context.Context, zone entity.IdleZone) (*exec.Cmd, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}

	launch := config.Launch{Role: config.RoleDock, DockX: zone.Rect.X, DockY: zone.Rect.Y}
	cmd := exec.CommandContext(ctx, exe)
	cmd.Env = append(os.Environ(), launch.Environ()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start dock: %w", err)
	}
	return cmd, nil
}
