package input

import (
	"context"
	"log"

	hook "github.com/robotn/gohook"

	"github.com/davide-muzzi/cursor-follower/internal/entity"
)

// QueueSize 点击队列长度，UI 线程每个 tick 清空一次
const QueueSize = 64

// Listen 启动全局鼠标监听 (后台协程)
// 只负责把按下/松开塞进 out，不碰宠物的任何状态
// ctx 结束时停止钩子
func Listen(ctx context.Context, out chan<- entity.ClickEvent) {
	go func() {
		events := hook.Start()
		defer hook.End()
		log.Println("global mouse listener started")

		for {
			select {
			case <-ctx.Done():
				log.Println("global mouse listener stopped")
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				click, ok := translate(ev)
				if !ok {
					continue
				}
				// 队列满了就等，松开事件不能丢，否则会卡在 mousedown
				select {
				case out <- click:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// translate 只关心按下和松开
// gohook 沿用 libuiohook 的编号：MouseHold 是按下，MouseDown 是松开，MouseUp 是 click
func translate(ev hook.Event) (entity.ClickEvent, bool) {
	var pressed bool
	switch ev.Kind {
	case hook.MouseHold:
		pressed = true
	case hook.MouseDown:
		pressed = false
	default:
		return entity.ClickEvent{}, false
	}
	return entity.ClickEvent{
		X:       int(ev.X),
		Y:       int(ev.Y),
		Button:  entity.MouseButton(ev.Button),
		Pressed: pressed,
	}, true
}
