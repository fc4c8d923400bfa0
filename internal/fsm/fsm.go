// Package fsm 宠物的交互状态机
//
// 每个 (状态, 事件) 组合都有结果，没有定义的组合就是“不变、不做事”。
//
//	following + 窝里按下   -> idle      (回窝)
//	idle      + 窝里按下   -> following (出窝，窗口置顶)
//	following + 窝外按下   -> mousedown
//	mousedown + 任意松开   -> following
//	其它                   -> 原状态，无副作用
package fsm

import "github.com/davide-muzzi/cursor-follower/internal/entity"

// Effect 状态切换时要做的事
type Effect uint8

const (
	EffectNone    Effect = iota // 什么都不做
	EffectDock                  // 挪到窝中心，换 idle 图
	EffectUndock                // 换 following 图，窗口置顶
	EffectPress                 // 换 mousedown 图
	EffectRelease               // 换 following 图
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectDock:
		return "dock"
	case EffectUndock:
		return "undock"
	case EffectPress:
		return "press"
	case EffectRelease:
		return "release"
	}
	return "invalid-effect"
}

// Outcome 一次切换的结果
type Outcome struct {
	Next   entity.Action
	Effect Effect
}

// Transition 纯函数：当前状态 + 点击事件 (+ 是否落在窝里) -> 新状态 + 副作用
func Transition(cur entity.Action, ev entity.ClickEvent, inZone bool) Outcome {
	// 非法状态：拉回 following，保证状态永远在三种之内
	if !cur.Valid() {
		return Outcome{Next: entity.ActionFollowing, Effect: EffectRelease}
	}
	stay := Outcome{Next: cur, Effect: EffectNone}

	switch cur {
	case entity.ActionFollowing:
		if !ev.Pressed {
			return stay
		}
		if inZone {
			return Outcome{Next: entity.ActionIdle, Effect: EffectDock}
		}
		return Outcome{Next: entity.ActionMouseDown, Effect: EffectPress}

	case entity.ActionIdle:
		// 窝外的点击一律忽略
		if ev.Pressed && inZone {
			return Outcome{Next: entity.ActionFollowing, Effect: EffectUndock}
		}
		return stay

	case entity.ActionMouseDown:
		// 按住时再按 (包括点窝) 不处理，只等松开
		if !ev.Pressed {
			return Outcome{Next: entity.ActionFollowing, Effect: EffectRelease}
		}
	}
	return stay
}
