package entity

// Action 宠物的交互状态，同时决定显示哪张图和是否跟随鼠标
// 只有三种，零值就是 following（启动时的状态）
type Action uint8

const (
	ActionFollowing Action = iota // 跟随鼠标
	ActionIdle                    // 停靠在 idle 区域，不动
	ActionMouseDown               // 鼠标按住中，继续跟随但换图
)

// Actions 全部状态，启动时用它来预检查每个状态都有图
var Actions = []Action{ActionFollowing, ActionIdle, ActionMouseDown}

var actionNames = [...]string{
	ActionFollowing: "following",
	ActionIdle:      "idle",
	ActionMouseDown: "mousedown",
}

// String 返回配置文件里用的名字 (sprites.json 的 key)
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "invalid-action"
}

// Valid 是否是上面三种之一
func (a Action) Valid() bool {
	return int(a) < len(actionNames)
}

// Moves 这个状态下是否跟随鼠标
func (a Action) Moves() bool {
	return a == ActionFollowing || a == ActionMouseDown
}
