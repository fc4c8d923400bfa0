package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RoleDock 子进程只负责显示窝的窗口
const RoleDock = "dock"

// Launch 父进程通过环境变量传给子进程的参数
// 普通启动时这些变量都不存在，Role 为空
type Launch struct {
	Role  string `env:"PET_ROLE"`
	DockX int    `env:"PET_DOCK_X"`
	DockY int    `env:"PET_DOCK_Y"`
}

// ParseLaunch 读取启动角色
func ParseLaunch() (Launch, error) {
	var l Launch
	if err := env.Parse(&l); err != nil {
		return Launch{}, fmt.Errorf("%w: parse launch env: %v", ErrInvalidSetting, err)
	}
	return l, nil
}

// Environ 生成子进程需要的环境变量
func (l Launch) Environ() []string {
	return []string{
		"PET_ROLE=" + l.Role,
		fmt.Sprintf("PET_DOCK_X=%d", l.DockX),
		fmt.Sprintf("PET_DOCK_Y=%d", l.DockY),
	}
}
