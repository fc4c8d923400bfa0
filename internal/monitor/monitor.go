package monitor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// Linux 的 /proc/<pid>/comm 最多 15 个字符
const commLimit = 15

// OtherInstance 检查是否已经有另一只宠物在跑
// 自己的子进程 (窝) 不算
func OtherInstance() (bool, error) {
	exe, err := os.Executable()
	if err != nil {
		return false, err
	}
	name := filepath.Base(exe)
	self := int32(os.Getpid())

	procs, err := process.Processes()
	if err != nil {
		return false, err
	}

	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		// 进程可能在遍历时已经退出，读不到就跳过
		n, err := p.Name()
		if err != nil || !sameProgram(name, n) {
			continue
		}
		if ppid, err := p.Ppid(); err == nil && ppid == self {
			continue
		}
		return true, nil
	}
	return false, nil
}

// sameProgram 比较进程名，兼容被截断的名字和 Windows 的 .exe
func sameProgram(self, other string) bool {
	self = strings.TrimSuffix(strings.ToLower(self), ".exe")
	other = strings.TrimSuffix(strings.ToLower(other), ".exe")
	if other == "" {
		return false
	}
	if self == other {
		return true
	}
	return len(other) == commLimit && strings.HasPrefix(self, other)
}
