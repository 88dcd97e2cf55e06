//go:build unix

package xwol

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// enableBroadcast 在 bind(2) 之前显式设置 SO_BROADCAST。
// Go 运行时创建数据报 socket 时也会设置该选项，这里不依赖运行时的实现细节。
// 通过 net.ListenConfig.Control 调用。
func enableBroadcast(_, _ string, c syscall.RawConn) error {
	var sysErr error
	err := c.Control(func(fd uintptr) {
		sysErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
	})
	if err != nil {
		return err
	}
	return sysErr
}
