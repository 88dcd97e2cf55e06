//go:build !unix

package xwol

import "syscall"

// enableBroadcast 在非 unix 平台上为空操作，依赖 Go 运行时创建数据报 socket 时设置的 SO_BROADCAST。
func enableBroadcast(_, _ string, _ syscall.RawConn) error {
	return nil
}
