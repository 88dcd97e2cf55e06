package xlog

import (
	"log/slog"
	"net/netip"
)

// 常用属性 Key 常量
const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyComponent 组件名称字段的标准 key
	KeyComponent = "component"

	// KeyPort 目标端口字段的标准 key
	KeyPort = "port"

	// KeyTarget 目标地址字段的标准 key
	KeyTarget = "target"
)

// Err 创建错误属性
//
// 如果 err 为 nil，返回空属性（会被 slog 忽略）。
//
//	if err != nil {
//	    logger.Error(ctx, "operation failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Port 创建端口属性
func Port(p int) slog.Attr {
	return slog.Int(KeyPort, p)
}

// Target 创建目标地址属性
func Target(addr netip.Addr) slog.Attr {
	return slog.String(KeyTarget, addr.String())
}
