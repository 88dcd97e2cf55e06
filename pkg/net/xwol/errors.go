package xwol

import "errors"

var (
	// ErrInvalidMAC 表示 MAC 地址缺失或无效。
	ErrInvalidMAC = errors.New("xwol: invalid MAC address")

	// ErrInvalidSubnet 表示子网缺失或不是合法的 CIDR。
	ErrInvalidSubnet = errors.New("xwol: invalid subnet")

	// ErrIPv6Unsupported 表示子网是 IPv6，当前策略只接受 IPv4。
	ErrIPv6Unsupported = errors.New("xwol: IPv6 not supported")

	// ErrSocket 表示 UDP socket 创建或 SO_BROADCAST 设置失败。
	ErrSocket = errors.New("xwol: socket error")

	// ErrInvalidPort 表示端口超出 0~65535 或端口列表为空。
	ErrInvalidPort = errors.New("xwol: invalid port")

	// ErrInvalidPacket 表示字节序列不是合法的魔术包。
	ErrInvalidPacket = errors.New("xwol: invalid magic packet")
)
