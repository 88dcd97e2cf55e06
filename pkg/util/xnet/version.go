package xnet

import "net/netip"

// Version 表示地址族。
type Version uint8

const (
	// Invalid 表示零值或无效地址。
	Invalid Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6，包括 IPv4-mapped 形式。
	V6 Version = 6
)

// String 返回 "IPv4"、"IPv6" 或 "invalid"。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "invalid"
	}
}

// AddrVersion 返回 addr 的地址族。
//
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）按其实际形态归为 V6，
// 与 [ParsePrefix] 不做归一化保持一致。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case addr.Is4():
		return V4
	case addr.IsValid():
		return V6
	default:
		return Invalid
	}
}
