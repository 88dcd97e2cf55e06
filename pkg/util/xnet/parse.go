package xnet

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ParsePrefix 解析 CIDR 字符串，返回已掩码的前缀。
//
//	p, _ := xnet.ParsePrefix("192.168.1.10/24") // 192.168.1.0/24
func ParsePrefix(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, fmt.Errorf("%w: empty input", ErrInvalidPrefix)
	}

	// netip.ParsePrefix 本身会拒绝 zone，这里提前给出更明确的错误
	if strings.Contains(s, "%") {
		return netip.Prefix{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidPrefix, s)
	}

	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	return prefix.Masked(), nil
}

// Broadcast 计算 CIDR 子网的广播地址，即主机位全部置 1 的地址。
//
// IPv4 "/32" 返回地址本身，"/31" 返回两个地址中较大的一个。
// IPv6 前缀按相同算术计算，见包文档。
func Broadcast(s string) (netip.Addr, error) {
	prefix, err := ParsePrefix(s)
	if err != nil {
		return netip.Addr{}, err
	}
	return BroadcastOf(prefix), nil
}

// BroadcastOf 返回 prefix 的最后一个地址。
// prefix 无效时返回零值 netip.Addr{}。
func BroadcastOf(prefix netip.Prefix) netip.Addr {
	if !prefix.IsValid() {
		return netip.Addr{}
	}
	return netipx.RangeOfPrefix(prefix.Masked()).To()
}
