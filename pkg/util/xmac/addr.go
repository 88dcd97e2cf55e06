package xmac

import "net"

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 字节顺序即传输顺序
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 使用 [Parse] 或 [MustParse] 创建：
//
//	addr, err := xmac.Parse("aa:bb:cc:dd:ee:ff")
//	addr := xmac.MustParse("aa:bb:cc:dd:ee:ff")
type Addr struct {
	bytes [6]byte
}

// broadcastBytes 是 ff:ff:ff:ff:ff:ff。
var broadcastBytes = [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// Bytes 返回 MAC 地址的字节表示（长度始终为 6）。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// IsValid 报告 a 是否为非零地址。
// 全零地址可以解析，但没有网卡使用它，IsValid 返回 false。
func (a Addr) IsValid() bool {
	return a != Addr{}
}

// IsBroadcast 报告 a 是否为广播地址（ff:ff:ff:ff:ff:ff）。
func (a Addr) IsBroadcast() bool {
	return a.bytes == broadcastBytes
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回副本，修改不影响原值。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}
