package xwol

import (
	"bytes"
	"fmt"

	"github.com/omeyang/xwol/pkg/util/xmac"
)

const (
	// PacketSize 魔术包长度：6 字节同步流 + 16 × 6 字节 MAC。
	PacketSize = syncLen + repeat*macLen

	syncLen = 6
	macLen  = 6
	repeat  = 16
)

// MagicPacket 是 Wake-on-LAN 魔术包。
// 值类型，完全由目标 MAC 决定。
type MagicPacket [PacketSize]byte

// NewMagicPacket 构造目标 MAC 的魔术包。纯函数，相同输入得到逐字节相同的结果。
func NewMagicPacket(mac xmac.Addr) MagicPacket {
	var p MagicPacket
	for i := range syncLen {
		p[i] = 0xff
	}
	b := mac.Bytes()
	for i := range repeat {
		copy(p[syncLen+i*macLen:], b[:])
	}
	return p
}

// Bytes 返回用于发送的字节切片（长度始终为 [PacketSize]）。
func (p MagicPacket) Bytes() []byte {
	return p[:]
}

// MAC 返回包内携带的目标 MAC。
func (p MagicPacket) MAC() xmac.Addr {
	var b [6]byte
	copy(b[:], p[syncLen:syncLen+macLen])
	return xmac.AddrFrom6(b)
}

// ParseMagicPacket 校验 b 是否为合法魔术包并返回其中的 MAC。
// 用于接收端（测试、抓包工具）核对载荷。
func ParseMagicPacket(b []byte) (xmac.Addr, error) {
	if len(b) != PacketSize {
		return xmac.Addr{}, fmt.Errorf("%w: length %d, want %d", ErrInvalidPacket, len(b), PacketSize)
	}
	for i := range syncLen {
		if b[i] != 0xff {
			return xmac.Addr{}, fmt.Errorf("%w: sync byte %d is 0x%02x", ErrInvalidPacket, i, b[i])
		}
	}
	mac := b[syncLen : syncLen+macLen]
	for i := 1; i < repeat; i++ {
		off := syncLen + i*macLen
		if !bytes.Equal(b[off:off+macLen], mac) {
			return xmac.Addr{}, fmt.Errorf("%w: repetition %d differs", ErrInvalidPacket, i)
		}
	}
	return xmac.ParseBytes(mac)
}
