package xmac

import (
	"fmt"
	"strings"
)

// Parse 解析 MAC 地址字符串。
//
// 支持的格式：
//   - 冒号分隔：aa:bb:cc:dd:ee:ff, AA:BB:CC:DD:EE:FF
//   - 短线分隔：aa-bb-cc-dd-ee-ff, AA-BB-CC-DD-EE-FF
//   - 混合分隔：aa:bb-cc:dd-ee:ff
//   - 单位数字段：a:b:c:d:e:f（等价于 0a:0b:0c:0d:0e:0f）
//   - 无分隔：aabbccddeeff, AABBCCDDEEFF
//
// 输入会自动去除首尾空白。大小写不敏感。
func Parse(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}

	if strings.ContainsAny(s, ":-") {
		return parseDelimited(s)
	}

	if len(s) == 12 {
		return parseBare(s)
	}

	return Addr{}, fmt.Errorf("%w: expected 12 hex digits or 6 delimited fields, got %q", ErrInvalidFormat, s)
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// parseDelimited 按 ':' 或 '-' 切分，要求恰好 6 段，每段 1~2 位十六进制。
// 不要求分隔符一致。
func parseDelimited(s string) (Addr, error) {
	var addr Addr
	field := 0
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isSeparator(s[i]) {
			continue
		}
		if field == 6 {
			return Addr{}, fmt.Errorf("%w: too many fields", ErrInvalidFormat)
		}
		b, ok := parseField(s[start:i])
		if !ok {
			return Addr{}, fmt.Errorf("%w: invalid field %d %q", ErrInvalidFormat, field, s[start:i])
		}
		addr.bytes[field] = b
		field++
		start = i + 1
	}
	if field != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFormat, field)
	}
	return addr, nil
}

// parseBare 解析无分隔符的 12 字符十六进制字符串。
func parseBare(s string) (Addr, error) {
	var addr Addr
	for i := range 6 {
		b, ok := parseField(s[i*2 : i*2+2])
		if !ok {
			return Addr{}, fmt.Errorf("%w: invalid hex at position %d", ErrInvalidFormat, i*2)
		}
		addr.bytes[i] = b
	}
	return addr, nil
}

// parseField 解析 1~2 位十六进制数字为一个字节。
func parseField(f string) (byte, bool) {
	if len(f) == 0 || len(f) > 2 {
		return 0, false
	}
	var v int
	for i := range len(f) {
		h := hexValue(f[i])
		if h < 0 {
			return 0, false
		}
		v = v<<4 | h
	}
	return byte(v), true
}

func isSeparator(c byte) bool {
	return c == ':' || c == '-'
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
