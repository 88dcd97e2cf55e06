package xmac

import (
	"errors"
	"fmt"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidFormat 表示 MAC 地址格式无效。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrEmpty 表示输入为空字符串。
	// ErrEmpty 同时匹配 [ErrInvalidFormat]。
	ErrEmpty = fmt.Errorf("%w: empty input", ErrInvalidFormat)

	// ErrInvalidLength 表示字节长度不正确（期望 6 字节）。
	ErrInvalidLength = errors.New("xmac: invalid length")
)
