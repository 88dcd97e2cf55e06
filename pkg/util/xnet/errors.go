package xnet

import "errors"

var (
	// ErrInvalidPrefix 表示无效的 CIDR 前缀字符串。
	ErrInvalidPrefix = errors.New("xnet: invalid CIDR prefix")
)
