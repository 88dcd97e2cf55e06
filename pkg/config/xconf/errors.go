package xconf

import "errors"

// 错误按加载阶段划分：路径、格式、读取、解析、反序列化。
var (
	ErrEmptyPath         = errors.New("xconf: config path is empty")
	ErrUnsupportedFormat = errors.New("xconf: config format not supported")
	ErrLoadFailed        = errors.New("xconf: cannot read config file")
	ErrParseFailed       = errors.New("xconf: malformed config")
	ErrUnmarshalFailed   = errors.New("xconf: config does not match target")
)
