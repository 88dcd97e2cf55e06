package xrotate

import "errors"

// NewLumberjack 的参数校验错误，以及关闭后继续使用的错误。
var (
	ErrEmptyFilename     = errors.New("xrotate: log file name is empty")
	ErrInvalidMaxSize    = errors.New("xrotate: max size out of range 1~10240 MB")
	ErrInvalidMaxBackups = errors.New("xrotate: max backups out of range 0~1024")
	ErrInvalidMaxAge     = errors.New("xrotate: max age out of range 0~3650 days")
	ErrClosed            = errors.New("xrotate: rotator already closed")
)
