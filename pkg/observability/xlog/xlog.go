package xlog

import (
	"context"
	"log/slog"
)

// Logger 是只接受 slog.Attr 的结构化日志接口，每次调用都带 ctx。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回附加了 attrs 的 Logger，与原 Logger 共享级别。
	With(attrs ...slog.Attr) Logger
}

// Leveler 读写当前级别。
type Leveler interface {
	SetLevel(level Level)
	GetLevel() Level
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 是 [Builder.Build] 的返回类型。
type LoggerWithLevel interface {
	Logger
	Leveler
}
