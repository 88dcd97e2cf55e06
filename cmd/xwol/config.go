package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xwol/pkg/config/xconf"
	"github.com/omeyang/xwol/pkg/net/xwol"
	"github.com/omeyang/xwol/pkg/observability/xlog"
	"github.com/omeyang/xwol/pkg/observability/xrotate"
)

// flag 名称。
const (
	flagConfig    = "config"
	flagPort      = "port"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
)

// settings 是运行配置。
// 优先级：命令行 flag > 配置文件 > 默认值。
type settings struct {
	Ports []int       `koanf:"ports"`
	Log   logSettings `koanf:"log"`
}

// logSettings 是日志配置。轮转字段只在 file 非空时生效，
// nil 表示使用 xrotate 的默认值。
type logSettings struct {
	Level     string `koanf:"level"`
	Format    string `koanf:"format"`
	File      string `koanf:"file"`
	AddSource bool   `koanf:"add_source"`

	MaxSizeMB  *int  `koanf:"max_size_mb"`
	MaxBackups *int  `koanf:"max_backups"`
	MaxAgeDays *int  `koanf:"max_age_days"`
	Compress   *bool `koanf:"compress"`
	LocalTime  *bool `koanf:"local_time"`
}

func defaultSettings() settings {
	return settings{
		Ports: xwol.DefaultPorts(),
		Log: logSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// loadSettings 合并默认值、配置文件和命令行 flag。
func loadSettings(cmd *cli.Command) (settings, error) {
	s := defaultSettings()

	if path := cmd.String(flagConfig); path != "" {
		file, err := readSettingsFile(path)
		if err != nil {
			return settings{}, err
		}
		s.merge(file)
	}

	if cmd.IsSet(flagPort) {
		ports, err := parsePorts(cmd.StringSlice(flagPort))
		if err != nil {
			return settings{}, err
		}
		s.Ports = ports
	}
	if cmd.IsSet(flagLogLevel) {
		s.Log.Level = cmd.String(flagLogLevel)
	}
	if cmd.IsSet(flagLogFormat) {
		s.Log.Format = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagLogFile) {
		s.Log.File = cmd.String(flagLogFile)
	}
	return s, nil
}

// readSettingsFile 读取配置文件，未出现的字段保持零值。
func readSettingsFile(path string) (settings, error) {
	var file settings
	if err := xconf.Load(path, &file); err != nil {
		return settings{}, err
	}
	return file, nil
}

// merge 用 other 中的非零字段覆盖 s。
func (s *settings) merge(other settings) {
	if len(other.Ports) > 0 {
		s.Ports = other.Ports
	}
	if other.Log.Level != "" {
		s.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		s.Log.Format = other.Log.Format
	}
	if other.Log.File != "" {
		s.Log.File = other.Log.File
	}
	if other.Log.AddSource {
		s.Log.AddSource = true
	}
	mergePtr(&s.Log.MaxSizeMB, other.Log.MaxSizeMB)
	mergePtr(&s.Log.MaxBackups, other.Log.MaxBackups)
	mergePtr(&s.Log.MaxAgeDays, other.Log.MaxAgeDays)
	mergePtr(&s.Log.Compress, other.Log.Compress)
	mergePtr(&s.Log.LocalTime, other.Log.LocalTime)
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// parsePorts 解析端口列表，元素可含逗号分隔的多个端口。
func parsePorts(values []string) ([]int, error) {
	var ports []int
	for _, v := range values {
		for field := range strings.SplitSeq(v, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			p, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", xwol.ErrInvalidPort, field)
			}
			ports = append(ports, p)
		}
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("%w: no ports", xwol.ErrInvalidPort)
	}
	return ports, nil
}

// buildLogger 按配置构建日志器，默认写 stderr，设置 file 时写轮转文件。
func buildLogger(s logSettings, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(s.Level).
		SetFormat(s.Format).
		SetAddSource(s.AddSource)
	if s.File != "" {
		b.SetRotation(s.File, s.rotateOptions()...)
	}
	return b.Build()
}

// rotateOptions 把已设置的轮转字段转换为 xrotate 选项。
func (s logSettings) rotateOptions() []xrotate.Option {
	var opts []xrotate.Option
	if s.MaxSizeMB != nil {
		opts = append(opts, xrotate.WithMaxSize(*s.MaxSizeMB))
	}
	if s.MaxBackups != nil {
		opts = append(opts, xrotate.WithMaxBackups(*s.MaxBackups))
	}
	if s.MaxAgeDays != nil {
		opts = append(opts, xrotate.WithMaxAge(*s.MaxAgeDays))
	}
	if s.Compress != nil {
		opts = append(opts, xrotate.WithCompress(*s.Compress))
	}
	if s.LocalTime != nil {
		opts = append(opts, xrotate.WithLocalTime(*s.LocalTime))
	}
	return opts
}
