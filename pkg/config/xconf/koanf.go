package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// 键路径分隔符与结构体标签名。
const (
	delim = "."
	tag   = "koanf"
)

// koanfConfig 是 Config 接口的 koanf 实现，加载后只读。
type koanfConfig struct {
	k      *koanf.Koanf
	path   string
	format Format
}

// Load 读取配置文件并整体反序列化到 target。
// 文件中未出现的字段保持 target 原值。
func Load(path string, target any) error {
	cfg, err := New(path)
	if err != nil {
		return err
	}
	return cfg.Unmarshal("", target)
}

// New 从文件路径创建配置实例，格式由扩展名决定（.yaml/.yml 或 .json）。
func New(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, err)
	}

	cfg, err := parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// NewFromBytes 从字节数据创建配置实例。
// 空数据得到空配置，Unmarshal 不修改目标。
func NewFromBytes(data []byte, format Format) (Config, error) {
	return parse(data, format)
}

func parse(data []byte, format Format) (*koanfConfig, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	return &koanfConfig{k: k, format: format}, nil
}

func (c *koanfConfig) Client() *koanf.Koanf { return c.k }

func (c *koanfConfig) Unmarshal(path string, target any) error {
	err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: tag})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

func (c *koanfConfig) Path() string { return c.path }

func (c *koanfConfig) Format() Format { return c.format }

// detectFormat 根据扩展名判断格式，大小写不敏感。
func detectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
