// Package xconf 提供配置文件加载和解析功能，基于 koanf 实现。
//
// xconf 定位为最小化配置加载器，只负责文件/字节数据的加载与反序列化。
// 不负责配置治理（必选字段校验、默认值注入），这些由调用方按需实现。
//
//   - 工厂函数：[New], [NewFromBytes]
//   - 一次性加载：[Load]
//   - Client() 暴露底层 koanf 实例
//   - 类型安全的 Unmarshal
//
// # 支持的格式
//
//   - YAML（推荐）：.yaml, .yml
//   - JSON：.json
//
// # Unmarshal
//
// Unmarshal 使用 mapstructure 反序列化，允许弱类型转换
// （例如字符串 "9" 可自动转为 int 9）。结构体标签固定为 "koanf"，键路径以 "." 分隔。
//
//	var s Settings
//	if err := xconf.Load("/etc/xwol.yaml", &s); err != nil {
//		return err
//	}
package xconf
