// Package xmac 提供 MAC 地址处理工具。
//
// xmac 面向 Wake-on-LAN 等需要原始 6 字节硬件地址的场景：
//
//   - 解析分隔格式（冒号、短线，可混用）与无分隔格式（12 个十六进制字符）
//   - 多格式输出（FormatColon, FormatDash, FormatBare 及对应 Upper 变体）
//   - 值类型 [Addr]，可直接比较、用作 map key
//
// # 快速示例
//
//	addr, err := xmac.Parse("AA:BB:CC:DD:EE:FF")
//	fmt.Println(addr.String())                      // aa:bb:cc:dd:ee:ff
//	fmt.Println(addr.FormatString(xmac.FormatBare)) // aabbccddeeff
//
// # 解析规则
//
// 分隔格式按字符类切分：':' 和 '-' 都视为分隔符，同一字符串内可以混用
// （"aa:bb-cc:dd-ee:ff" 合法）。必须恰好 6 段，每段 1~2 位十六进制数字。
//
// 无分隔格式必须恰好 12 个十六进制字符，按两两一组解析为 6 字节。
//
// 其他形态（Cisco 点分格式、EUI-64、长度不符、非十六进制字符）一律返回
// [ErrInvalidFormat]。十六进制大小写不敏感。
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组而非 []byte 切片：值语义、可比较、栈分配
//   - 仅支持 EUI-48 (6字节)，不支持 EUI-64 (8字节)
//   - 全零地址 "00:00:00:00:00:00" 可以正常解析，[Addr.IsValid] 返回 false
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	addr, err := xmac.Parse("invalid")
//	if errors.Is(err, xmac.ErrInvalidFormat) {
//	    // 格式错误
//	}
package xmac
