// Package xnet 提供子网与广播地址工具。
//
// xnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建：
//
//   - [ParsePrefix]: 解析 CIDR 字符串为已掩码的 [netip.Prefix]
//   - [Broadcast]: 计算子网的广播地址（主机位全 1）
//   - [AddrVersion]: 判断地址族（[V4]、[V6]、[Invalid]）
//
// # 快速示例
//
//	b, _ := xnet.Broadcast("192.168.1.10/24")
//	fmt.Println(b) // 192.168.1.255
//
//	b, _ = xnet.Broadcast("10.0.0.5/30")
//	fmt.Println(b) // 10.0.0.7
//
// # 输入行为说明
//
//   - CIDR 中的地址不要求主机位为 0（"192.168.1.10/24" 合法），计算前先 Masked()
//   - 输入会自动去除首尾空白
//   - 拒绝包含 IPv6 zone ID 的输入（如 "fe80::1%eth0/64"）
//   - 不接受单 IP、掩码格式（"192.168.1.0/255.255.255.0"）或范围格式
//
// # IPv6
//
// IPv6 没有广播概念。[Broadcast] 对 IPv6 前缀按同样的算术返回主机位全 1 的地址
// （如 "2001:db8::/64" → "2001:db8::ffff:ffff:ffff:ffff"），是否接受该地址由调用方决定。
// IPv4-mapped IPv6 前缀（"::ffff:192.168.1.0/120"）保持 IPv6 形态，不做归一化。
//
// # 错误处理
//
// 解析失败返回包装了 [ErrInvalidPrefix] 的错误，支持 errors.Is 判断。
package xnet
