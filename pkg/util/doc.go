// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xmac: MAC 地址解析与格式化
//   - xnet: CIDR 解析与广播地址计算，基于 net/netip + go4.org/netipx
package util
