// Package xwol 实现 Wake-on-LAN 唤醒：校验参数、构造魔术包并通过 UDP 广播发送。
//
// 处理流程是单向的数据流：
//
//	target, err := xwol.Validate("AA:BB:CC:DD:EE:FF", "192.168.1.0/24")
//	if err != nil {
//		var verr *xwol.ValidationError
//		if errors.As(err, &verr) {
//			fmt.Println("ValueError:", verr.Summary()) // ValueError: MAC and SubNet
//		}
//		return
//	}
//	tx, _ := xwol.NewTransmitter(xwol.WithLogger(logger))
//	report, err := tx.Send(ctx, xwol.NewMagicPacket(target.MAC), target.Broadcast)
//
// # 校验
//
// [Validate] 同时校验 MAC 与子网，错误累积而非短路，调用方一次就能看到所有问题。
// 问题集合 [ValidationError] 的输出顺序固定为 "MAC"、"SubNet"、"IPv6 Not Supported"。
//
// 地址族策略为仅 IPv4：子网解析成功但广播地址是 IPv6 时记录 [ProblemIPv6]，
// 该子网不被接受。IPv6 没有广播概念，按主机位全 1 计算出的地址并不可达。
//
// 只有一个命令行参数时，[Diagnose] 用同一个参数分别尝试两种解析器，
// 给出"MAC 正确但缺少子网"之类的具体提示。
//
// # 魔术包
//
// [MagicPacket] 固定 102 字节：6 个 0xFF 同步流，随后 16 次重复目标 MAC。
//
// # 发送
//
// [Transmitter] 为每次发送打开一个 UDP socket（目标地址族的通配地址、临时端口），
// 启用 SO_BROADCAST 后依次向候选端口发送，默认 9、7、0。
// 单个端口发送失败只记录日志并写入 [Report]，不中断后续端口；
// 只有 socket 创建或广播启用失败才作为 [ErrSocket] 返回。
// 不等待任何应答，也不重试。
package xwol
