// xwol 向局域网内的主机发送 Wake-on-LAN 魔术包。
//
// 用法:
//
//	xwol [选项] <MAC_ADDRESS> <SUBNET_CIDR>
//
// 选项:
//
//	-c, --config      YAML/JSON 配置文件（.yaml/.yml/.json）
//	-p, --port        目标端口，可重复或逗号分隔 (默认: 9,7,0)
//	    --log-level   日志级别 debug/info/warn/error (默认: info)
//	    --log-format  日志格式 text/json (默认: text)
//	    --log-file    日志写入轮转文件而不是 stderr
//
// 参数:
//
//	MAC_ADDRESS  aa:bb:cc:dd:ee:ff、aa-bb-cc-dd-ee-ff 或 aabbccddeeff，不区分大小写
//	SUBNET_CIDR  IPv4 CIDR，如 192.168.1.0/24；魔术包发往该子网的广播地址
//
// 输出（stdout）:
//
//	Ok                         发送完成（单个端口失败只记录日志）
//	Error: <原因>              socket 创建或广播设置失败
//	ValueError: <问题>         参数无效，问题按 MAC、SubNet、IPv6 Not Supported 顺序以 " and " 连接
//	Usage: <程序> <MAC_ADDRESS> <SUBNET_CIDR>
//
// 退出码:
//
//	0: 发送成功
//	1: socket 错误
//	2: 参数错误（参数个数不对、MAC/子网无效、配置文件无效、未知 flag 等）
//
// 示例:
//
//	xwol AA:BB:CC:DD:EE:FF 192.168.1.0/24
//	xwol -p 9 aabbccddeeff 10.0.0.0/8
//	xwol -c /etc/xwol.yaml --log-format json AA-BB-CC-DD-EE-FF 172.16.0.0/12
package main

import (
	"context"
	"fmt"
	"os"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	a := &app{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		newSender: newTransmitter,
	}
	return a.run(ctx, os.Args)
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}
