package xwol

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"slices"

	"github.com/omeyang/xwol/pkg/observability/xlog"
	"github.com/omeyang/xwol/pkg/util/xnet"
)

// DefaultPorts 返回默认候选端口：9（discard，WOL 惯用）、7（echo）、0。
func DefaultPorts() []int {
	return []int{9, 7, 0}
}

// Sender 发送魔术包。
type Sender interface {
	// Send 向 dst 发送 packet。只有 socket 级错误会返回 error，
	// 单个端口的发送结果记录在 Report 中。
	Send(ctx context.Context, packet MagicPacket, dst netip.Addr) (Report, error)
}

// Attempt 是对单个端口的一次发送结果。
type Attempt struct {
	Port int
	Err  error
}

// Report 汇总一次 Send 的各端口结果，顺序与发送顺序一致。
type Report struct {
	Target   netip.Addr
	Attempts []Attempt
}

// Delivered 返回发送成功的端口数。
func (r Report) Delivered() int {
	n := 0
	for _, a := range r.Attempts {
		if a.Err == nil {
			n++
		}
	}
	return n
}

// Err 合并所有端口的发送错误，全部成功时返回 nil。
func (r Report) Err() error {
	var errs []error
	for _, a := range r.Attempts {
		if a.Err != nil {
			errs = append(errs, fmt.Errorf("port %d: %w", a.Port, a.Err))
		}
	}
	return errors.Join(errs...)
}

// listenFunc 打开本地 UDP socket。
type listenFunc func(ctx context.Context, network, address string) (net.PacketConn, error)

// Transmitter 是基于 UDP 广播的 [Sender] 实现。
// 每次 Send 独占一个 socket，返回前关闭，可并发使用。
type Transmitter struct {
	ports  []int
	logger xlog.Logger
	listen listenFunc
}

var _ Sender = (*Transmitter)(nil)

// Option 配置 Transmitter。
type Option func(*Transmitter)

// WithPorts 设置候选目标端口，按给定顺序发送。
func WithPorts(ports ...int) Option {
	return func(t *Transmitter) {
		t.ports = slices.Clone(ports)
	}
}

// WithLogger 设置日志记录器，nil 被忽略。
func WithLogger(l xlog.Logger) Option {
	return func(t *Transmitter) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTransmitter 创建 Transmitter。
// 端口列表为空或包含 0~65535 以外的值时返回 [ErrInvalidPort]。
func NewTransmitter(opts ...Option) (*Transmitter, error) {
	t := &Transmitter{
		ports:  DefaultPorts(),
		logger: xlog.Discard(),
		listen: listenBroadcast,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}

	if len(t.ports) == 0 {
		return nil, fmt.Errorf("%w: no ports", ErrInvalidPort)
	}
	for _, p := range t.ports {
		if p < 0 || p > 65535 {
			return nil, fmt.Errorf("%w: %d out of range 0~65535", ErrInvalidPort, p)
		}
	}
	return t, nil
}

// Ports 返回候选端口副本。
func (t *Transmitter) Ports() []int {
	return slices.Clone(t.ports)
}

// Send 打开广播 socket，依次向每个候选端口发送 packet。
func (t *Transmitter) Send(ctx context.Context, packet MagicPacket, dst netip.Addr) (Report, error) {
	var network, laddr string
	switch xnet.AddrVersion(dst) {
	case xnet.V4:
		network, laddr = "udp4", "0.0.0.0:0"
	case xnet.V6:
		network, laddr = "udp6", "[::]:0"
	default:
		return Report{}, fmt.Errorf("%w: invalid destination address", ErrSocket)
	}

	conn, err := t.listen(ctx, network, laddr)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrSocket, err)
	}
	defer conn.Close()

	report := Report{Target: dst, Attempts: make([]Attempt, 0, len(t.ports))}
	payload := packet.Bytes()
	for _, port := range t.ports {
		err := writeAll(conn, payload, netip.AddrPortFrom(dst, uint16(port)))
		report.Attempts = append(report.Attempts, Attempt{Port: port, Err: err})
		if err != nil {
			t.logger.Warn(ctx, "wol packet send failed", xlog.Target(dst), xlog.Port(port), xlog.Err(err))
			continue
		}
		t.logger.Info(ctx, "wol packet sent", xlog.Target(dst), xlog.Port(port))
	}
	return report, nil
}

func writeAll(conn net.PacketConn, payload []byte, to netip.AddrPort) error {
	n, err := conn.WriteTo(payload, net.UDPAddrFromAddrPort(to))
	if err != nil {
		return err
	}
	if n != len(payload) {
		return io.ErrShortWrite
	}
	return nil
}

func listenBroadcast(ctx context.Context, network, address string) (net.PacketConn, error) {
	lc := net.ListenConfig{Control: enableBroadcast}
	return lc.ListenPacket(ctx, network, address)
}
