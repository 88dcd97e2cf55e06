package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/omeyang/xwol/pkg/net/xwol"
	"github.com/omeyang/xwol/pkg/observability/xlog"
	"github.com/omeyang/xwol/pkg/util/xmac"
)

const usageLine = "Usage: xwol <MAC_ADDRESS> <SUBNET_CIDR>\n"

// testApp 捕获输出以及传给 senderFactory 的端口。
type testApp struct {
	*app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	ports  []int
	built  int
}

func newTestApp(t *testing.T, sender xwol.Sender) *testApp {
	t.Helper()
	ta := &testApp{stdout: new(bytes.Buffer), stderr: new(bytes.Buffer)}
	ta.app = &app{
		stdout: ta.stdout,
		stderr: ta.stderr,
		newSender: func(ports []int, _ xlog.Logger) (xwol.Sender, error) {
			ta.ports = ports
			ta.built++
			if sender == nil {
				t.Fatal("sender must not be created")
			}
			return sender, nil
		},
	}
	return ta
}

func (ta *testApp) run(args ...string) int {
	return ta.app.run(context.Background(), append([]string{"xwol"}, args...))
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := NewMockSender(ctrl)

	mac := xmac.MustParse("AA:BB:CC:DD:EE:FF")
	dst := netip.MustParseAddr("192.168.1.255")
	sender.EXPECT().
		Send(gomock.Any(), xwol.NewMagicPacket(mac), dst).
		Return(xwol.Report{Target: dst, Attempts: []xwol.Attempt{{Port: 9}, {Port: 7}, {Port: 0}}}, nil)

	ta := newTestApp(t, sender)
	code := ta.run("AA:BB:CC:DD:EE:FF", "192.168.1.0/24")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Ok\n", ta.stdout.String())
	assert.Equal(t, []int{9, 7, 0}, ta.ports)
	assert.Equal(t, 1, ta.built)
}

func TestRun_SuccessWithPortFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := NewMockSender(ctrl)

	dst := netip.MustParseAddr("10.255.255.255")
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), dst).
		Return(xwol.Report{Target: dst, Attempts: []xwol.Attempt{{Port: 9, Err: errors.New("unreachable")}}}, nil)

	ta := newTestApp(t, sender)
	code := ta.run("aabbccddeeff", "10.1.2.3/8")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Ok\n", ta.stdout.String())
	assert.Contains(t, ta.stderr.String(), "wol packet not delivered on any port")
}

func TestRun_ZeroMACWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := NewMockSender(ctrl)
	sender.EXPECT().
		Send(gomock.Any(), xwol.NewMagicPacket(xmac.Addr{}), netip.MustParseAddr("192.168.1.255")).
		Return(xwol.Report{Attempts: []xwol.Attempt{{Port: 9}}}, nil)

	ta := newTestApp(t, sender)
	code := ta.run("00:00:00:00:00:00", "192.168.1.0/24")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Ok\n", ta.stdout.String())
	assert.Contains(t, ta.stderr.String(), "target MAC is all zeros")
}

func TestRun_SocketError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := NewMockSender(ctrl)

	sockErr := fmt.Errorf("%w: permission denied", xwol.ErrSocket)
	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(xwol.Report{}, sockErr)

	ta := newTestApp(t, sender)
	code := ta.run("AA:BB:CC:DD:EE:FF", "192.168.1.0/24")

	assert.Equal(t, exitError, code)
	assert.Equal(t, "Error: xwol: socket error: permission denied\n", ta.stdout.String())
}

func TestRun_Arity(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no_args", nil, "ValueError: MAC and SubNet\n" + usageLine},
		{"only_mac", []string{"AA:BB:CC:DD:EE:FF"}, "ValueError: SubNet\n" + usageLine},
		{"only_subnet", []string{"192.168.1.0/24"}, "ValueError: MAC\n" + usageLine},
		{"one_garbage", []string{"garbage"}, "ValueError: MAC and SubNet\n" + usageLine},
		{"too_many", []string{"AA:BB:CC:DD:EE:FF", "192.168.1.0/24", "extra"}, usageLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, nil)
			code := ta.run(tt.args...)

			assert.Equal(t, exitUsage, code)
			assert.Equal(t, tt.want, ta.stdout.String())
			assert.Zero(t, ta.built)
		})
	}
}

func TestRun_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mac    string
		subnet string
		want   string
	}{
		{"bad_mac", "bad-mac", "192.168.1.0/24", "ValueError: MAC\n"},
		{"bad_subnet", "AA:BB:CC:DD:EE:FF", "bad-subnet", "ValueError: SubNet\n"},
		{"both_bad", "bad-mac", "bad-subnet", "ValueError: MAC and SubNet\n"},
		{"ipv6", "AA:BB:CC:DD:EE:FF", "2001:db8::/64", "ValueError: IPv6 Not Supported\n"},
		{"bad_mac_ipv6", "AA:BB:CC:DD:EE", "fd00::/8", "ValueError: MAC and IPv6 Not Supported\n"},
		{"bare_ip", "AA:BB:CC:DD:EE:FF", "192.168.1.1", "ValueError: SubNet\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, nil)
			code := ta.run(tt.mac, tt.subnet)

			assert.Equal(t, exitUsage, code)
			assert.Equal(t, tt.want+usageLine, ta.stdout.String())
		})
	}
}

func TestRun_UsageLineUsesProgramName(t *testing.T) {
	ta := newTestApp(t, nil)
	code := ta.app.run(context.Background(), []string{"/usr/local/bin/wake"})

	assert.Equal(t, exitUsage, code)
	assert.Equal(t, "ValueError: MAC and SubNet\nUsage: /usr/local/bin/wake <MAC_ADDRESS> <SUBNET_CIDR>\n", ta.stdout.String())
}

func TestRun_UnknownFlag(t *testing.T) {
	ta := newTestApp(t, nil)
	code := ta.run("--no-such-flag", "AA:BB:CC:DD:EE:FF", "192.168.1.0/24")
	assert.Equal(t, exitUsage, code)
}

func TestRun_InvalidPortFlag(t *testing.T) {
	ta := newTestApp(t, nil)
	code := ta.run("-p", "nine", "AA:BB:CC:DD:EE:FF", "192.168.1.0/24")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, ta.stderr.String(), "invalid port")
	assert.Empty(t, ta.stdout.String())
}

func TestRun_PortOutOfRange(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	a := &app{stdout: stdout, stderr: stderr, newSender: newTransmitter}

	code := a.run(context.Background(), []string{"xwol", "-p", "70000", "AA:BB:CC:DD:EE:FF", "192.168.1.0/24"})

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "70000")
	assert.Empty(t, stdout.String())
}

func TestRun_Help(t *testing.T) {
	ta := newTestApp(t, nil)
	code := ta.run("--help")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, ta.stdout.String(), "--port")
}

func TestNewTransmitter(t *testing.T) {
	s, err := newTransmitter([]int{9}, xlog.Discard())
	require.NoError(t, err)
	tx, ok := s.(*xwol.Transmitter)
	require.True(t, ok)
	assert.Equal(t, []int{9}, tx.Ports())

	_, err = newTransmitter(nil, xlog.Discard())
	assert.ErrorIs(t, err, xwol.ErrInvalidPort)
}
