package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"ipv4_network", "192.168.1.0/24", "192.168.1.0/24", false},
		{"ipv4_host_bits_masked", "192.168.1.10/24", "192.168.1.0/24", false},
		{"ipv4_with_space", "  10.0.0.5/30 ", "10.0.0.4/30", false},
		{"ipv4_host", "10.1.2.3/32", "10.1.2.3/32", false},
		{"ipv6", "2001:db8::1/64", "2001:db8::/64", false},

		{"empty", "", "", true},
		{"not_cidr", "not-a-subnet", "", true},
		{"bare_ip", "192.168.1.1", "", true},
		{"bad_bits", "192.168.1.0/33", "", true},
		{"mask_notation", "192.168.1.0/255.255.255.0", "", true},
		{"zone", "fe80::1%eth0/64", "", true},
		{"range", "10.0.0.1-10.0.0.9", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrefix(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPrefix)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, netip.MustParsePrefix(tt.want), got)
		})
	}
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"192.168.1.10/24", "192.168.1.255"},
		{"192.168.1.0/24", "192.168.1.255"},
		{"10.0.0.5/30", "10.0.0.7"},
		{"10.0.0.0/8", "10.255.255.255"},
		{"172.16.5.4/12", "172.31.255.255"},
		{"0.0.0.0/0", "255.255.255.255"},
		{"10.0.0.4/31", "10.0.0.5"},
		{"10.0.0.4/32", "10.0.0.4"},
		{"2001:db8::/64", "2001:db8::ffff:ffff:ffff:ffff"},
		{"fd00::1/120", "fd00::ff"},
		{"::ffff:192.168.1.0/120", "::ffff:192.168.1.255"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Broadcast(tt.input)
			require.NoError(t, err)
			assert.Equal(t, netip.MustParseAddr(tt.want), got)
		})
	}
}

func TestBroadcast_Invalid(t *testing.T) {
	for _, in := range []string{"not-a-subnet", "", "300.1.1.1/24", "192.168.1.0/"} {
		_, err := Broadcast(in)
		assert.ErrorIs(t, err, ErrInvalidPrefix, "input %q", in)
	}
}

func TestBroadcast_IPv6Family(t *testing.T) {
	got, err := Broadcast("::ffff:192.168.1.0/120")
	require.NoError(t, err)
	assert.False(t, got.Is4(), "IPv4-mapped prefixes keep the IPv6 family")
	assert.True(t, got.Is4In6())
}

func TestBroadcastOf_Invalid(t *testing.T) {
	assert.Equal(t, netip.Addr{}, BroadcastOf(netip.Prefix{}))
}
