package xnet_test

import (
	"fmt"

	"github.com/omeyang/xwol/pkg/util/xnet"
)

func ExampleBroadcast() {
	for _, s := range []string{"192.168.1.10/24", "10.0.0.5/30", "not-a-subnet"} {
		b, err := xnet.Broadcast(s)
		if err != nil {
			fmt.Printf("%s: invalid\n", s)
			continue
		}
		fmt.Printf("%s: %s\n", s, b)
	}

	// Output:
	// 192.168.1.10/24: 192.168.1.255
	// 10.0.0.5/30: 10.0.0.7
	// not-a-subnet: invalid
}
