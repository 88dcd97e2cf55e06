package xwol

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/omeyang/xwol/pkg/util/xmac"
	"github.com/omeyang/xwol/pkg/util/xnet"
)

// Problem 是单个校验问题，多个问题按位组合。
type Problem uint8

const (
	// ProblemMAC MAC 地址缺失或无效。
	ProblemMAC Problem = 1 << iota
	// ProblemSubnet 子网缺失或无效。
	ProblemSubnet
	// ProblemIPv6 子网合法但属于 IPv6。
	ProblemIPv6
)

// problemTable 决定对外输出顺序。
var problemTable = [...]struct {
	problem Problem
	label   string
	err     error
}{
	{ProblemMAC, "MAC", ErrInvalidMAC},
	{ProblemSubnet, "SubNet", ErrInvalidSubnet},
	{ProblemIPv6, "IPv6 Not Supported", ErrIPv6Unsupported},
}

// ValidationError 是累积的校验问题集合。
//
// errors.Is 可匹配 [ErrInvalidMAC]、[ErrInvalidSubnet]、[ErrIPv6Unsupported]，
// 以及底层解析器返回的错误（如 xmac.ErrInvalidFormat）。
type ValidationError struct {
	problems Problem
	causes   []error
}

// NewValidationError 用给定问题构造集合，主要供命令行边界使用。
func NewValidationError(problems ...Problem) *ValidationError {
	e := &ValidationError{}
	for _, p := range problems {
		e.add(p, nil)
	}
	return e
}

func (e *ValidationError) add(p Problem, cause error) {
	e.problems |= p
	if cause != nil {
		e.causes = append(e.causes, cause)
	}
}

// Has 报告集合中是否包含 p。
func (e *ValidationError) Has(p Problem) bool {
	return e.problems&p != 0
}

// Empty 报告集合是否为空。
func (e *ValidationError) Empty() bool {
	return e.problems == 0
}

// Parts 按固定顺序返回问题标签："MAC"、"SubNet"、"IPv6 Not Supported"。
func (e *ValidationError) Parts() []string {
	parts := make([]string, 0, len(problemTable))
	for _, row := range problemTable {
		if e.Has(row.problem) {
			parts = append(parts, row.label)
		}
	}
	return parts
}

// Summary 返回以 " and " 连接的问题标签，如 "MAC and SubNet"。
func (e *ValidationError) Summary() string {
	return strings.Join(e.Parts(), " and ")
}

// Error 实现 error 接口。
func (e *ValidationError) Error() string {
	return "xwol: validation failed: " + e.Summary()
}

// Unwrap 返回问题对应的哨兵错误和底层原因。
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(problemTable)+len(e.causes))
	for _, row := range problemTable {
		if e.Has(row.problem) {
			errs = append(errs, row.err)
		}
	}
	return append(errs, e.causes...)
}

// Target 是通过校验的唤醒目标。
type Target struct {
	MAC       xmac.Addr
	Subnet    netip.Prefix
	Broadcast netip.Addr
}

// String 返回 "mac via broadcast" 形式的描述。
func (t Target) String() string {
	return fmt.Sprintf("%s via %s", t.MAC, t.Broadcast)
}

// Validate 校验 MAC 与子网文本。
//
// 两项总是都会被检查；任一失败时返回 *ValidationError，Target 为零值。
// 子网为 IPv6 时记录 [ProblemIPv6]（而不是 [ProblemSubnet]）。
func Validate(macText, subnetText string) (Target, error) {
	verr := &ValidationError{}

	mac, err := xmac.Parse(macText)
	if err != nil {
		verr.add(ProblemMAC, err)
	}

	var broadcast netip.Addr
	prefix, err := xnet.ParsePrefix(subnetText)
	switch {
	case err != nil:
		verr.add(ProblemSubnet, err)
	default:
		broadcast = xnet.BroadcastOf(prefix)
		if xnet.AddrVersion(broadcast) != xnet.V4 {
			verr.add(ProblemIPv6, nil)
		}
	}

	if !verr.Empty() {
		return Target{}, verr
	}
	return Target{MAC: mac, Subnet: prefix, Broadcast: broadcast}, nil
}

// Diagnose 用同一个参数分别尝试 MAC 与子网解析，给出单参数调用时最具体的提示：
//
//   - 是合法 MAC、不是合法子网：缺少 SubNet
//   - 不是合法 MAC、是合法子网：缺少 MAC
//   - 其他情况：MAC and SubNet
func Diagnose(arg string) *ValidationError {
	_, macErr := xmac.Parse(arg)
	_, subnetErr := xnet.ParsePrefix(arg)

	switch {
	case macErr == nil && subnetErr != nil:
		return NewValidationError(ProblemSubnet)
	case macErr != nil && subnetErr == nil:
		return NewValidationError(ProblemMAC)
	default:
		return NewValidationError(ProblemMAC, ProblemSubnet)
	}
}
