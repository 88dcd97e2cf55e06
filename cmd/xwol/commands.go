package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xwol/pkg/net/xwol"
	"github.com/omeyang/xwol/pkg/observability/xlog"
)

// 退出码。
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// senderFactory 按配置创建发送器。
type senderFactory func(ports []int, logger xlog.Logger) (xwol.Sender, error)

func newTransmitter(ports []int, logger xlog.Logger) (xwol.Sender, error) {
	return xwol.NewTransmitter(xwol.WithPorts(ports...), xwol.WithLogger(logger))
}

// app 持有一次运行的输出目标和依赖。
type app struct {
	stdout    io.Writer
	stderr    io.Writer
	newSender senderFactory

	program string
}

// exitCodeError 表示输出已完成，只需设置退出码。
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数或配置错误，对应退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// run 执行命令行并返回退出码。args[0] 为程序名。
func (a *app) run(ctx context.Context, args []string) int {
	if len(args) > 0 {
		a.program = args[0]
	} else {
		a.program = "xwol"
	}

	err := a.command().Run(ctx, args)
	if err == nil {
		return exitOK
	}

	var codeErr *exitCodeError
	if errors.As(err, &codeErr) {
		return codeErr.code
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(a.stderr, "参数错误: %v\n", uerr)
		return exitUsage
	}
	fmt.Fprintf(a.stdout, "Error: %v\n", err)
	return exitError
}

// command 创建根命令。
func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "xwol",
		Usage:     "发送 Wake-on-LAN 魔术包",
		ArgsUsage: "<MAC_ADDRESS> <SUBNET_CIDR>",
		Version:   versionString(),
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "YAML/JSON 配置文件",
			},
			&cli.StringSliceFlag{
				Name:    flagPort,
				Aliases: []string{"p"},
				Usage:   "目标端口，可重复或逗号分隔 (默认: 9,7,0)",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  flagLogFormat,
				Usage: "日志格式 (text/json)",
			},
			&cli.StringFlag{
				Name:  flagLogFile,
				Usage: "日志轮转文件路径",
			},
		},
		HideHelpCommand: true,
		Action:          a.wake,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{err: err}
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run 统一映射退出码。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// wake 是根命令的 Action。
func (a *app) wake(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()

	switch len(args) {
	case 0:
		return a.valueError(xwol.NewValidationError(xwol.ProblemMAC, xwol.ProblemSubnet))
	case 1:
		return a.valueError(xwol.Diagnose(args[0]))
	case 2:
	default:
		a.printUsage()
		return &exitCodeError{code: exitUsage}
	}

	target, err := xwol.Validate(args[0], args[1])
	if err != nil {
		var verr *xwol.ValidationError
		if errors.As(err, &verr) {
			return a.valueError(verr)
		}
		return &usageError{err: err}
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return &usageError{err: err}
	}

	logger, cleanup, err := buildLogger(s.Log, a.stderr)
	if err != nil {
		return &usageError{err: err}
	}
	defer func() { _ = cleanup() }()
	log := logger.With(xlog.Component("xwol"))

	sender, err := a.newSender(s.Ports, log)
	if err != nil {
		return &usageError{err: err}
	}

	if !target.MAC.IsValid() {
		log.Warn(ctx, "target MAC is all zeros", xlog.Target(target.Broadcast))
	}
	log.Debug(ctx, "waking target", xlog.Target(target.Broadcast), slog.String("mac", target.MAC.String()))

	report, err := sender.Send(ctx, xwol.NewMagicPacket(target.MAC), target.Broadcast)
	if err != nil {
		log.Error(ctx, "wol send aborted", xlog.Err(err))
		fmt.Fprintf(a.stdout, "Error: %v\n", err)
		return &exitCodeError{code: exitError}
	}
	if report.Delivered() == 0 {
		log.Warn(ctx, "wol packet not delivered on any port", xlog.Err(report.Err()))
	}

	fmt.Fprintln(a.stdout, "Ok")
	return nil
}

// valueError 输出 "ValueError: ..." 和用法行。
func (a *app) valueError(verr *xwol.ValidationError) error {
	fmt.Fprintf(a.stdout, "ValueError: %s\n", verr.Summary())
	a.printUsage()
	return &exitCodeError{code: exitUsage}
}

func (a *app) printUsage() {
	fmt.Fprintf(a.stdout, "Usage: %s <MAC_ADDRESS> <SUBNET_CIDR>\n", a.program)
}

// setupSignalHandler 设置信号处理。
// 第一次信号取消上下文，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
