// Package xrotate 提供日志文件轮转功能。
//
// [Rotator] 接口定义了轮转器的核心行为（Write/Close/Rotate），所有实现并发安全。
// [NewLumberjack] 基于 lumberjack v2 按大小轮转，用作 xlog 的文件输出目标。
//
//	r, err := xrotate.NewLumberjack("/var/log/xwol/xwol.log", xrotate.WithMaxSize(10))
//	if err != nil {
//		return err
//	}
//	defer r.Close()
package xrotate
