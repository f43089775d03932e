package notify

import (
	"context"
	"fmt"
	"io"

	"SimplyRugby/internal/club/app/port"
	"SimplyRugby/modules/kit/logx"

	"go.uber.org/zap"
)

// AlertNotifier 是提醒通道的控制台实现：给用户看的一行提示写到 out，同时记一条结构化日志。
type AlertNotifier struct {
	out io.Writer
	log logx.Logger
}

func NewAlertNotifier(out io.Writer, log logx.Logger) *AlertNotifier {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logx.Nop()
	}
	return &AlertNotifier{out: out, log: log}
}

func (n *AlertNotifier) Notify(ctx context.Context, notice port.Notice) {
	line := notice.Title
	if notice.Err != nil {
		line = fmt.Sprintf("%s: %v", notice.Title, notice.Err)
	}
	_, _ = fmt.Fprintln(n.out, severityTag(notice.Severity)+" "+line)

	fields := []zap.Field{
		zap.String("log_type", "notice"),
		zap.String("kind", string(notice.Kind)),
	}
	if notice.Path != "" {
		fields = append(fields, zap.String("path", notice.Path))
	}

	switch notice.Severity {
	case port.SeverityError:
		logx.ReportSysErrorWithLoggerContext(ctx, n.log, logx.NewSysLog(notice.Title, notice.Err), fields...)
	default:
		if notice.Err != nil {
			fields = append(fields, zap.Error(notice.Err))
		}
		n.log.WithContext(ctx).Warn(notice.Title, fields...)
	}
}

func severityTag(s port.Severity) string {
	if s == port.SeverityError {
		return "[error]"
	}
	return "[warning]"
}
