package port

import (
	"context"

	"SimplyRugby/internal/club/domain"
)

// Kind 选择要读取的数据文件，Kind 到路径的映射是固定的外部约定。
type Kind string

const (
	KindPlayers Kind = "players"
	KindSquads  Kind = "squads"
)

// Status 标记一次读取的结果形态。数据损坏不在这里，走 error 返回。
type Status uint8

const (
	StatusLoaded Status = iota
	// StatusMissing 表示文件不存在或不可读，Items 为空。
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Result 是一次 loadAll 的结果，Items 保持文件中的顺序。
type Result[T any] struct {
	Kind   Kind
	Path   string
	Status Status
	Items  []T
	// Cause 在 StatusMissing 时记录底层 I/O 错误。
	Cause error
}

type EntityStore interface {
	LoadPlayers(ctx context.Context) (Result[domain.Player], error)
	LoadSquads(ctx context.Context) (Result[domain.Squad], error)
}

// Severity 区分提醒级别：文件缺失是警告，文件损坏是错误。
type Severity uint8

const (
	SeverityWarn Severity = iota
	SeverityError
)

// Notice 是交给提醒通道的一条消息。
type Notice struct {
	Severity Severity
	Title    string
	Kind     Kind
	Path     string
	Err      error
}

// Notifier 是提醒通道（原先由界面弹窗承担）。
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}
