package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewBiz("CLUB_X", "x").WithData("uid", 7).WithCause(errors.New("cause1"))
	e2 := NewBiz("CLUB_X", "x2").WithData("uid", 9)
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true（只按 code 判断语义），e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, NewBiz("CLUB_Y", "x")) {
		t.Fatalf("期望不同 code 不相等")
	}
}

func TestError_业务错误不捕获栈_但保留cause链(t *testing.T) {
	cause := errors.New("file missing")
	err := NewBiz("CLUB_PLAYER_NOT_FOUND", "").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
}

func TestError_系统错误捕获一次栈_且不重复捕获(t *testing.T) {
	sys := ErrDataCorrupt.WithCause(errors.New("unexpected end of JSON input"))
	if got := sys.Stack(); len(got) == 0 {
		t.Fatalf("期望系统错误捕获栈，got=%v", got)
	}

	outer := ErrInternal.WithCause(sys)
	if got := outer.Stack(); got != nil {
		t.Fatalf("期望上层系统错误不重复捕获栈，got=%v", got)
	}
	if !IsSys(fmt.Errorf("wrap: %w", outer)) {
		t.Fatalf("期望 IsSys 能穿透 fmt.Errorf 包装")
	}
}

func TestError_WithData_不污染哨兵(t *testing.T) {
	err := ErrDataCorrupt.WithData("path", "data/players.json")
	if ErrDataCorrupt.Data() != nil {
		t.Fatalf("期望哨兵错误 data 保持为空")
	}
	if got := err.Data()["path"]; got != "data/players.json" {
		t.Fatalf("期望 path 被记录, got=%v", got)
	}

	m := map[string]any{"k": "v"}
	err2 := NewBiz("CLUB_X", "").WithDataMap(m)
	m["k"] = "mutated"
	if got := err2.Data()["k"]; got != "v" {
		t.Fatalf("期望构造时复制 data；got=%v", got)
	}
}

func TestError_Error_格式(t *testing.T) {
	if got := NewBiz("CLUB_X", "").Error(); got != "CLUB_X" {
		t.Fatalf("got=%q", got)
	}
	if got := NewBiz("CLUB_X", "缺失").WithCause(errors.New("eof")).Error(); got != "CLUB_X: 缺失: eof" {
		t.Fatalf("got=%q", got)
	}
	if IsSys(NewBiz("CLUB_X", "")) {
		t.Fatalf("业务错误不应被识别为系统错误")
	}
}

type testReason string

func (r testReason) ReasonCode() string { return string(r) }

func TestError_WithReason_写入data且不改变语义(t *testing.T) {
	base := NewBiz("CLUB_X", "x")
	e := base.WithReason(testReason("NO_DATA"))
	if e.Reason() != "NO_DATA" {
		t.Fatalf("reason=%q", e.Reason())
	}
	if !errors.Is(e, base) {
		t.Fatalf("带 reason 后仍应与哨兵同义")
	}
	if base.Reason() != "" {
		t.Fatalf("哨兵被污染: %q", base.Reason())
	}
	if got := base.WithReason(nil).Reason(); got != "" {
		t.Fatalf("nil reason 应为空串, got=%q", got)
	}
}
