package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"SimplyRugby/internal/club/domain"
	"SimplyRugby/modules/kit/errx"
	"SimplyRugby/modules/kit/logx"
	"SimplyRugby/modules/kit/tracex"

	ucli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type Resolver interface {
	FindPlayerByID(ctx context.Context, id int) (domain.Player, error)
	FindSkillCategory(ctx context.Context, categoryName string, playerID int) (domain.SkillCategory, error)
	SquadExists(ctx context.Context, name string) bool
}

// Club 把查询层暴露为命令行子命令，替代原先界面控制器的调用方角色。
type Club struct {
	resolver Resolver
	out      io.Writer
	log      logx.Logger
}

func NewClub(resolver Resolver, out io.Writer, log logx.Logger) *Club {
	if log == nil {
		log = logx.Nop()
	}
	return &Club{resolver: resolver, out: out, log: log}
}

func (h *Club) Commands() []*ucli.Command {
	return Commands(func() *Club { return h })
}

// Commands 在命令执行时才通过 get 取得 handler，便于在 App.Before 里加载配置后再组装。
func Commands(get func() *Club) []*ucli.Command {
	return []*ucli.Command{
		{
			Name:  "player",
			Usage: "show a player and their skill categories",
			Flags: []ucli.Flag{
				&ucli.IntFlag{Name: "id", Usage: "player UID", Required: true},
			},
			Action: wrap(get, "player", (*Club).player),
		},
		{
			Name:  "skill",
			Usage: "show one skill category of a player",
			Flags: []ucli.Flag{
				&ucli.IntFlag{Name: "player", Usage: "player UID", Required: true},
				&ucli.StringFlag{Name: "category", Usage: "category name (case-sensitive)", Required: true},
			},
			Action: wrap(get, "skill", (*Club).skill),
		},
		{
			Name:  "squad",
			Usage: "squad lookups",
			Subcommands: []*ucli.Command{
				{
					Name:  "exists",
					Usage: "print true if a squad with this name exists (case-insensitive)",
					Flags: []ucli.Flag{
						&ucli.StringFlag{Name: "name", Usage: "squad name", Required: true},
					},
					Action: wrap(get, "squad.exists", (*Club).squadExists),
				},
			},
		},
	}
}

// wrap 给每次命令补 trace_id，并在接口层统一打印一次结果日志。
func wrap(get func() *Club, action string, fn func(h *Club, ctx context.Context, c *ucli.Context) error) ucli.ActionFunc {
	return func(c *ucli.Context) error {
		h := get()
		if h == nil {
			return ucli.Exit("club: not initialised", ExitInternal)
		}
		ctx := tracex.Ensure(c.Context)
		err := fn(h, ctx, c)
		code := exitCode(err)
		switch {
		case err == nil:
		case errx.IsSys(err):
			logx.ReportSysErrorWithLoggerContext(ctx, h.log, logx.NewSysLog(action, err))
		default:
			logx.ReportBizWithLoggerContext(ctx, h.log, logx.NewBizLog(action, reasonText(err), err.Error()))
		}
		logx.ReportCommandWithLoggerContext(ctx, h.log, action, code)
		return toExitError(err)
	}
}

func (h *Club) player(ctx context.Context, c *ucli.Context) error {
	p, err := h.resolver.FindPlayerByID(ctx, c.Int("id"))
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "UID: %d\n", p.UID)
	fmt.Fprintf(h.out, "Name: %s\n", p.Name)
	fmt.Fprintf(h.out, "Skill categories: %s\n", strings.Join(p.CategoryNames(), ", "))
	return nil
}

func (h *Club) skill(ctx context.Context, c *ucli.Context) error {
	sc, err := h.resolver.FindSkillCategory(ctx, c.String("category"), c.Int("player"))
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "Category: %s\n", sc.Category)
	for _, s := range sc.Skills {
		fmt.Fprintf(h.out, "  %s: %d\n", s.Name, s.Level)
	}
	if len(sc.Notes) > 0 {
		fmt.Fprintln(h.out, "Notes:")
		for _, n := range sc.Notes {
			fmt.Fprintf(h.out, "  - %s\n", n)
		}
	}
	return nil
}

func (h *Club) squadExists(ctx context.Context, c *ucli.Context) error {
	name := c.String("name")
	exists := h.resolver.SquadExists(ctx, name)
	h.log.WithContext(ctx).Debug("squad exists", zap.String("squad", name), zap.Bool("exists", exists))
	fmt.Fprintln(h.out, exists)
	return nil
}

// reasonText 优先取错误携带的 reason，没有时退回错误码。
func reasonText(err error) string {
	var e *errx.Error
	if !errors.As(err, &e) {
		return ""
	}
	if r := e.Reason(); r != "" {
		return r
	}
	return e.CodeText()
}
