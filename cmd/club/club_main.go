package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"SimplyRugby/internal/club"
	clubcli "SimplyRugby/internal/club/interfaces/cli"
	"SimplyRugby/internal/shared/clubconfig"
	"SimplyRugby/internal/shared/logs"

	"github.com/prometheus/client_golang/prometheus"
	ucli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	r := &runner{out: os.Stdout, alerts: os.Stderr}
	os.Exit(r.run(os.Args))
}

type runner struct {
	out    io.Writer
	alerts io.Writer

	mod    *club.Module
	closed bool
}

// run 执行一次命令并返回退出码。
// 退出码在 Run 返回后才决定，保证 After（关闭模块、刷日志）先执行。
func (r *runner) run(args []string) int {
	err := r.app().Run(args)
	defer logs.Sync()
	if err == nil {
		return clubcli.ExitOK
	}

	var ec ucli.ExitCoder
	if errors.As(err, &ec) {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(r.alerts, msg)
		}
		return ec.ExitCode()
	}
	logs.Error("club exited", zap.Error(err))
	fmt.Fprintln(r.alerts, err)
	return clubcli.ExitInternal
}

func (r *runner) app() *ucli.App {
	return &ucli.App{
		Name:      "club",
		Usage:     "look up players, skill categories and squads in the club data files",
		Writer:    r.out,
		ErrWriter: r.alerts,
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "config",
				Usage:   "path to conf.yml (default: search configs/conf.yml upward)",
				EnvVars: []string{"CLUB_CONFIG"},
			},
		},
		Before: func(c *ucli.Context) error {
			cfg, err := clubconfig.Load(c.String("config"))
			if err != nil {
				return ucli.Exit(err.Error(), clubcli.ExitInternal)
			}
			logger, err := logs.Init("club", cfg.Log)
			if err != nil {
				return ucli.Exit(err.Error(), clubcli.ExitInternal)
			}
			logs.Debug("conf", zap.Any("conf", cfg))

			r.mod, err = club.New(cfg, club.Deps{
				Logger:     logger,
				Out:        r.out,
				Alerts:     r.alerts,
				Registerer: prometheus.DefaultRegisterer,
			})
			if err != nil {
				logs.Error("build club module failed", zap.Error(err))
				return ucli.Exit(err.Error(), clubcli.ExitInternal)
			}
			return nil
		},
		After: func(c *ucli.Context) error {
			if r.mod == nil || r.closed {
				return nil
			}
			r.closed = true
			return r.mod.Close()
		},
		// 错误交给 run 处理，urfave/cli 不在 Run 内部 os.Exit
		ExitErrHandler: func(*ucli.Context, error) {},
		// 配置在 Before 中加载，handler 到执行时才取
		Commands: clubcli.Commands(func() *clubcli.Club {
			if r.mod == nil {
				return nil
			}
			return r.mod.Handler()
		}),
	}
}
