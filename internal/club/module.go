package club

import (
	"io"

	"SimplyRugby/internal/club/app"
	"SimplyRugby/internal/club/app/port"
	"SimplyRugby/internal/club/infra/jsonstore"
	"SimplyRugby/internal/club/infra/notify"
	clubcli "SimplyRugby/internal/club/interfaces/cli"
	"SimplyRugby/internal/shared/clubconfig"
	"SimplyRugby/modules/kit/logx"

	"github.com/prometheus/client_golang/prometheus"
	ucli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Module 组装查询层：文件存储（可选缓存）-> Resolver -> 命令行处理器。
type Module struct {
	Resolver *app.Resolver
	handler  *clubcli.Club
	cache    *jsonstore.CachedStore
}

type Deps struct {
	Logger *zap.Logger
	// Out 接收命令输出，Alerts 接收提醒。
	Out    io.Writer
	Alerts io.Writer
	// Registerer 为空时不采集指标。
	Registerer prometheus.Registerer
}

func New(cfg clubconfig.Config, deps Deps) (*Module, error) {
	log := logx.NewZapLogger(deps.Logger)

	var metrics *jsonstore.Metrics
	if cfg.Metrics.Enabled && deps.Registerer != nil {
		m, err := jsonstore.NewMetrics(deps.Registerer)
		if err != nil {
			return nil, err
		}
		metrics = m
	}

	files := jsonstore.NewFromConfig(cfg.Store, jsonstore.WithMetrics(metrics))
	m := &Module{}
	var store port.EntityStore = files
	if cfg.Store.Cache {
		cached, err := jsonstore.NewCachedStore(files, files.Paths(), log.Named("store"), metrics)
		if err != nil {
			return nil, err
		}
		m.cache = cached
		store = cached
	}

	notifier := notify.NewAlertNotifier(deps.Alerts, log.Named("notice"))
	m.Resolver = app.NewResolver(store, notifier, log.Named("resolver"))
	m.handler = clubcli.NewClub(m.Resolver, deps.Out, log.Named("cli"))
	return m, nil
}

func (m *Module) Handler() *clubcli.Club {
	return m.handler
}

func (m *Module) Commands() []*ucli.Command {
	return m.handler.Commands()
}

func (m *Module) Close() error {
	if m.cache == nil {
		return nil
	}
	return m.cache.Close()
}
