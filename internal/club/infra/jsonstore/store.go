package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"SimplyRugby/internal/club/app/port"
	"SimplyRugby/internal/club/domain"
	"SimplyRugby/internal/shared/clubconfig"
	"SimplyRugby/modules/kit/errx"
)

const (
	OpLoadAll = "jsonstore.LoadAll"
)

// FileStore 每次调用都重新读取并解析对应的 JSON 文件，不做任何缓存。
type FileStore struct {
	paths   map[port.Kind]string
	metrics *Metrics
}

type Option func(*FileStore)

// WithMetrics 为每次读取记录 club_store_loads_total。
func WithMetrics(m *Metrics) Option {
	return func(s *FileStore) {
		s.metrics = m
	}
}

// New 以 dataDir 为根目录，files 给出每种数据对应的文件名。
func New(dataDir string, files map[port.Kind]string, opts ...Option) *FileStore {
	s := &FileStore{paths: make(map[port.Kind]string, len(files))}
	for kind, name := range files {
		s.paths[kind] = filepath.Join(dataDir, name)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewFromConfig(cfg clubconfig.StoreConfig, opts ...Option) *FileStore {
	return New(cfg.DataDir, map[port.Kind]string{
		port.KindPlayers: cfg.PlayersFile,
		port.KindSquads:  cfg.SquadsFile,
	}, opts...)
}

// Path 返回 kind 对应的文件路径。
func (s *FileStore) Path(kind port.Kind) (string, bool) {
	p, ok := s.paths[kind]
	return p, ok
}

// Paths 返回所有 kind 到路径映射的拷贝。
func (s *FileStore) Paths() map[port.Kind]string {
	out := make(map[port.Kind]string, len(s.paths))
	for k, v := range s.paths {
		out[k] = v
	}
	return out
}

func (s *FileStore) LoadPlayers(ctx context.Context) (port.Result[domain.Player], error) {
	return LoadAll[domain.Player](ctx, s, port.KindPlayers)
}

func (s *FileStore) LoadSquads(ctx context.Context) (port.Result[domain.Squad], error) {
	return LoadAll[domain.Squad](ctx, s, port.KindSquads)
}

// LoadAll 把 kind 对应的文件解析为有序记录：
//   - 文件不存在或不可读：StatusMissing，error 为 nil（是否提醒由调用方决定）
//   - 内容无法解析：返回 errx.ErrDataCorrupt，不做部分恢复
//   - 内容为 JSON null：视为空序列
//   - 字段名按 encoding/json 的规则匹配，大小写不敏感
func LoadAll[T any](_ context.Context, s *FileStore, kind port.Kind) (port.Result[T], error) {
	path, ok := s.Path(kind)
	if !ok {
		return port.Result[T]{Kind: kind}, errx.ErrReqParamERR.
			WithData("op", OpLoadAll).
			WithData("kind", string(kind)).
			WithCause(fmt.Errorf("unknown store kind %q", kind))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.metrics.observeLoad(kind, outcomeMissing)
		return port.Result[T]{Kind: kind, Path: path, Status: port.StatusMissing, Cause: err}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.metrics.observeLoad(kind, outcomeCorrupt)
		return port.Result[T]{Kind: kind, Path: path}, errx.ErrDataCorrupt.
			WithDataMap(map[string]any{"op": OpLoadAll, "kind": string(kind), "path": path}).
			WithCause(err)
	}

	s.metrics.observeLoad(kind, outcomeLoaded)
	return port.Result[T]{Kind: kind, Path: path, Status: port.StatusLoaded, Items: items}, nil
}
