package jsonstore

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"SimplyRugby/internal/club/app/port"
	"SimplyRugby/internal/club/domain"
	"SimplyRugby/modules/kit/errx"
	"SimplyRugby/modules/kit/logx"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// CachedStore 在 next 之上缓存最近一次成功读取的结果，文件有任何变动即失效。
// 缺失与损坏的结果不缓存，下一次调用仍会走到 next。
type CachedStore struct {
	next    port.EntityStore
	watcher *fsnotify.Watcher
	byPath  map[string]port.Kind
	// 目录无法监听的 kind 直接透传给 next，不缓存
	direct  map[port.Kind]bool
	log     logx.Logger
	metrics *Metrics

	mu      sync.Mutex
	entries map[port.Kind]any
	gen     map[port.Kind]uint64

	done chan struct{}
	wg   sync.WaitGroup
}

// NewCachedStore 监听 paths 中每个文件所在的目录（文件可能尚不存在，编辑器也常用 rename 覆盖）。
func NewCachedStore(next port.EntityStore, paths map[port.Kind]string, log logx.Logger, metrics *Metrics) (*CachedStore, error) {
	if log == nil {
		log = logx.Nop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errx.ErrUnavailable.WithData("op", "jsonstore.NewCachedStore").WithCause(err)
	}

	c := &CachedStore{
		next:    next,
		watcher: w,
		byPath:  make(map[string]port.Kind, len(paths)),
		direct:  make(map[port.Kind]bool),
		log:     log,
		metrics: metrics,
		entries: make(map[port.Kind]any),
		gen:     make(map[port.Kind]uint64),
		done:    make(chan struct{}),
	}

	dirs := make(map[string][]port.Kind)
	for kind, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return nil, errx.ErrUnavailable.WithData("path", p).WithCause(err)
		}
		c.byPath[abs] = kind
		dir := filepath.Dir(abs)
		dirs[dir] = append(dirs[dir], kind)
	}
	for dir, kinds := range dirs {
		if err := w.Add(dir); err != nil {
			// 目录不存在时读取本身会得到 StatusMissing，这里只放弃缓存
			for _, kind := range kinds {
				c.direct[kind] = true
			}
			log.Warn("store cache disabled for unwatchable dir", zap.String("dir", dir), zap.Error(err))
		}
	}

	c.wg.Add(1)
	go c.watch()
	return c, nil
}

func (c *CachedStore) LoadPlayers(ctx context.Context) (port.Result[domain.Player], error) {
	return cachedLoad(ctx, c, port.KindPlayers, c.next.LoadPlayers, clonePlayer)
}

func (c *CachedStore) LoadSquads(ctx context.Context) (port.Result[domain.Squad], error) {
	return cachedLoad(ctx, c, port.KindSquads, c.next.LoadSquads, cloneSquad)
}

// Invalidate 丢弃 kind 的缓存。
func (c *CachedStore) Invalidate(kind port.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, kind)
	c.gen[kind]++
}

func (c *CachedStore) Close() error {
	select {
	case <-c.done:
		return nil
	default:
	}
	close(c.done)
	err := c.watcher.Close()
	c.wg.Wait()
	return err
}

func (c *CachedStore) watch() {
	defer c.wg.Done()
	const mask = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename | fsnotify.Chmod
	for {
		select {
		case <-c.done:
			return
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&mask == 0 {
				continue
			}
			kind, ok := c.byPath[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			c.Invalidate(kind)
			c.log.Debug("store cache invalidated", zap.String("kind", string(kind)), zap.String("op", ev.Op.String()))
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			// 监听出错时无法判断文件是否变化，全部失效
			c.log.Warn("store watcher error", zap.Error(err))
			for _, kind := range c.byPath {
				c.Invalidate(kind)
			}
		}
	}
}

func cachedLoad[T any](
	ctx context.Context,
	c *CachedStore,
	kind port.Kind,
	load func(context.Context) (port.Result[T], error),
	clone func(T) T,
) (port.Result[T], error) {
	if c.direct[kind] {
		return load(ctx)
	}

	c.mu.Lock()
	if v, ok := c.entries[kind]; ok {
		c.mu.Unlock()
		c.metrics.observeCacheHit(kind)
		return cloneResult(v.(port.Result[T]), clone), nil
	}
	gen := c.gen[kind]
	c.mu.Unlock()

	res, err := load(ctx)
	if err != nil || res.Status != port.StatusLoaded {
		return res, err
	}

	c.mu.Lock()
	// 读取期间发生过失效则不写回，避免缓存旧内容
	if c.gen[kind] == gen {
		c.entries[kind] = cloneResult(res, clone)
	}
	c.mu.Unlock()
	return res, nil
}

func cloneResult[T any](r port.Result[T], clone func(T) T) port.Result[T] {
	out := r
	if r.Items != nil {
		out.Items = make([]T, len(r.Items))
		for i, it := range r.Items {
			out.Items[i] = clone(it)
		}
	}
	return out
}

func clonePlayer(p domain.Player) domain.Player {
	out := p
	if p.Skills != nil {
		out.Skills = make([]domain.SkillCategory, len(p.Skills))
		for i, c := range p.Skills {
			cc := c
			cc.Skills = slices.Clone(c.Skills)
			cc.Notes = slices.Clone(c.Notes)
			out.Skills[i] = cc
		}
	}
	return out
}

func cloneSquad(s domain.Squad) domain.Squad {
	out := s
	out.Players = slices.Clone(s.Players)
	return out
}
