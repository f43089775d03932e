package app

import (
	"context"

	"SimplyRugby/internal/club/app/port"
	"SimplyRugby/internal/club/domain"
	"SimplyRugby/modules/kit/logx"

	"go.uber.org/zap"
)

// 提醒标题，沿用界面上已有的文案。
const (
	NoticePlayersMissing = "No player data was found"
	NoticeSquadsMissing  = "No squads data was found"
	NoticeSquadsCorrupt  = "Squad data could not be read"
)

// Resolver 在一次性读取的集合上按键查找：线性扫描、先到先得，不建索引也不缓存。
type Resolver struct {
	store    EntityStore
	notifier Notifier
	log      Logger
}

func NewResolver(store EntityStore, notifier Notifier, log Logger) *Resolver {
	return &Resolver{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// FindPlayerByID 返回第一个 UID 等于 id 的球员。
// 文件缺失时先发提醒，再以 ErrPlayerNotFound 结束；文件损坏的错误原样返回。
func (r *Resolver) FindPlayerByID(ctx context.Context, id int) (domain.Player, error) {
	res, err := r.store.LoadPlayers(ctx)
	if err != nil {
		return domain.Player{}, err
	}
	if res.Status == port.StatusMissing {
		r.notify(ctx, port.Notice{
			Severity: port.SeverityWarn,
			Title:    NoticePlayersMissing,
			Kind:     res.Kind,
			Path:     res.Path,
			Err:      res.Cause,
		})
	}

	for _, p := range res.Items {
		if p.UID == id {
			return p, nil
		}
	}
	if res.Status == port.StatusMissing {
		return domain.Player{}, domain.PlayerNotFound(id).WithReason(ReasonPlayerDataMissing)
	}
	return domain.Player{}, domain.PlayerNotFound(id).WithReason(ReasonPlayerUIDAbsent)
}

// FindSkillCategory 先按 id 找球员（找不到直接返回 ErrPlayerNotFound），
// 再在该球员的分类里按名称精确匹配（区分大小写）。
func (r *Resolver) FindSkillCategory(ctx context.Context, categoryName string, playerID int) (domain.SkillCategory, error) {
	player, err := r.FindPlayerByID(ctx, playerID)
	if err != nil {
		return domain.SkillCategory{}, err
	}

	for _, c := range player.Skills {
		if c.Category == categoryName {
			return c, nil
		}
	}
	return domain.SkillCategory{}, domain.SkillCategoryNotFound(categoryName, playerID)
}

// SquadExists 判断是否存在同名球队（不区分大小写）。任何失败都只返回 false，不向上抛错。
func (r *Resolver) SquadExists(ctx context.Context, name string) bool {
	res, err := r.store.LoadSquads(ctx)
	if err != nil {
		r.notify(ctx, port.Notice{
			Severity: port.SeverityError,
			Title:    NoticeSquadsCorrupt,
			Kind:     port.KindSquads,
			Path:     res.Path,
			Err:      err,
		})
		return false
	}
	if res.Status == port.StatusMissing {
		r.notify(ctx, port.Notice{
			Severity: port.SeverityWarn,
			Title:    NoticeSquadsMissing,
			Kind:     res.Kind,
			Path:     res.Path,
			Err:      res.Cause,
		})
		return false
	}

	for _, s := range res.Items {
		if s.Matches(name) {
			return true
		}
	}
	r.logger(ctx).Debug("squad not found", zap.String("squad", name), zap.Int("scanned", len(res.Items)))
	return false
}

func (r *Resolver) notify(ctx context.Context, n port.Notice) {
	if r.notifier == nil {
		r.logger(ctx).Warn(n.Title, zap.String("kind", string(n.Kind)), zap.String("path", n.Path), zap.Error(n.Err))
		return
	}
	r.notifier.Notify(ctx, n)
}

func (r *Resolver) logger(ctx context.Context) Logger {
	if r.log == nil {
		return logx.Nop()
	}
	return r.log.WithContext(ctx)
}
