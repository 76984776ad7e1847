package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository/cache"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrContestNotFound = dao.ErrContestNotFound

//go:generate mockgen -source=./contest.go -destination=./mocks/contest.mock.go -package=repomocks ContestRepository
type ContestRepository interface {
	// Save 幂等写入，重复摄取同一条记录不会产生重复行，也不会改动 ctime
	Save(ctx context.Context, c domain.Contest) error
	FindByIds(ctx context.Context, ids []int64) ([]domain.Contest, error)
	ListActive(ctx context.Context) ([]domain.Contest, error)
	ListPast(ctx context.Context, offset, limit int) ([]domain.Contest, error)
	CountPast(ctx context.Context) (int64, error)
	UpdateSolutionLink(ctx context.Context, id int64, link string) error
	MarkOngoing(ctx context.Context, now int64) (int64, error)
	MarkPast(ctx context.Context, now int64) (int64, error)
	Freshness(ctx context.Context) ([]domain.Freshness, error)
}

type contestRepository struct {
	dao    dao.ContestDAO
	cache  cache.ContestCache
	logger *elog.Component
}

func NewContestRepository(d dao.ContestDAO, c cache.ContestCache) ContestRepository {
	return &contestRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *contestRepository) Save(ctx context.Context, c domain.Contest) error {
	err := r.dao.Upsert(ctx, r.domainToEntity(c))
	if err != nil {
		return err
	}
	r.delActiveCache(ctx)
	return nil
}

func (r *contestRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Contest, error) {
	entities, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Contest) domain.Contest {
		return r.entityToDomain(src)
	}), nil
}

func (r *contestRepository) ListActive(ctx context.Context) ([]domain.Contest, error) {
	res, err := r.cache.GetActive(ctx)
	if err == nil {
		return res, nil
	}
	entities, err := r.dao.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	res = slice.Map(entities, func(idx int, src dao.Contest) domain.Contest {
		return r.entityToDomain(src)
	})
	if err = r.cache.SetActive(ctx, res); err != nil {
		// 缓存失败不影响读路径
		r.logger.Warn("回填活跃比赛缓存失败", elog.FieldErr(err))
	}
	return res, nil
}

func (r *contestRepository) ListPast(ctx context.Context, offset, limit int) ([]domain.Contest, error) {
	entities, err := r.dao.ListPast(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Contest) domain.Contest {
		return r.entityToDomain(src)
	}), nil
}

func (r *contestRepository) CountPast(ctx context.Context) (int64, error) {
	return r.dao.CountPast(ctx)
}

func (r *contestRepository) UpdateSolutionLink(ctx context.Context, id int64, link string) error {
	err := r.dao.UpdateSolutionLink(ctx, id, link)
	if err != nil {
		return err
	}
	r.delActiveCache(ctx)
	return nil
}

func (r *contestRepository) MarkOngoing(ctx context.Context, now int64) (int64, error) {
	affected, err := r.dao.MarkOngoing(ctx, now)
	if err == nil && affected > 0 {
		r.delActiveCache(ctx)
	}
	return affected, err
}

func (r *contestRepository) MarkPast(ctx context.Context, now int64) (int64, error) {
	affected, err := r.dao.MarkPast(ctx, now)
	if err == nil && affected > 0 {
		r.delActiveCache(ctx)
	}
	return affected, err
}

func (r *contestRepository) Freshness(ctx context.Context) ([]domain.Freshness, error) {
	utimes, err := r.dao.MaxUtimeByPlatform(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Freshness, 0, len(utimes))
	for platform, utime := range utimes {
		res = append(res, domain.Freshness{
			Platform:    domain.Platform(platform),
			LastUpdated: utime,
		})
	}
	return res, nil
}

func (r *contestRepository) delActiveCache(ctx context.Context) {
	if err := r.cache.DelActive(ctx); err != nil {
		r.logger.Warn("清理活跃比赛缓存失败", elog.FieldErr(err))
	}
}

func (r *contestRepository) domainToEntity(c domain.Contest) dao.Contest {
	return dao.Contest{
		Id:        c.ID,
		Title:     c.Title,
		Platform:  c.Platform.String(),
		StartTime: c.StartTime,
		Duration:  c.Duration,
		Link:      c.Link,
		Status:    c.Status.ToUint8(),
		SolutionLink: sql.NullString{
			String: c.SolutionLink,
			Valid:  c.SolutionLink != "",
		},
	}
}

func (r *contestRepository) entityToDomain(c dao.Contest) domain.Contest {
	return domain.Contest{
		ID:           c.Id,
		Title:        c.Title,
		Platform:     domain.Platform(c.Platform),
		StartTime:    c.StartTime,
		Duration:     c.Duration,
		Link:         c.Link,
		Status:       domain.Status(c.Status),
		SolutionLink: c.SolutionLink.String,
		Ctime:        c.Ctime,
		Utime:        c.Utime,
	}
}
