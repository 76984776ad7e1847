package service

import (
	"context"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/metrics"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./contest.go -destination=./mocks/contest.mock.go -package=svcmocks ContestService
type ContestService interface {
	// ActiveList 未开始和进行中的比赛，按开始时间升序
	ActiveList(ctx context.Context) ([]domain.Contest, error)
	// PastList 已结束的比赛，按结束时间降序
	PastList(ctx context.Context, offset, limit int) ([]domain.Contest, int64, error)
	GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Contest, error)
	// SaveSolutionLink 协作方标注题解链接，鉴权在协作方那边做
	SaveSolutionLink(ctx context.Context, id int64, link string) error
	// RefreshStatuses 以 now 为准推进比赛状态，只会向前推进。
	// 两条集合式更新各自原子且可重复执行，和摄取并发跑是安全的。
	RefreshStatuses(ctx context.Context, now time.Time) error
	// Freshness 各平台数据新鲜度，给协作方的陈旧信号
	Freshness(ctx context.Context) ([]domain.Freshness, error)
}

type contestService struct {
	repo   repository.ContestRepository
	logger *elog.Component
}

func NewContestService(repo repository.ContestRepository) ContestService {
	return &contestService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *contestService) ActiveList(ctx context.Context) ([]domain.Contest, error) {
	return s.repo.ListActive(ctx)
}

func (s *contestService) PastList(ctx context.Context, offset, limit int) ([]domain.Contest, int64, error) {
	contests, err := s.repo.ListPast(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountPast(ctx)
	if err != nil {
		return nil, 0, err
	}
	return contests, total, nil
}

func (s *contestService) GetByIds(ctx context.Context, ids []int64) (map[int64]domain.Contest, error) {
	contests, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Contest, len(contests))
	for _, c := range contests {
		res[c.ID] = c
	}
	return res, nil
}

func (s *contestService) SaveSolutionLink(ctx context.Context, id int64, link string) error {
	return s.repo.UpdateSolutionLink(ctx, id, link)
}

func (s *contestService) RefreshStatuses(ctx context.Context, now time.Time) error {
	nowMilli := now.UnixMilli()
	// 先收尾再开赛：跨过整个比赛窗口的行会被第一条更新直接置为 past，
	// 不会在同一轮里先升到 ongoing 再多挨一次扫描
	past, err := s.repo.MarkPast(ctx, nowMilli)
	if err != nil {
		return err
	}
	metrics.TransitionCounter.WithLabelValues(domain.StatusPast.String()).Add(float64(past))
	ongoing, err := s.repo.MarkOngoing(ctx, nowMilli)
	if err != nil {
		return err
	}
	metrics.TransitionCounter.WithLabelValues(domain.StatusOngoing.String()).Add(float64(ongoing))
	if past > 0 || ongoing > 0 {
		s.logger.Info("比赛状态已推进",
			elog.Any("to-ongoing", ongoing),
			elog.Any("to-past", past))
	}
	return nil
}

func (s *contestService) Freshness(ctx context.Context) ([]domain.Freshness, error) {
	return s.repo.Freshness(ctx)
}
