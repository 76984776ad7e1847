package service

import (
	"context"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/metrics"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service/source"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./sync.go -destination=./mocks/sync.mock.go -package=svcmocks SyncService
type SyncService interface {
	// Sync 跑一轮完整的摄取管线：并发拉取全部来源，规整后逐条入库。
	// 单个来源失败不影响其它来源，整体结果写进 SyncReport。
	Sync(ctx context.Context) (domain.SyncReport, error)
}

type syncService struct {
	sources []source.Source
	repo    repository.ContestRepository
	// sourceTimeout 单个来源的拉取超时，防止一个没响应的平台拖死整轮
	sourceTimeout time.Duration
	logger        *elog.Component
}

func NewSyncService(sources []source.Source,
	repo repository.ContestRepository,
	sourceTimeout time.Duration) SyncService {
	return &syncService{
		sources:       sources,
		repo:          repo,
		sourceTimeout: sourceTimeout,
		logger:        elog.DefaultLogger,
	}
}

func (s *syncService) Sync(ctx context.Context) (domain.SyncReport, error) {
	runID := shortuuid.New()
	reports := make([]domain.SourceReport, len(s.sources))
	batches := make([][]source.Contest, len(s.sources))

	// 并发扇出拉取，按下标写结果，收集阶段不需要锁
	var eg errgroup.Group
	for i := range s.sources {
		eg.Go(func() error {
			src := s.sources[i]
			fetchCtx, cancel := context.WithTimeout(ctx, s.sourceTimeout)
			defer cancel()
			raws, err := src.Fetch(fetchCtx)
			reports[i] = domain.SourceReport{Platform: src.Platform()}
			if err != nil {
				reports[i].Error = err.Error()
				metrics.FetchCounter.WithLabelValues(src.Platform().String(), "error").Inc()
				s.logger.Error("拉取来源失败",
					elog.String("run-id", runID),
					elog.String("platform", src.Platform().String()),
					elog.FieldErr(err))
				// 失败只进报告，不让 errgroup 打断别的来源
				return nil
			}
			batches[i] = raws
			reports[i].Fetched = len(raws)
			metrics.FetchCounter.WithLabelValues(src.Platform().String(), "ok").Inc()
			return nil
		})
	}
	_ = eg.Wait()

	// 入库保持串行，避免多个来源并发写同一个唯一键
	for i, batch := range batches {
		if !reports[i].Success() {
			continue
		}
		s.upsertBatch(ctx, runID, batch, &reports[i])
		metrics.LastSyncSuccess.WithLabelValues(reports[i].Platform.String()).
			Set(float64(time.Now().Unix()))
	}

	report := domain.SyncReport{RunID: runID, Sources: reports}
	s.logger.Info("同步完成",
		elog.String("run-id", runID),
		elog.Any("report", report))
	return report, nil
}

func (s *syncService) upsertBatch(ctx context.Context,
	runID string, batch []source.Contest, report *domain.SourceReport) {
	platform := report.Platform.String()
	for _, raw := range batch {
		c, err := Normalize(raw)
		if err != nil {
			// 单条记录规整失败只丢这一条
			report.Dropped++
			metrics.RecordCounter.WithLabelValues(platform, "dropped").Inc()
			s.logger.Warn("丢弃不合法记录",
				elog.String("run-id", runID),
				elog.String("platform", platform),
				elog.FieldErr(err))
			continue
		}
		if err = s.repo.Save(ctx, c); err != nil {
			// 单条写失败不中断批次
			report.WriteFailed++
			metrics.RecordCounter.WithLabelValues(platform, "write_failed").Inc()
			s.logger.Error("写入比赛失败",
				elog.String("run-id", runID),
				elog.String("platform", platform),
				elog.String("title", c.Title),
				elog.FieldErr(err))
			continue
		}
		report.Upserted++
		metrics.RecordCounter.WithLabelValues(platform, "upserted").Inc()
	}
}
