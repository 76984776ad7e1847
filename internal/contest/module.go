package contest

import (
	"sync"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/job"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository/dao"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service/source"
	"github.com/ecodeclub/contesthub/internal/contest/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.ContestService
	SyncService  = service.SyncService
	Contest      = domain.Contest
	Platform     = domain.Platform
	SyncJob      = job.SyncContestsJob
	RefreshJob   = job.RefreshStatusJob
)

type Module struct {
	Hdl        *Handler
	AdminHdl   *AdminHandler
	Svc        Service
	SyncSvc    SyncService
	SyncJob    *SyncJob
	RefreshJob *RefreshJob
}

// Config 摄取管线的运行参数，由 ioc 从配置读出来填上
type Config struct {
	// SourceTimeout 单个来源的拉取超时
	SourceTimeout time.Duration
	// MaxPages 分页来源的页数上限
	MaxPages int
	// SyncJobTimeout 整轮同步任务的超时
	SyncJobTimeout time.Duration
	// RefreshJobTimeout 状态刷新任务的超时
	RefreshJobTimeout time.Duration
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ContestDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMContestDAO(db)
}

func initSources(cfg Config) []source.Source {
	return []source.Source{
		source.NewCodeforcesSource(),
		source.NewCodeChefSource(),
		source.NewLeetCodeSource(cfg.MaxPages),
	}
}

func initSyncService(sources []source.Source,
	repo repository.ContestRepository, cfg Config) service.SyncService {
	return service.NewSyncService(sources, repo, cfg.SourceTimeout)
}

func initSyncJob(svc service.SyncService, cfg Config) *job.SyncContestsJob {
	return job.NewSyncContestsJob(svc, cfg.SyncJobTimeout)
}

func initRefreshJob(svc service.ContestService, cfg Config) *job.RefreshStatusJob {
	return job.NewRefreshStatusJob(svc, cfg.RefreshJobTimeout)
}
