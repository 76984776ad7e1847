//go:build wireinject

package contest

import (
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository/cache"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service"
	"github.com/ecodeclub/contesthub/internal/contest/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, cfg Config) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewContestECache,
		repository.NewContestRepository,
		initSources,
		initSyncService,
		service.NewContestService,
		initSyncJob,
		initRefreshJob,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
