//go:build wireinject

package bookmark

import (
	"github.com/ecodeclub/contesthub/internal/bookmark/internal/repository"
	"github.com/ecodeclub/contesthub/internal/bookmark/internal/service"
	"github.com/ecodeclub/contesthub/internal/bookmark/internal/web"
	"github.com/ecodeclub/contesthub/internal/contest"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, contestSvc contest.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewBookmarkRepository,
		service.NewBookmarkService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
