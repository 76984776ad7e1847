//go:build wireinject

package user

import (
	"github.com/ecodeclub/contesthub/internal/user/internal/repository"
	"github.com/ecodeclub/contesthub/internal/user/internal/service"
	"github.com/ecodeclub/contesthub/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewUserRepository,
		service.NewUserService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
