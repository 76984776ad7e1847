//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/contesthub/internal/bookmark"
	"github.com/ecodeclub/contesthub/internal/contest"
	"github.com/ecodeclub/contesthub/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitContestModule,
		wire.FieldsOf(new(*contest.Module), "Hdl", "AdminHdl", "Svc", "SyncJob", "RefreshJob"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		bookmark.InitModule,
		wire.FieldsOf(new(*bookmark.Module), "Hdl"),
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
