package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/contesthub/internal/bookmark"
	"github.com/ecodeclub/contesthub/internal/contest"
	"github.com/ecodeclub/contesthub/internal/pkg/middleware"
	"github.com/ecodeclub/contesthub/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	chdl *contest.Handler,
	cahdl *contest.AdminHandler,
	uhdl *user.Handler,
	bhdl *bookmark.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	uhdl.PublicRoutes(res.Engine)
	chdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	uhdl.PrivateRoutes(res.Engine)
	chdl.PrivateRoutes(res.Engine)
	cahdl.PrivateRoutes(res.Engine)
	bhdl.PrivateRoutes(res.Engine)
	return res
}
