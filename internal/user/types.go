package user

import (
	"sync"

	"github.com/ecodeclub/contesthub/internal/user/internal/domain"
	"github.com/ecodeclub/contesthub/internal/user/internal/repository/dao"
	"github.com/ecodeclub/contesthub/internal/user/internal/service"
	"github.com/ecodeclub/contesthub/internal/user/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Handler = web.Handler
	Service = service.UserService
	User    = domain.User
)

type Module struct {
	Hdl *Handler
	Svc Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMUserDAO(db)
}
