package bookmark

import (
	"sync"

	"github.com/ecodeclub/contesthub/internal/bookmark/internal/repository/dao"
	"github.com/ecodeclub/contesthub/internal/bookmark/internal/service"
	"github.com/ecodeclub/contesthub/internal/bookmark/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Handler = web.Handler
	Service = service.BookmarkService
)

type Module struct {
	Hdl *Handler
	Svc Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.BookmarkDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMBookmarkDAO(db)
}
