package dao

import (
	"github.com/ego-component/egorm"
	"github.com/pkg/errors"
)

var ErrContestNotFound = errors.New("比赛没找到")

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Contest{})
}
