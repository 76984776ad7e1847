package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type BookmarkDAO interface {
	// Insert 重复收藏同一场比赛是幂等的
	Insert(ctx context.Context, b Bookmark) error
	Delete(ctx context.Context, uid, cid int64) error
	ListByUid(ctx context.Context, uid int64) ([]Bookmark, error)
}

type GORMBookmarkDAO struct {
	db *egorm.Component
}

func NewGORMBookmarkDAO(db *egorm.Component) BookmarkDAO {
	return &GORMBookmarkDAO{db: db}
}

func (d *GORMBookmarkDAO) Insert(ctx context.Context, b Bookmark) error {
	now := time.Now().UnixMilli()
	b.Ctime = now
	b.Utime = now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}, {Name: "cid"}},
		DoUpdates: clause.Assignments(map[string]any{"utime": now}),
	}).Create(&b).Error
}

func (d *GORMBookmarkDAO) Delete(ctx context.Context, uid, cid int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND cid = ?", uid, cid).
		Delete(&Bookmark{}).Error
}

func (d *GORMBookmarkDAO) ListByUid(ctx context.Context, uid int64) ([]Bookmark, error) {
	var res []Bookmark
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Bookmark{})
}

type Bookmark struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 用户ID
	Uid int64 `gorm:"not null;uniqueIndex:uk_uid_cid"`
	// 比赛ID
	Cid int64 `gorm:"not null;uniqueIndex:uk_uid_cid"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
