package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	statusUpcoming uint8 = 1
	statusOngoing  uint8 = 2
	statusPast     uint8 = 3

	minuteInMillis = int64(60 * 1000)
)

type ContestDAO interface {
	// Upsert 以 (title, platform) 为唯一键的幂等写入。
	// 冲突时不更新 ctime 和 solution_link，status 只增不减，
	// 已经是 past 的行冻结 start_time/duration/link。
	Upsert(ctx context.Context, c Contest) error
	FindByIds(ctx context.Context, ids []int64) ([]Contest, error)
	// ListActive 状态在 upcoming/ongoing 的比赛，按开始时间升序
	ListActive(ctx context.Context) ([]Contest, error)
	// ListPast 已结束的比赛，按结束时间降序
	ListPast(ctx context.Context, offset, limit int) ([]Contest, error)
	CountPast(ctx context.Context) (int64, error)
	UpdateSolutionLink(ctx context.Context, id int64, link string) error
	// MarkOngoing/MarkPast 状态刷新任务用的集合式更新，
	// 单条 UPDATE 自身原子，重复执行结果不变
	MarkOngoing(ctx context.Context, now int64) (int64, error)
	MarkPast(ctx context.Context, now int64) (int64, error)
	// MaxUtimeByPlatform 各平台最近一次写入时间，作为数据新鲜度信号
	MaxUtimeByPlatform(ctx context.Context) (map[string]int64, error)
}

type GORMContestDAO struct {
	db *egorm.Component
}

func NewGORMContestDAO(db *egorm.Component) ContestDAO {
	return &GORMContestDAO{db: db}
}

func (d *GORMContestDAO) Upsert(ctx context.Context, c Contest) error {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	// MySQL 的 ON DUPLICATE KEY UPDATE 按赋值顺序求值，
	// 所以引用 status 旧值的赋值必须排在 status 自己的赋值之前
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "title"}, {Name: "platform"}},
		DoUpdates: clause.Set{
			{
				Column: clause.Column{Name: "start_time"},
				Value:  gorm.Expr("IF(`status` = ?, `start_time`, ?)", statusPast, c.StartTime),
			},
			{
				Column: clause.Column{Name: "duration"},
				Value:  gorm.Expr("IF(`status` = ?, `duration`, ?)", statusPast, c.Duration),
			},
			{
				Column: clause.Column{Name: "link"},
				Value:  gorm.Expr("IF(`status` = ?, `link`, ?)", statusPast, c.Link),
			},
			{
				Column: clause.Column{Name: "status"},
				Value:  gorm.Expr("GREATEST(`status`, ?)", c.Status),
			},
			{
				Column: clause.Column{Name: "utime"},
				Value:  now,
			},
		},
	}).Create(&c).Error
}

func (d *GORMContestDAO) FindByIds(ctx context.Context, ids []int64) ([]Contest, error) {
	var res []Contest
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *GORMContestDAO) ListActive(ctx context.Context) ([]Contest, error) {
	var res []Contest
	err := d.db.WithContext(ctx).
		Where("status IN ?", []uint8{statusUpcoming, statusOngoing}).
		Order("start_time ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMContestDAO) ListPast(ctx context.Context, offset, limit int) ([]Contest, error) {
	var res []Contest
	err := d.db.WithContext(ctx).
		Where("status = ?", statusPast).
		Order(fmt.Sprintf("start_time + duration * %d DESC", minuteInMillis)).
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMContestDAO) CountPast(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Contest{}).
		Where("status = ?", statusPast).
		Count(&count).Error
	return count, err
}

func (d *GORMContestDAO) UpdateSolutionLink(ctx context.Context, id int64, link string) error {
	res := d.db.WithContext(ctx).Model(&Contest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"solution_link": link,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContestNotFound
	}
	return nil
}

func (d *GORMContestDAO) MarkOngoing(ctx context.Context, now int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Contest{}).
		Where("status = ? AND start_time <= ? AND start_time + duration * ? > ?",
			statusUpcoming, now, minuteInMillis, now).
		Updates(map[string]any{
			"status": statusOngoing,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMContestDAO) MarkPast(ctx context.Context, now int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Contest{}).
		Where("status IN ? AND start_time + duration * ? <= ?",
			[]uint8{statusUpcoming, statusOngoing}, minuteInMillis, now).
		Updates(map[string]any{
			"status": statusPast,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMContestDAO) MaxUtimeByPlatform(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Platform string
		Utime    int64
	}
	err := d.db.WithContext(ctx).Model(&Contest{}).
		Select("platform, MAX(utime) AS utime").
		Group("platform").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[string]int64, len(rows))
	for _, row := range rows {
		res[row.Platform] = row.Utime
	}
	return res, nil
}

type Contest struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Title    string `gorm:"type:varchar(512);not null;uniqueIndex:uk_title_platform"`
	Platform string `gorm:"type:varchar(32);not null;uniqueIndex:uk_title_platform"`
	// 开始时间，毫秒时间戳
	StartTime int64 `gorm:"not null;index:idx_start_time"`
	// 时长，分钟
	Duration int64  `gorm:"not null"`
	Link     string `gorm:"type:varchar(512);not null"`
	// 1-upcoming 2-ongoing 3-past，只会变大
	Status       uint8          `gorm:"not null;index:idx_status"`
	SolutionLink sql.NullString `gorm:"type:varchar(512)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (Contest) TableName() string {
	return "contests"
}
