package repository

import (
	"context"

	"github.com/ecodeclub/contesthub/internal/bookmark/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./bookmark.go -destination=./mocks/bookmark.mock.go -package=repomocks BookmarkRepository
type BookmarkRepository interface {
	Add(ctx context.Context, uid, cid int64) error
	Remove(ctx context.Context, uid, cid int64) error
	ContestIds(ctx context.Context, uid int64) ([]int64, error)
}

type bookmarkRepository struct {
	dao dao.BookmarkDAO
}

func NewBookmarkRepository(dao dao.BookmarkDAO) BookmarkRepository {
	return &bookmarkRepository{dao: dao}
}

func (r *bookmarkRepository) Add(ctx context.Context, uid, cid int64) error {
	return r.dao.Insert(ctx, dao.Bookmark{Uid: uid, Cid: cid})
}

func (r *bookmarkRepository) Remove(ctx context.Context, uid, cid int64) error {
	return r.dao.Delete(ctx, uid, cid)
}

func (r *bookmarkRepository) ContestIds(ctx context.Context, uid int64) ([]int64, error) {
	bookmarks, err := r.dao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(bookmarks, func(idx int, src dao.Bookmark) int64 {
		return src.Cid
	}), nil
}
