package service

import (
	"context"

	"github.com/ecodeclub/contesthub/internal/bookmark/internal/repository"
	"github.com/ecodeclub/contesthub/internal/contest"
)

//go:generate mockgen -source=./bookmark.go -destination=./mocks/bookmark.mock.go -package=svcmocks BookmarkService
type BookmarkService interface {
	Add(ctx context.Context, uid, cid int64) error
	Remove(ctx context.Context, uid, cid int64) error
	// List 返回用户收藏的比赛，已经按收藏时间补齐了比赛数据
	List(ctx context.Context, uid int64) ([]contest.Contest, error)
}

type bookmarkService struct {
	repo       repository.BookmarkRepository
	contestSvc contest.Service
}

func NewBookmarkService(repo repository.BookmarkRepository,
	contestSvc contest.Service) BookmarkService {
	return &bookmarkService{
		repo:       repo,
		contestSvc: contestSvc,
	}
}

func (s *bookmarkService) Add(ctx context.Context, uid, cid int64) error {
	return s.repo.Add(ctx, uid, cid)
}

func (s *bookmarkService) Remove(ctx context.Context, uid, cid int64) error {
	return s.repo.Remove(ctx, uid, cid)
}

func (s *bookmarkService) List(ctx context.Context, uid int64) ([]contest.Contest, error) {
	ids, err := s.repo.ContestIds(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	contests, err := s.contestSvc.GetByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make([]contest.Contest, 0, len(ids))
	for _, id := range ids {
		if c, ok := contests[id]; ok {
			res = append(res, c)
		}
	}
	return res, nil
}
