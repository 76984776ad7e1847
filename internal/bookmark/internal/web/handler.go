package web

import (
	"github.com/ecodeclub/contesthub/internal/bookmark/internal/errs"
	"github.com/ecodeclub/contesthub/internal/bookmark/internal/service"
	"github.com/ecodeclub/contesthub/internal/contest"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.BookmarkService
}

func NewHandler(svc service.BookmarkService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/bookmarks")
	g.POST("/add", ginx.BS[IdReq](h.Add))
	g.POST("/remove", ginx.BS[IdReq](h.Remove))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) Add(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Add(ctx, sess.Claims().Uid, req.Cid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Remove(ctx, sess.Claims().Uid, req.Cid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	contests, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(contests, func(idx int, src contest.Contest) BookmarkVO {
			return BookmarkVO{
				Cid:       src.ID,
				Title:     src.Title,
				Platform:  src.Platform.String(),
				StartTime: src.StartTime,
				Duration:  src.Duration,
				Link:      src.Link,
				Status:    src.Status.String(),
			}
		}),
	}, nil
}
