package web

import (
	"errors"

	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ContestService
}

func NewHandler(svc service.ContestService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/contests")
	g.POST("/active", ginx.W(h.ActiveList))
	g.POST("/past", ginx.B[Page](h.PastList))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/contests")
	g.POST("/solution-link", ginx.BS[SaveSolutionLinkReq](h.SaveSolutionLink))
}

func (h *Handler) ActiveList(ctx *ginx.Context) (ginx.Result, error) {
	contests, err := h.svc.ActiveList(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListContestResp{
			Total: int64(len(contests)),
			List: slice.Map(contests, func(idx int, src domain.Contest) ContestVO {
				return newContestVO(src)
			}),
		},
	}, nil
}

func (h *Handler) PastList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	contests, total, err := h.svc.PastList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListContestResp{
			Total: total,
			List: slice.Map(contests, func(idx int, src domain.Contest) ContestVO {
				return newContestVO(src)
			}),
		},
	}, nil
}

func (h *Handler) SaveSolutionLink(ctx *ginx.Context, req SaveSolutionLinkReq, _ session.Session) (ginx.Result, error) {
	if req.ID <= 0 || req.Link == "" {
		return invalidInputResult, nil
	}
	err := h.svc.SaveSolutionLink(ctx, req.ID, req.Link)
	if errors.Is(err, repository.ErrContestNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
