package web

import (
	"github.com/ecodeclub/contesthub/internal/contest/internal/domain"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// AdminHandler 运维侧入口：手动触发一轮同步、查看数据新鲜度
type AdminHandler struct {
	syncSvc service.SyncService
	svc     service.ContestService
}

func NewAdminHandler(syncSvc service.SyncService, svc service.ContestService) *AdminHandler {
	return &AdminHandler{
		syncSvc: syncSvc,
		svc:     svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/contests")
	g.POST("/sync", ginx.S(h.Sync))
	g.POST("/freshness", ginx.S(h.Freshness))
}

// Sync 排期之外按需触发一轮摄取管线
func (h *AdminHandler) Sync(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	report, err := h.syncSvc.Sync(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SyncReportVO{
			RunID: report.RunID,
			Sources: slice.Map(report.Sources, func(idx int, src domain.SourceReport) SourceReportVO {
				return SourceReportVO{
					Platform:    src.Platform.String(),
					Fetched:     src.Fetched,
					Dropped:     src.Dropped,
					Upserted:    src.Upserted,
					WriteFailed: src.WriteFailed,
					Error:       src.Error,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) Freshness(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	freshness, err := h.svc.Freshness(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(freshness, func(idx int, src domain.Freshness) FreshnessVO {
			return FreshnessVO{
				Platform:    src.Platform.String(),
				LastUpdated: src.LastUpdated,
			}
		}),
	}, nil
}
