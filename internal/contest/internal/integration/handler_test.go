//go:build e2e

package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/contesthub/internal/contest/internal/errs"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository/cache"
	"github.com/ecodeclub/contesthub/internal/contest/internal/repository/dao"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service"
	"github.com/ecodeclub/contesthub/internal/contest/internal/service/source"
	"github.com/ecodeclub/contesthub/internal/contest/internal/web"
	"github.com/ecodeclub/contesthub/internal/test"
	testioc "github.com/ecodeclub/contesthub/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2061)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ContestDAO
	cfSrv  *httptest.Server
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMContestDAO(s.db)

	// 一个假的 Codeforces 端点撑起整条摄取链路
	now := time.Now().Unix()
	s.cfSrv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{
  "status": "OK",
  "result": [
    {"id": 1, "name": "Upcoming Round", "phase": "BEFORE", "durationSeconds": 7200, "startTimeSeconds": %d},
    {"id": 2, "name": "Finished Round", "phase": "FINISHED", "durationSeconds": 7200, "startTimeSeconds": %d}
  ]
}`, now+3600, now-86400)
	}))

	repo := repository.NewContestRepository(s.dao, cache.NewContestECache(testioc.InitCache()))
	svc := service.NewContestService(repo)
	syncSvc := service.NewSyncService([]source.Source{
		source.NewCodeforcesSourceOf(s.cfSrv.URL),
	}, repo, time.Minute)
	hdl := web.NewHandler(svc)
	adminHdl := web.NewAdminHandler(syncSvc, svc)

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	adminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.cfSrv.Close()
	require.NoError(s.T(), s.db.Exec("DROP TABLE `contests`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `contests`").Error)
}

func (s *HandlerTestSuite) sync() test.Result[web.SyncReportVO] {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/contests/sync", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.SyncReportVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestSyncThenList() {
	t := s.T()
	report := s.sync()
	require.Len(t, report.Data.Sources, 1)
	assert.Equal(t, "Codeforces", report.Data.Sources[0].Platform)
	assert.Equal(t, 2, report.Data.Sources[0].Fetched)
	assert.Equal(t, 2, report.Data.Sources[0].Upserted)

	req, err := http.NewRequest(http.MethodPost, "/contests/active", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListContestResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "Upcoming Round", resp.List[0].Title)
	assert.Equal(t, "upcoming", resp.List[0].Status)
	assert.Equal(t, "https://codeforces.com/contest/1", resp.List[0].Link)

	// 再同步一轮还是同样的两行
	s.sync()
	var count int64
	require.NoError(t, s.db.Model(&dao.Contest{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func (s *HandlerTestSuite) TestPastList() {
	t := s.T()
	s.sync()
	req, err := http.NewRequest(http.MethodPost, "/contests/past",
		iox.NewJSONReader(web.Page{Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListContestResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "Finished Round", resp.List[0].Title)
	assert.Equal(t, "past", resp.List[0].Status)
}

func (s *HandlerTestSuite) TestSaveSolutionLink() {
	t := s.T()
	s.sync()
	var c dao.Contest
	require.NoError(t, s.db.Where("title = ?", "Finished Round").First(&c).Error)

	req, err := http.NewRequest(http.MethodPost, "/contests/solution-link",
		iox.NewJSONReader(web.SaveSolutionLinkReq{ID: c.Id, Link: "https://example.com/editorial"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	require.NoError(t, s.db.Where("id = ?", c.Id).First(&c).Error)
	assert.Equal(t, "https://example.com/editorial", c.SolutionLink.String)

	// 标注之后再同步，链接不能被冲掉
	s.sync()
	require.NoError(t, s.db.Where("id = ?", c.Id).First(&c).Error)
	assert.Equal(t, "https://example.com/editorial", c.SolutionLink.String)
}

func (s *HandlerTestSuite) TestSaveSolutionLinkNotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/contests/solution-link",
		iox.NewJSONReader(web.SaveSolutionLinkReq{ID: 99999, Link: "https://example.com/editorial"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, errs.ContestNotFound.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestFreshness() {
	t := s.T()
	s.sync()
	req, err := http.NewRequest(http.MethodPost, "/contests/freshness", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]web.FreshnessVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	freshness := recorder.MustScan().Data
	require.Len(t, freshness, 1)
	assert.Equal(t, "Codeforces", freshness[0].Platform)
	assert.Positive(t, freshness[0].LastUpdated)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
