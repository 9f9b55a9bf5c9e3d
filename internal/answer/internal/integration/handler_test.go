// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcards/internal/answer/internal/integration/startup"
	"github.com/ecodeclub/qcards/internal/answer/internal/repository/dao"
	"github.com/ecodeclub/qcards/internal/answer/internal/web"
	questartup "github.com/ecodeclub/qcards/internal/question/internal/integration/startup"
	"github.com/ecodeclub/qcards/internal/test"
	testioc "github.com/ecodeclub/qcards/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUid = 123

type AnswerHandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	cache  ecache.Cache
	server *egin.Component
}

func (s *AnswerHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	s.cache = testioc.InitCache()
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	queModule := questartup.InitModule()
	module := startup.InitModule(queModule)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *AnswerHandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE table `answers`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE table `questions`").Error)
	date := time.Now().Format(time.DateOnly)
	_, err := s.cache.Delete(context.Background(), "question:daily:"+date)
	require.NoError(s.T(), err)
}

// createQuestion 跨模块造数据，answer 模块碰不到 question 的 DAO，直接写表
func (s *AnswerHandlerTestSuite) createQuestion(content string, active bool) int64 {
	now := time.Now().UnixMilli()
	err := s.db.Exec(
		"INSERT INTO `questions`(`content`, `category`, `is_active`, `ctime`, `utime`) VALUES(?, ?, ?, ?, ?)",
		content, "reflection", active, now, now).Error
	require.NoError(s.T(), err)
	var id int64
	err = s.db.Raw("SELECT `id` FROM `questions` WHERE `content` = ? ORDER BY `id` DESC LIMIT 1", content).
		Scan(&id).Error
	require.NoError(s.T(), err)
	return id
}

func (s *AnswerHandlerTestSuite) submit(req web.SubmitReq) *test.JSONResponseRecorder[web.Answer] {
	request, err := http.NewRequest(http.MethodPost,
		"/answer/submit", iox.NewJSONReader(req))
	request.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Answer]()
	s.server.ServeHTTP(recorder, request)
	return recorder
}

func (s *AnswerHandlerTestSuite) TestSubmit() {
	t := s.T()
	qid := s.createQuestion("今天最感激的事情是什么？", true)
	today := time.Now().Format(time.DateOnly)

	recorder := s.submit(web.SubmitReq{Qid: qid, Content: "和久违的朋友通了电话"})
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, 0, res.Code)
	assert.True(t, res.Data.Id > 0)
	assert.Equal(t, today, res.Data.AnsweredDate)

	var a dao.Answer
	require.NoError(t, s.db.Where("id = ?", res.Data.Id).First(&a).Error)
	assert.True(t, a.Ctime > 0)
	assert.Equal(t, int64(testUid), a.Uid)
	assert.Equal(t, qid, a.Qid)
	assert.Equal(t, "和久违的朋友通了电话", a.Content)
	assert.Equal(t, today, a.AnsweredDate)
	assert.False(t, a.Feedback.Valid)
}

func (s *AnswerHandlerTestSuite) TestSubmitDuplicate() {
	t := s.T()
	qid := s.createQuestion("今天最感激的事情是什么？", true)

	recorder := s.submit(web.SubmitReq{Qid: qid, Content: "第一次回答"})
	require.Equal(t, 200, recorder.Code)
	require.Equal(t, 0, recorder.MustScan().Code)

	// 同一天再答同一道题，拒绝，而且不会多出记录
	recorder = s.submit(web.SubmitReq{Qid: qid, Content: "第二次回答"})
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 503002, recorder.MustScan().Code)

	var count int64
	require.NoError(t, s.db.Model(&dao.Answer{}).
		Where("uid = ? AND qid = ?", testUid, qid).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var a dao.Answer
	require.NoError(t, s.db.Where("uid = ? AND qid = ?", testUid, qid).First(&a).Error)
	assert.Equal(t, "第一次回答", a.Content)
}

func (s *AnswerHandlerTestSuite) TestSubmitValidation() {
	t := s.T()
	activeQid := s.createQuestion("问题一", true)
	inactiveQid := s.createQuestion("问题二", false)

	testCases := []struct {
		name     string
		req      web.SubmitReq
		wantCode int
	}{
		{
			name:     "停用的问题",
			req:      web.SubmitReq{Qid: inactiveQid, Content: "随便写点"},
			wantCode: 503003,
		},
		{
			name:     "不存在的问题",
			req:      web.SubmitReq{Qid: 10000, Content: "随便写点"},
			wantCode: 503003,
		},
		{
			name:     "空内容",
			req:      web.SubmitReq{Qid: activeQid, Content: "   "},
			wantCode: 503004,
		},
		{
			name:     "超过一百个字符",
			req:      web.SubmitReq{Qid: activeQid, Content: strings.Repeat("字", 101)},
			wantCode: 503004,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			recorder := s.submit(tc.req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}

	// 刚好一百个字符是允许的
	recorder := s.submit(web.SubmitReq{Qid: activeQid, Content: strings.Repeat("字", 100)})
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)
}

func (s *AnswerHandlerTestSuite) TestToday() {
	t := s.T()
	qid := s.createQuestion("今天的问题", true)

	req, err := http.NewRequest(http.MethodGet, "/answer/today", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.TodayResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data := recorder.MustScan().Data
	assert.Equal(t, qid, data.Question.Id)
	assert.False(t, data.Answered)

	// 回答之后再看
	sub := s.submit(web.SubmitReq{Qid: qid, Content: "写完了"})
	require.Equal(t, 0, sub.MustScan().Code)

	req, err = http.NewRequest(http.MethodGet, "/answer/today", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.TodayResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data = recorder.MustScan().Data
	assert.True(t, data.Answered)
	assert.Equal(t, "写完了", data.Answer.Content)
}

func (s *AnswerHandlerTestSuite) TestStats() {
	t := s.T()
	qid := s.createQuestion("今天的问题", true)
	now := time.Now()

	// 昨天和前天各答过一道
	for _, day := range []int{1, 2} {
		a := dao.Answer{
			Uid:          testUid,
			Qid:          qid,
			Content:      "以前的回答",
			AnsweredDate: now.AddDate(0, 0, -day).Format(time.DateOnly),
			Ctime:        now.UnixMilli(),
			Utime:        now.UnixMilli(),
		}
		require.NoError(t, s.db.Create(&a).Error)
	}

	stats := func() web.StatsResp {
		req, err := http.NewRequest(http.MethodGet, "/answer/stats", nil)
		require.NoError(t, err)
		recorder := test.NewJSONResponseRecorder[web.StatsResp]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		return recorder.MustScan().Data
	}

	// 今天还没答，锚点落在昨天
	got := stats()
	assert.Equal(t, web.StatsResp{
		Total:         2,
		StreakDays:    2,
		AnsweredToday: false,
	}, got)

	// 答完今天的，连续天数加一
	recorder := s.submit(web.SubmitReq{Qid: qid, Content: "今天的回答"})
	require.Equal(t, 0, recorder.MustScan().Code)
	got = stats()
	assert.Equal(t, web.StatsResp{
		Total:         3,
		StreakDays:    3,
		AnsweredToday: true,
	}, got)
}

func (s *AnswerHandlerTestSuite) TestStatsBrokenStreak() {
	t := s.T()
	qid := s.createQuestion("今天的问题", true)
	now := time.Now()

	// 三天前答过，中间断了
	a := dao.Answer{
		Uid:          testUid,
		Qid:          qid,
		Content:      "很久以前的回答",
		AnsweredDate: now.AddDate(0, 0, -3).Format(time.DateOnly),
		Ctime:        now.UnixMilli(),
		Utime:        now.UnixMilli(),
	}
	require.NoError(t, s.db.Create(&a).Error)

	req, err := http.NewRequest(http.MethodGet, "/answer/stats", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.StatsResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, web.StatsResp{
		Total:         1,
		StreakDays:    0,
		AnsweredToday: false,
	}, recorder.MustScan().Data)
}

func (s *AnswerHandlerTestSuite) TestList() {
	t := s.T()
	qid := s.createQuestion("列表里的问题", true)
	now := time.Now()

	for _, day := range []int{0, 1, 2} {
		a := dao.Answer{
			Uid:          testUid,
			Qid:          qid,
			Content:      "回答",
			AnsweredDate: now.AddDate(0, 0, -day).Format(time.DateOnly),
			Ctime:        now.UnixMilli(),
			Utime:        now.UnixMilli(),
		}
		require.NoError(t, s.db.Create(&a).Error)
	}
	// 别人的回答不会混进来
	other := dao.Answer{
		Uid:          456,
		Qid:          qid,
		Content:      "别人的回答",
		AnsweredDate: now.Format(time.DateOnly),
		Ctime:        now.UnixMilli(),
		Utime:        now.UnixMilli(),
	}
	require.NoError(t, s.db.Create(&other).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/answer/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 2}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.AnswerList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data := recorder.MustScan().Data
	assert.Equal(t, int64(3), data.Total)
	require.Len(t, data.Answers, 2)
	// 按日期倒序，第一条是今天的
	assert.Equal(t, now.Format(time.DateOnly), data.Answers[0].AnsweredDate)
	// 问题的题干一并带出来
	assert.Equal(t, "列表里的问题", data.Answers[0].Question.Content)
}

func (s *AnswerHandlerTestSuite) TestDetail() {
	t := s.T()
	qid := s.createQuestion("详情里的问题", true)
	now := time.Now()
	mine := dao.Answer{
		Uid:          testUid,
		Qid:          qid,
		Content:      "我的回答",
		AnsweredDate: now.Format(time.DateOnly),
		Ctime:        now.UnixMilli(),
		Utime:        now.UnixMilli(),
	}
	require.NoError(t, s.db.Create(&mine).Error)
	others := dao.Answer{
		Uid:          456,
		Qid:          qid,
		Content:      "别人的回答",
		AnsweredDate: now.Format(time.DateOnly),
		Ctime:        now.UnixMilli(),
		Utime:        now.UnixMilli(),
	}
	require.NoError(t, s.db.Create(&others).Error)

	testCases := []struct {
		name     string
		aid      int64
		wantCode int
		wantData string
	}{
		{name: "自己的回答", aid: mine.Id, wantData: "我的回答"},
		{name: "别人的回答等同于不存在", aid: others.Id, wantCode: 503005},
		{name: "不存在的回答", aid: 10000, wantCode: 503005},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/answer/detail", iox.NewJSONReader(web.Aid{Aid: tc.aid}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Answer]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.wantData, res.Data.Content)
				assert.Equal(t, "详情里的问题", res.Data.Question.Content)
			}
		})
	}
}

func TestAnswerHandler(t *testing.T) {
	suite.Run(t, new(AnswerHandlerTestSuite))
}
