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
	"hash/crc32"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcards/internal/question/internal/integration/startup"
	"github.com/ecodeclub/qcards/internal/question/internal/repository/dao"
	"github.com/ecodeclub/qcards/internal/question/internal/web"
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

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	cache  ecache.Cache
	server *egin.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	require.NoError(s.T(), err)
	s.cache = testioc.InitCache()
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	module := startup.InitModule()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: 123,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE table `questions`").Error
	require.NoError(s.T(), err)
	// 清掉当天的缓存，避免用例之间互相干扰
	date := time.Now().Format(time.DateOnly)
	_, err = s.cache.Delete(context.Background(), "question:daily:"+date)
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSave() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/question/save", iox.NewJSONReader(web.SaveReq{
			Question: web.Question{
				Content:  "今天做了哪件让自己骄傲的事？",
				Category: "reflection",
				Active:   true,
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	assert.True(t, id > 0)

	var q dao.Question
	err = s.db.Where("id = ?", id).First(&q).Error
	require.NoError(t, err)
	assert.True(t, q.Ctime > 0)
	assert.True(t, q.Utime > 0)
	q.Ctime = 0
	q.Utime = 0
	assert.Equal(t, dao.Question{
		Id:       id,
		Content:  "今天做了哪件让自己骄傲的事？",
		Category: "reflection",
		Active:   true,
	}, q)

	// 再保存一次是更新，不产生新记录
	req, err = http.NewRequest(http.MethodPost,
		"/question/save", iox.NewJSONReader(web.SaveReq{
			Question: web.Question{
				Id:       id,
				Content:  "最近学到了什么新东西？",
				Category: "growth",
				Active:   true,
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, id, recorder.MustScan().Data)
	var count int64
	err = s.db.Model(&dao.Question{}).Count(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func (s *HandlerTestSuite) TestToday() {
	t := s.T()
	now := time.Now().UnixMilli()
	questions := []dao.Question{
		{Content: "问题一", Category: "reflection", Active: true, Ctime: now, Utime: now},
		{Content: "问题二", Category: "growth", Active: true, Ctime: now, Utime: now},
		{Content: "问题三", Category: "gratitude", Active: true, Ctime: now, Utime: now},
		// 停用的不参与选取
		{Content: "问题四", Category: "growth", Active: false, Ctime: now, Utime: now},
	}
	for i := range questions {
		require.NoError(t, s.db.Create(&questions[i]).Error)
	}

	date := time.Now().Format(time.DateOnly)
	idx := crc32.ChecksumIEEE([]byte(date)) % 3
	wantId := questions[idx].Id

	req, err := http.NewRequest(http.MethodGet, "/question/today", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, wantId, got.Id)
	assert.NotEmpty(t, got.Content)

	// 同一天内重复请求，结果稳定
	req, err = http.NewRequest(http.MethodGet, "/question/today", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, got, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestTodayEmptyPool() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/question/today", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 502002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestDetail() {
	t := s.T()
	now := time.Now().UnixMilli()
	active := dao.Question{Content: "问题一", Category: "reflection", Active: true, Ctime: now, Utime: now}
	inactive := dao.Question{Content: "问题二", Category: "growth", Active: false, Ctime: now, Utime: now}
	require.NoError(t, s.db.Create(&active).Error)
	require.NoError(t, s.db.Create(&inactive).Error)

	testCases := []struct {
		name     string
		qid      int64
		wantCode int
	}{
		{name: "启用的问题", qid: active.Id, wantCode: 0},
		{name: "停用的问题等同于不存在", qid: inactive.Id, wantCode: 502002},
		{name: "不存在的问题", qid: 10000, wantCode: 502002},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/question/detail", iox.NewJSONReader(web.Qid{Qid: tc.qid}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Question]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.qid, res.Data.Id)
			}
		})
	}
}

func (s *HandlerTestSuite) TestPubList() {
	t := s.T()
	now := time.Now().UnixMilli()
	questions := []dao.Question{
		{Content: "问题一", Category: "reflection", Active: true, Ctime: now, Utime: now},
		{Content: "问题二", Category: "growth", Active: true, Ctime: now, Utime: now},
		{Content: "问题三", Category: "growth", Active: false, Ctime: now, Utime: now},
	}
	for i := range questions {
		require.NoError(t, s.db.Create(&questions[i]).Error)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/question/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.QuestionList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data := recorder.MustScan().Data
	assert.Equal(t, int64(2), data.Total)
	assert.Len(t, data.Questions, 2)

	// 按分类过滤
	req, err = http.NewRequest(http.MethodPost,
		"/question/list", iox.NewJSONReader(web.ListReq{Offset: 0, Limit: 10, Category: "growth"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.QuestionList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	data = recorder.MustScan().Data
	assert.Equal(t, int64(1), data.Total)
}

func (s *HandlerTestSuite) TestUpdateStatus() {
	t := s.T()
	now := time.Now().UnixMilli()
	q := dao.Question{Content: "问题一", Category: "reflection", Active: true, Ctime: now, Utime: now}
	require.NoError(t, s.db.Create(&q).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/question/update-status", iox.NewJSONReader(web.UpdateStatusReq{
			Qid:    q.Id,
			Active: false,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	var after dao.Question
	require.NoError(t, s.db.Where("id = ?", q.Id).First(&after).Error)
	assert.False(t, after.Active)

	// 唯一的问题停用之后，今日一题没得选
	req, err = http.NewRequest(http.MethodGet, "/question/today", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 502002, recorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
