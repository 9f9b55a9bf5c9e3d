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

package web

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcards/internal/answer/internal/domain"
	"github.com/ecodeclub/qcards/internal/answer/internal/service"
	"github.com/ecodeclub/qcards/internal/question"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	queSvc question.Service
}

func NewHandler(svc service.Service, queSvc question.Service) *Handler {
	return &Handler{
		svc:    svc,
		queSvc: queSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	answers := server.Group("/answer")
	answers.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	answers.GET("/today", ginx.S(h.Today))
	answers.POST("/list", ginx.BS[ListReq](h.List))
	answers.POST("/detail", ginx.BS[Aid](h.Detail))
	answers.GET("/stats", ginx.S(h.Stats))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	content := strings.TrimSpace(req.Content)
	if req.Qid <= 0 || content == "" ||
		utf8.RuneCountInString(content) > domain.MaxContentLen {
		return invalidInputResult, nil
	}
	date := time.Now().Format(time.DateOnly)
	a, err := h.svc.Submit(ctx, domain.Answer{
		Uid:          sess.Claims().Uid,
		Qid:          req.Qid,
		Content:      content,
		AnsweredDate: date,
	})
	switch {
	case errors.Is(err, service.ErrQuestionUnavailable):
		return questionUnavailableResult, nil
	case errors.Is(err, service.ErrDuplicateAnswer):
		// 幂等冲突，不算系统错误
		return duplicateAnswerResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newAnswer(a),
	}, nil
}

// Today 今日一题 + 自己是否已答、答了什么，一次拿全
func (h *Handler) Today(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	date := time.Now().Format(time.DateOnly)
	q, err := h.queSvc.Today(ctx, date)
	if errors.Is(err, question.ErrNoActiveQuestion) {
		return questionUnavailableResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	resp := TodayResp{
		Question: Question{
			Id:       q.Id,
			Content:  q.Content,
			Category: q.Category,
		},
	}
	a, found, err := h.svc.TodayAnswer(ctx, sess.Claims().Uid, q.Id, date)
	if err != nil {
		return systemErrorResult, err
	}
	if found {
		resp.Answered = true
		resp.Answer = newAnswer(a)
	}
	return ginx.Result{
		Data: resp,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	as, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	qm, err := h.questionsOf(ctx, as)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AnswerList{
			Total: total,
			Answers: slice.Map(as, func(idx int, src domain.Answer) Answer {
				res := newAnswer(src)
				res.Question = qm[src.Qid]
				return res
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req Aid, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Detail(ctx, sess.Claims().Uid, req.Aid)
	if errors.Is(err, service.ErrAnswerNotFound) {
		return answerNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	res := newAnswer(a)
	qm, err := h.questionsOf(ctx, []domain.Answer{a})
	if err != nil {
		return systemErrorResult, err
	}
	res.Question = qm[a.Qid]
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	today := time.Now().Format(time.DateOnly)
	st, err := h.svc.Stats(ctx, sess.Claims().Uid, today)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StatsResp{
			Total:         st.Total,
			StreakDays:    st.StreakDays,
			AnsweredToday: st.AnsweredToday,
		},
	}, nil
}

// questionsOf 批量捞出回答对应的问题，停用的问题也要能看到题干
func (h *Handler) questionsOf(ctx *ginx.Context, as []domain.Answer) (map[int64]Question, error) {
	qids := slice.Map(as, func(idx int, src domain.Answer) int64 {
		return src.Qid
	})
	qs, err := h.queSvc.ListByIds(ctx, qids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]Question, len(qs))
	for _, q := range qs {
		res[q.Id] = Question{
			Id:       q.Id,
			Content:  q.Content,
			Category: q.Category,
		}
	}
	return res, nil
}
