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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/qcards/internal/answer/internal/domain"
	"github.com/ecodeclub/qcards/internal/answer/internal/event"
	"github.com/ecodeclub/qcards/internal/answer/internal/repository"
	"github.com/ecodeclub/qcards/internal/question"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateAnswer = repository.ErrDuplicateAnswer
	ErrAnswerNotFound  = repository.ErrAnswerNotFound
	// ErrQuestionUnavailable 问题不存在或者已经停用
	ErrQuestionUnavailable = errors.New("问题不可用")
)

//go:generate mockgen -source=./answer.go -package=svcmocks -destination=mocks/answer.mock.go Service
type Service interface {
	// Submit 提交回答。a.AnsweredDate 由 web 层传入。
	// 重复提交返回 ErrDuplicateAnswer，不会产生第二条记录
	Submit(ctx context.Context, a domain.Answer) (domain.Answer, error)
	// TodayAnswer 当天对某道题的回答，没有时 found 为 false
	TodayAnswer(ctx context.Context, uid, qid int64, date string) (a domain.Answer, found bool, err error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, int64, error)
	// Detail 只能看自己的回答，看别人的等同于不存在
	Detail(ctx context.Context, uid, id int64) (domain.Answer, error)
	Stats(ctx context.Context, uid int64, today string) (domain.Stats, error)
}

type service struct {
	repo     repository.AnswerRepository
	queSvc   question.Service
	producer *event.AnswerEventProducer
	logger   *elog.Component
}

func NewService(repo repository.AnswerRepository,
	queSvc question.Service,
	producer *event.AnswerEventProducer) Service {
	return &service{
		repo:     repo,
		queSvc:   queSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	_, err := s.queSvc.PubDetail(ctx, a.Qid)
	if errors.Is(err, question.ErrQuestionNotFound) {
		return domain.Answer{}, ErrQuestionUnavailable
	}
	if err != nil {
		return domain.Answer{}, err
	}
	// 预检查只是提前给出友好的报错，
	// 两个请求同时通过这里时由唯一索引兜底
	answered, err := s.repo.HasAnswered(ctx, a.Uid, a.Qid, a.AnsweredDate)
	if err != nil {
		return domain.Answer{}, err
	}
	if answered {
		return domain.Answer{}, ErrDuplicateAnswer
	}
	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return domain.Answer{}, err
	}
	a.Id = id

	// 给将来的异步 AI 反馈投递消息，失败不影响提交
	evt := event.AnswerSubmittedEvent{Aid: id, Uid: a.Uid, Qid: a.Qid}
	if e := s.producer.Produce(ctx, evt); e != nil {
		s.logger.Error("发送回答提交消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return a, nil
}

func (s *service) TodayAnswer(ctx context.Context, uid, qid int64, date string) (domain.Answer, bool, error) {
	a, err := s.repo.FindByUidQidDate(ctx, uid, qid, date)
	if errors.Is(err, repository.ErrAnswerNotFound) {
		return domain.Answer{}, false, nil
	}
	if err != nil {
		return domain.Answer{}, false, err
	}
	return a, true, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Answer, int64, error) {
	var (
		eg    errgroup.Group
		as    []domain.Answer
		total int64
	)
	eg.Go(func() error {
		var err error
		as, err = s.repo.ListByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return as, total, nil
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Answer, error) {
	a, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Answer{}, err
	}
	if a.Uid != uid {
		return domain.Answer{}, ErrAnswerNotFound
	}
	return a, nil
}

func (s *service) Stats(ctx context.Context, uid int64, today string) (domain.Stats, error) {
	var (
		eg    errgroup.Group
		total int64
		dates []string
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		dates, err = s.repo.AnsweredDates(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Stats{}, err
	}
	streak, err := domain.Streak(dates, today)
	if err != nil {
		return domain.Stats{}, err
	}
	answeredToday := false
	for _, d := range dates {
		if d == today {
			answeredToday = true
			break
		}
	}
	return domain.Stats{
		Total:         total,
		StreakDays:    streak,
		AnsweredToday: answeredToday,
	}, nil
}
