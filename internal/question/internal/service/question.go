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

	"github.com/ecodeclub/qcards/internal/question/internal/domain"
	"github.com/ecodeclub/qcards/internal/question/internal/repository"
)

var (
	ErrNoActiveQuestion = domain.ErrNoActiveQuestion
	ErrQuestionNotFound = repository.ErrQuestionNotFound
)

//go:generate mockgen -source=./question.go -package=svcmocks -destination=mocks/question.mock.go Service
type Service interface {
	// Today 当天的问题，date 由 web 层传入，格式 YYYY-MM-DD。
	// 题池为空返回 ErrNoActiveQuestion
	Today(ctx context.Context, date string) (domain.Question, error)
	// PubDetail 只允许看激活状态的问题
	PubDetail(ctx context.Context, id int64) (domain.Question, error)
	PubList(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error)
	// ListByIds 给别的模块拼数据用，不管激活状态
	ListByIds(ctx context.Context, ids []int64) ([]domain.Question, error)

	// 下面是管理端的

	// Save 新建或者更新问题，date 是调用发生的当天，用来失效当日缓存
	Save(ctx context.Context, q domain.Question, date string) (int64, error)
	UpdateStatus(ctx context.Context, id int64, active bool, date string) error
	List(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error)
	Detail(ctx context.Context, id int64) (domain.Question, error)
}

type service struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Today(ctx context.Context, date string) (domain.Question, error) {
	return s.repo.Daily(ctx, date)
}

func (s *service) PubDetail(ctx context.Context, id int64) (domain.Question, error) {
	q, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	if !q.Active {
		return domain.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

func (s *service) PubList(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error) {
	return s.repo.PubList(ctx, offset, limit, category)
}

func (s *service) ListByIds(ctx context.Context, ids []int64) ([]domain.Question, error) {
	return s.repo.FindByIds(ctx, ids)
}

func (s *service) Save(ctx context.Context, q domain.Question, date string) (int64, error) {
	id, err := s.repo.Save(ctx, q)
	if err != nil {
		return 0, err
	}
	// 题池变了，当天的选题结果可能跟着变
	return id, s.repo.InvalidateDaily(ctx, date)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, active bool, date string) error {
	err := s.repo.UpdateStatus(ctx, id, active)
	if err != nil {
		return err
	}
	return s.repo.InvalidateDaily(ctx, date)
}

func (s *service) List(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error) {
	return s.repo.List(ctx, offset, limit, category)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Question, error) {
	return s.repo.FindById(ctx, id)
}
