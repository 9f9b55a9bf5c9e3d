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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/qcards/internal/question/internal/domain"
	"github.com/ecodeclub/qcards/internal/question/internal/repository/cache"
	"github.com/ecodeclub/qcards/internal/question/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrQuestionNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./question.go -package=repomocks -destination=mocks/question.mock.go Repository
type Repository interface {
	// Daily 当天的问题。缓存优先，未命中就从激活题池里确定性选出并回填缓存
	Daily(ctx context.Context, date string) (domain.Question, error)
	Save(ctx context.Context, q domain.Question) (int64, error)
	UpdateStatus(ctx context.Context, id int64, active bool) error
	// InvalidateDaily 题池变化之后删掉当天的缓存，让下一次请求重新选题
	InvalidateDaily(ctx context.Context, date string) error
	FindById(ctx context.Context, id int64) (domain.Question, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Question, error)
	PubList(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error)
	List(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error)
}

type CachedRepository struct {
	dao    dao.QuestionDAO
	cache  cache.DailyCache
	logger *elog.Component
}

func NewCachedRepository(d dao.QuestionDAO, c cache.DailyCache) Repository {
	return &CachedRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedRepository) Daily(ctx context.Context, date string) (domain.Question, error) {
	q, err := r.cache.GetDaily(ctx, date)
	if err == nil {
		return q, nil
	}
	qs, err := r.dao.ListActive(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	q, err = domain.ForDate(date, slice.Map(qs, func(idx int, src dao.Question) domain.Question {
		return r.toDomain(src)
	}))
	if err != nil {
		// 空题池不缓存，管理员补题之后要立刻生效
		return domain.Question{}, err
	}
	if e := r.cache.SetDaily(ctx, date, q); e != nil {
		r.logger.Error("缓存当日问题失败", elog.FieldErr(e))
	}
	return q, nil
}

func (r *CachedRepository) Save(ctx context.Context, q domain.Question) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(q))
}

func (r *CachedRepository) UpdateStatus(ctx context.Context, id int64, active bool) error {
	return r.dao.UpdateStatus(ctx, id, active)
}

func (r *CachedRepository) InvalidateDaily(ctx context.Context, date string) error {
	return r.cache.DelDaily(ctx, date)
}

func (r *CachedRepository) FindById(ctx context.Context, id int64) (domain.Question, error) {
	q, err := r.dao.FindById(ctx, id)
	return r.toDomain(q), err
}

func (r *CachedRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Question, error) {
	qs, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(qs, func(idx int, src dao.Question) domain.Question {
		return r.toDomain(src)
	}), nil
}

func (r *CachedRepository) PubList(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error) {
	qs, err := r.dao.PubList(ctx, offset, limit, category)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.PubCount(ctx, category)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(qs, func(idx int, src dao.Question) domain.Question {
		return r.toDomain(src)
	}), total, nil
}

func (r *CachedRepository) List(ctx context.Context, offset, limit int, category string) ([]domain.Question, int64, error) {
	qs, err := r.dao.List(ctx, offset, limit, category)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.dao.Count(ctx, category)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(qs, func(idx int, src dao.Question) domain.Question {
		return r.toDomain(src)
	}), total, nil
}

func (r *CachedRepository) toDomain(q dao.Question) domain.Question {
	return domain.Question{
		Id:       q.Id,
		Content:  q.Content,
		Category: q.Category,
		Active:   q.Active,
		Utime:    time.UnixMilli(q.Utime),
	}
}

func (r *CachedRepository) toEntity(q domain.Question) dao.Question {
	return dao.Question{
		Id:       q.Id,
		Content:  q.Content,
		Category: q.Category,
		Active:   q.Active,
	}
}
