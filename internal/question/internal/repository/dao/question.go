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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./question.go -package=daomocks -destination=mocks/question.mock.go QuestionDAO
type QuestionDAO interface {
	Save(ctx context.Context, q Question) (int64, error)
	UpdateStatus(ctx context.Context, id int64, active bool) error
	FindById(ctx context.Context, id int64) (Question, error)
	FindByIds(ctx context.Context, ids []int64) ([]Question, error)
	// ListActive 当天选题用的题池，按 Id 升序
	ListActive(ctx context.Context) ([]Question, error)
	PubList(ctx context.Context, offset, limit int, category string) ([]Question, error)
	PubCount(ctx context.Context, category string) (int64, error)
	List(ctx context.Context, offset, limit int, category string) ([]Question, error)
	Count(ctx context.Context, category string) (int64, error)
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) Save(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"content", "category", "is_active", "utime"}),
	}).Create(&q).Error
	return q.Id, err
}

func (g *GORMQuestionDAO) UpdateStatus(ctx context.Context, id int64, active bool) error {
	return g.db.WithContext(ctx).
		Model(&Question{}).
		Where("id = ?", id).Updates(map[string]any{
		"is_active": active,
		"utime":     time.Now().UnixMilli(),
	}).Error
}

func (g *GORMQuestionDAO) FindById(ctx context.Context, id int64) (Question, error) {
	var q Question
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	return q, err
}

func (g *GORMQuestionDAO) FindByIds(ctx context.Context, ids []int64) ([]Question, error) {
	var qs []Question
	err := g.db.WithContext(ctx).Find(&qs, "id IN ?", ids).Error
	return qs, err
}

func (g *GORMQuestionDAO) ListActive(ctx context.Context) ([]Question, error) {
	var qs []Question
	err := g.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&qs).Error
	return qs, err
}

func (g *GORMQuestionDAO) PubList(ctx context.Context, offset, limit int, category string) ([]Question, error) {
	var qs []Question
	builder := g.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		builder = builder.Where("category = ?", category)
	}
	err := builder.Order("id DESC").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, err
}

func (g *GORMQuestionDAO) PubCount(ctx context.Context, category string) (int64, error) {
	var count int64
	builder := g.db.WithContext(ctx).Model(&Question{}).Where("is_active = ?", true)
	if category != "" {
		builder = builder.Where("category = ?", category)
	}
	err := builder.Count(&count).Error
	return count, err
}

func (g *GORMQuestionDAO) List(ctx context.Context, offset, limit int, category string) ([]Question, error) {
	var qs []Question
	builder := g.db.WithContext(ctx)
	if category != "" {
		builder = builder.Where("category = ?", category)
	}
	err := builder.Order("id DESC").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, err
}

func (g *GORMQuestionDAO) Count(ctx context.Context, category string) (int64, error) {
	var count int64
	builder := g.db.WithContext(ctx).Model(&Question{})
	if category != "" {
		builder = builder.Where("category = ?", category)
	}
	err := builder.Count(&count).Error
	return count, err
}

type Question struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Content  string `gorm:"type:varchar(512);not null"`
	Category string `gorm:"type:varchar(128);index:idx_category"`
	Active   bool   `gorm:"column:is_active;index:idx_is_active;default:true"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (Question) TableName() string {
	return "questions"
}
