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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrDuplicateAnswer 撞上了 (uid, qid, answered_date) 的唯一索引。
// 并发双写时预检查拦不住，唯一索引才是兜底
var ErrDuplicateAnswer = errors.New("今天已经回答过这个问题")

//go:generate mockgen -source=./answer.go -package=daomocks -destination=mocks/answer.mock.go AnswerDAO
type AnswerDAO interface {
	Insert(ctx context.Context, a Answer) (int64, error)
	FindById(ctx context.Context, id int64) (Answer, error)
	FindByUidQidDate(ctx context.Context, uid, qid int64, date string) (Answer, error)
	Exists(ctx context.Context, uid, qid int64, date string) (bool, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Answer, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	// DistinctDates 用户答过题的所有日期，去重
	DistinctDates(ctx context.Context, uid int64) ([]string, error)
}

type GORMAnswerDAO struct {
	db *egorm.Component
}

func NewGORMAnswerDAO(db *egorm.Component) AnswerDAO {
	return &GORMAnswerDAO{db: db}
}

func (g *GORMAnswerDAO) Insert(ctx context.Context, a Answer) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := g.db.WithContext(ctx).Create(&a).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateAnswer
		}
	}
	return a.Id, err
}

func (g *GORMAnswerDAO) FindById(ctx context.Context, id int64) (Answer, error) {
	var a Answer
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *GORMAnswerDAO) FindByUidQidDate(ctx context.Context, uid, qid int64, date string) (Answer, error) {
	var a Answer
	err := g.db.WithContext(ctx).
		Where("uid = ? AND qid = ? AND answered_date = ?", uid, qid, date).
		First(&a).Error
	return a, err
}

func (g *GORMAnswerDAO) Exists(ctx context.Context, uid, qid int64, date string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Answer{}).
		Where("uid = ? AND qid = ? AND answered_date = ?", uid, qid, date).
		Count(&count).Error
	return count > 0, err
}

func (g *GORMAnswerDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Answer, error) {
	var as []Answer
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("answered_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&as).Error
	return as, err
}

func (g *GORMAnswerDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Answer{}).
		Where("uid = ?", uid).
		Count(&count).Error
	return count, err
}

func (g *GORMAnswerDAO) DistinctDates(ctx context.Context, uid int64) ([]string, error) {
	var dates []string
	err := g.db.WithContext(ctx).Model(&Answer{}).
		Where("uid = ?", uid).
		Distinct().
		Pluck("answered_date", &dates).Error
	return dates, err
}

type Answer struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"uniqueIndex:uniq_uid_qid_date,priority:1;index:idx_uid_date,priority:1"`
	Qid int64 `gorm:"uniqueIndex:uniq_uid_qid_date,priority:2"`
	// 回答正文，100 个字符的上限在 web 层校验
	Content string `gorm:"type:varchar(512);not null"`
	// AI 反馈，异步生成之前是 NULL
	Feedback sql.NullString `gorm:"type:text"`
	// 自然日，YYYY-MM-DD
	AnsweredDate string `gorm:"type:varchar(10);uniqueIndex:uniq_uid_qid_date,priority:3;index:idx_uid_date,priority:2"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (Answer) TableName() string {
	return "answers"
}
