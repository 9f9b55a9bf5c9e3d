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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/qcards/internal/question/internal/domain"
	"github.com/pkg/errors"
)

var ErrDailyNotFound = errors.New("当日问题没有缓存")

const expiration = 24 * time.Hour

//go:generate mockgen -source=./daily.go -package=cachemocks -destination=mocks/daily.mock.go DailyCache
type DailyCache interface {
	GetDaily(ctx context.Context, date string) (domain.Question, error)
	SetDaily(ctx context.Context, date string, q domain.Question) error
	DelDaily(ctx context.Context, date string) error
}

// DailyECache 当天的问题对所有用户一致，按日期整缓存一份
type DailyECache struct {
	ec ecache.Cache
}

func NewDailyECache(ec ecache.Cache) DailyCache {
	return &DailyECache{
		ec: &ecache.NamespaceCache{
			Namespace: "question:",
			C:         ec,
		},
	}
}

func (c *DailyECache) GetDaily(ctx context.Context, date string) (domain.Question, error) {
	val := c.ec.Get(ctx, c.dailyKey(date))
	if val.KeyNotFound() {
		return domain.Question{}, ErrDailyNotFound
	}
	if val.Err != nil {
		return domain.Question{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var q domain.Question
	err := json.Unmarshal([]byte(val.Val.(string)), &q)
	if err != nil {
		return domain.Question{}, errors.Wrap(err, "反序列化问题失败")
	}
	return q, nil
}

func (c *DailyECache) SetDaily(ctx context.Context, date string, q domain.Question) error {
	data, err := json.Marshal(q)
	if err != nil {
		return errors.Wrap(err, "序列化问题失败")
	}
	return c.ec.Set(ctx, c.dailyKey(date), string(data), expiration)
}

func (c *DailyECache) DelDaily(ctx context.Context, date string) error {
	_, err := c.ec.Delete(ctx, c.dailyKey(date))
	return err
}

func (c *DailyECache) dailyKey(date string) string {
	return fmt.Sprintf("daily:%s", date)
}
