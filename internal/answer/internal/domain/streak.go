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

package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate 日期必须是 YYYY-MM-DD，出现脏数据时大声报错而不是悄悄跳过
var ErrInvalidDate = errors.New("非法的日期")

// Streak 计算截止 today 的连续回答天数。
//
// 锚点是 today；今天还没回答的话退一步用昨天，连续记录不算断。
// 从锚点开始一天天往回数，遇到第一个没回答的日子就停。
// 今天和昨天都没回答时结果是 0，更早的连续段不算"当前"的连续记录。
// answeredDates 里晚于 today 的日期不会成为锚点，自然也不参与计数。
func Streak(answeredDates []string, today string) (int, error) {
	day, err := time.Parse(time.DateOnly, today)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, today)
	}
	set := make(map[string]struct{}, len(answeredDates))
	for _, d := range answeredDates {
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDate, d)
		}
		set[d] = struct{}{}
	}
	anchor := day
	if _, ok := set[anchor.Format(time.DateOnly)]; !ok {
		anchor = anchor.AddDate(0, 0, -1)
		if _, ok := set[anchor.Format(time.DateOnly)]; !ok {
			return 0, nil
		}
	}
	streak := 0
	for cur := anchor; ; cur = cur.AddDate(0, 0, -1) {
		if _, ok := set[cur.Format(time.DateOnly)]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}
