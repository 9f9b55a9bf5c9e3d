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
	"hash/crc32"
	"sort"
	"time"
)

var (
	// ErrNoActiveQuestion 题池是空的，当天无题可选
	ErrNoActiveQuestion = errors.New("没有可用的问题")
	// ErrInvalidDate 日期必须是 YYYY-MM-DD
	ErrInvalidDate = errors.New("非法的日期")
)

// ForDate 按日期从题池中确定性地选出当天的问题。
//
// 对外契约：对 YYYY-MM-DD 字符串的字节做 CRC-32（IEEE 多项式），
// 再对题目数取模，得到的下标落在按 Id 升序排好的题池上。
// 同一天加同一题池永远得到同一道题，与入参顺序无关；
// 题池变化（新增、停用）之后，历史日期可能映射到另一道题，这是预期行为。
func ForDate(date string, questions []Question) (Question, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return Question{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if len(questions) == 0 {
		return Question{}, ErrNoActiveQuestion
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	sort.Slice(qs, func(i, j int) bool {
		return qs[i].Id < qs[j].Id
	})
	idx := crc32.ChecksumIEEE([]byte(date)) % uint32(len(qs))
	return qs[idx], nil
}
