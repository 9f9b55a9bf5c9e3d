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

import "time"

// MaxContentLen 回答的最大长度，按字符数算，不是字节数
const MaxContentLen = 100

type Answer struct {
	Id  int64
	Uid int64
	Qid int64
	// 回答正文，最长 MaxContentLen 个字符
	Content string
	// Feedback 预留给异步生成的 AI 反馈，生成之前是空的
	Feedback string
	// AnsweredDate 回答落在哪个自然日，YYYY-MM-DD。
	// (Uid, Qid, AnsweredDate) 三元组唯一：一道题一天只能答一次
	AnsweredDate string
	Utime        time.Time
}

type Stats struct {
	// 总回答数
	Total int64
	// 连续回答天数
	StreakDays int
	// 今天是否已经回答过
	AnsweredToday bool
}
