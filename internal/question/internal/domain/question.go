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

type Question struct {
	Id      int64
	Content string
	// 分类标签，比如"自己表現"、"キャリア観"
	Category string
	// 只有激活状态的问题才会进入每日选题池。
	// 问题永远不会被删除，只会被停用，因为历史回答还引用着它
	Active bool
	Utime  time.Time
}
