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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreak(t *testing.T) {
	const today = "2025-01-15"
	testCases := []struct {
		name    string
		dates   []string
		wantRes int
	}{
		{
			name:    "没有任何回答",
			dates:   []string{},
			wantRes: 0,
		},
		{
			name:    "只回答了今天",
			dates:   []string{"2025-01-15"},
			wantRes: 1,
		},
		{
			name:    "连续三天到今天",
			dates:   []string{"2025-01-15", "2025-01-14", "2025-01-13"},
			wantRes: 3,
		},
		{
			name:    "今天没答，昨天续上",
			dates:   []string{"2025-01-14", "2025-01-13"},
			wantRes: 2,
		},
		{
			name:    "前天答过但昨天断了",
			dates:   []string{"2025-01-13"},
			wantRes: 0,
		},
		{
			name:    "今天答了但昨天有缺口",
			dates:   []string{"2025-01-15", "2025-01-13"},
			wantRes: 1,
		},
		{
			name:    "重复日期只算一天",
			dates:   []string{"2025-01-15", "2025-01-15", "2025-01-14"},
			wantRes: 2,
		},
		{
			name:    "未来的日期不做锚点",
			dates:   []string{"2025-01-20", "2025-01-16"},
			wantRes: 0,
		},
		{
			name:    "未来的日期不影响当前连续段",
			dates:   []string{"2025-01-20", "2025-01-15", "2025-01-14"},
			wantRes: 2,
		},
		{
			name:    "跨月的连续段",
			dates:   []string{"2025-01-15", "2025-01-14", "2025-01-13", "2025-01-12", "2025-01-11", "2025-01-10"},
			wantRes: 6,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Streak(tc.dates, today)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}

	t.Run("跨年的连续段", func(t *testing.T) {
		res, err := Streak([]string{"2025-01-01", "2024-12-31", "2024-12-30"}, "2025-01-01")
		require.NoError(t, err)
		assert.Equal(t, 3, res)
	})

	t.Run("非法的today", func(t *testing.T) {
		_, err := Streak([]string{"2025-01-15"}, "2025/01/15")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("集合里有脏日期要报错", func(t *testing.T) {
		_, err := Streak([]string{"2025-01-15", "not-a-date"}, "2025-01-15")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}
