package web

import (
	"time"

	"github.com/ecodeclub/qcards/internal/answer/internal/domain"
)

type SubmitReq struct {
	Qid     int64  `json:"qid"`
	Content string `json:"content"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Aid struct {
	Aid int64 `json:"aid"`
}

type Answer struct {
	Id           int64  `json:"id,omitempty"`
	Qid          int64  `json:"qid,omitempty"`
	Content      string `json:"content,omitempty"`
	Feedback     string `json:"feedback,omitempty"`
	AnsweredDate string `json:"answeredDate,omitempty"`
	Utime        string `json:"utime,omitempty"`

	// 所回答的问题，列表和详情里顺带返回，免得前端再查一次
	Question Question `json:"question,omitempty"`
}

type Question struct {
	Id       int64  `json:"id,omitempty"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
}

type AnswerList struct {
	Total   int64    `json:"total,omitempty"`
	Answers []Answer `json:"answers,omitempty"`
}

// TodayResp 今日一题的聚合视图
type TodayResp struct {
	Question Question `json:"question,omitempty"`
	Answered bool     `json:"answered"`
	Answer   Answer   `json:"answer,omitempty"`
}

type StatsResp struct {
	Total         int64 `json:"total"`
	StreakDays    int   `json:"streakDays"`
	AnsweredToday bool  `json:"answeredToday"`
}

func newAnswer(a domain.Answer) Answer {
	return Answer{
		Id:           a.Id,
		Qid:          a.Qid,
		Content:      a.Content,
		Feedback:     a.Feedback,
		AnsweredDate: a.AnsweredDate,
		Utime:        a.Utime.Format(time.DateTime),
	}
}
