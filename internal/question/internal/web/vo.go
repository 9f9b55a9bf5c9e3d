package web

import (
	"time"

	"github.com/ecodeclub/qcards/internal/question/internal/domain"
)

type Question struct {
	Id       int64  `json:"id,omitempty"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
	Active   bool   `json:"active,omitempty"`
	Utime    string `json:"utime,omitempty"`
}

type ListReq struct {
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Category string `json:"category,omitempty"`
}

type QuestionList struct {
	Total     int64      `json:"total,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}

type Qid struct {
	Qid int64 `json:"qid"`
}

type SaveReq struct {
	Question Question `json:"question,omitempty"`
}

type UpdateStatusReq struct {
	Qid    int64 `json:"qid"`
	Active bool  `json:"active"`
}

func (q Question) toDomain() domain.Question {
	return domain.Question{
		Id:       q.Id,
		Content:  q.Content,
		Category: q.Category,
		Active:   q.Active,
	}
}

func newQuestion(q domain.Question) Question {
	return Question{
		Id:       q.Id,
		Content:  q.Content,
		Category: q.Category,
		Active:   q.Active,
		Utime:    q.Utime.Format(time.DateTime),
	}
}
