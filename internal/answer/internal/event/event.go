package event

// AnswerSubmittedEvent 给未来的异步 AI 反馈生成用，现在只负责发出去
type AnswerSubmittedEvent struct {
	Aid int64 `json:"aid"`
	Uid int64 `json:"uid"`
	Qid int64 `json:"qid"`
}

func (AnswerSubmittedEvent) Topic() string {
	return "answer_submitted_events"
}
