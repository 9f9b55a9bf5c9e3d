package errs

var (
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
	// DuplicateAnswer 一道题一天只能回答一次
	DuplicateAnswer     = ErrorCode{Code: 503002, Msg: "今天已经回答过这个问题了"}
	QuestionUnavailable = ErrorCode{Code: 503003, Msg: "这个问题现在不可用"}
	InvalidInput        = ErrorCode{Code: 503004, Msg: "输入参数有误"}
	AnswerNotFound      = ErrorCode{Code: 503005, Msg: "回答不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
