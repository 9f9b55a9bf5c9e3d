package errs

var (
	SystemError = ErrorCode{Code: 502001, Msg: "系统错误"}
	// QuestionNotFound 今天没有可用的问题，或者指定的问题不存在/已停用
	QuestionNotFound = ErrorCode{Code: 502002, Msg: "问题不存在"}
	InvalidInput     = ErrorCode{Code: 502003, Msg: "输入参数有误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
