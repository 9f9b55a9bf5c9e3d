package errs

var (
	SystemError = ErrorCode{Code: 501001, Msg: "系统错误"}
	// InvalidUserOrPassword 不区分是邮箱不存在还是密码错误，避免撞库
	InvalidUserOrPassword = ErrorCode{Code: 501002, Msg: "邮箱或者密码不正确"}
	UserDuplicate         = ErrorCode{Code: 501003, Msg: "邮箱已经被注册"}
	InvalidInput          = ErrorCode{Code: 501004, Msg: "输入参数有误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
