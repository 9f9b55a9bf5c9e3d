package domain

type User struct {
	Id       int64
	SN       string
	Email    string
	// Password 是加密后的密码，只在登录注册链路上使用，永远不会返回给前端
	Password string
	Nickname string
	Avatar   string
}
