package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidCredentials = ErrorCode{Code: 501002, Msg: "邮箱或密码不对"}
	DuplicateUser      = ErrorCode{Code: 501003, Msg: "邮箱已被注册"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
