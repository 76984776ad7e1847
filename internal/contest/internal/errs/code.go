package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "系统错误"}
	ContestNotFound = ErrorCode{Code: 502002, Msg: "比赛不存在"}
	InvalidInput    = ErrorCode{Code: 502003, Msg: "非法输入"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
