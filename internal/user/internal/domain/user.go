package domain

type User struct {
	Id       int64
	SN       string
	Email    string
	Nickname string
	// Password bcrypt 哈希，只在注册和登录链路里携带
	Password string
	Ctime    int64
	Utime    int64
}
