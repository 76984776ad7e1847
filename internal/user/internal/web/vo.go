package web

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Id       int64  `json:"id"`
	SN       string `json:"sn"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}
