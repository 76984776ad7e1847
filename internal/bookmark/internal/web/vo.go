package web

type IdReq struct {
	Cid int64 `json:"cid"`
}

type BookmarkVO struct {
	Cid       int64  `json:"cid"`
	Title     string `json:"title"`
	Platform  string `json:"platform"`
	StartTime int64  `json:"startTime"`
	Duration  int64  `json:"duration"`
	Link      string `json:"link"`
	Status    string `json:"status"`
}
