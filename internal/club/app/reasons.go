package app

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{
		Code:    c,
		Message: m,
	}
}

var (
	// 查无结果的细分原因，只用于日志与排障，不改变错误码。
	ReasonPlayerDataMissing = NewReason("PLAYER_DATA_MISSING", "球员数据文件缺失")
	ReasonPlayerUIDAbsent   = NewReason("PLAYER_UID_ABSENT", "数据中没有该 UID")
)
