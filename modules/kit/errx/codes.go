package errx

import "errors"

// 这里定义各模块共用的系统类错误码。
//
// 约束：
// - 系统类错误码只描述“技术/数据层面”的失败（文件损坏、依赖不可用等），便于日志归类
// - 业务域错误码（例如 CLUB_PLAYER_NOT_FOUND）由各业务包自行定义，不放在 kit 里

const (
	// CodeInternal 表示不可预期的内部错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 表示依赖不可用（数据目录不可访问、监听器无法创建等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeDataCorrupt 表示数据文件存在但内容无法解析。
	CodeDataCorrupt Code = "DATA_CORRUPT"
	// CodeReqParamError 表示调用方传入的参数不合法。
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
)

// 统一系统类哨兵错误（通过 WithData/WithCause 派生新对象，禁止直接修改）。
var (
	ErrInternal    = NewSys(CodeInternal, "内部错误")
	ErrUnavailable = NewSys(CodeUnavailable, "依赖不可用")
	ErrDataCorrupt = NewSys(CodeDataCorrupt, "数据文件已损坏")
	ErrReqParamERR = NewSys(CodeReqParamError, "请求参数错误")
)

// IsSys 判断错误链中是否存在系统类错误。
func IsSys(err error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e != nil && e.kind == kindSys {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
