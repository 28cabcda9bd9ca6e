package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 管理员相关错误码 (101xxx).
const (
	// ErrAdminNotFound - 404: 管理员不存在.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 400: 管理员已存在.
	ErrAdminAlreadyExist
	// ErrAdminPasswordIncorrect - 401: 管理员密码错误.
	ErrAdminPasswordIncorrect
)

// 房屋组相关错误码 (102xxx).
const (
	// ErrHouseNotFound - 404: 房屋组不存在.
	ErrHouseNotFound int = iota + 102000
	// ErrHouseAlreadyExist - 400: 房屋组已存在.
	ErrHouseAlreadyExist
	// ErrHouseAtCapacity - 400: 房屋组席位已满.
	ErrHouseAtCapacity
)

// 成员相关错误码 (103xxx).
const (
	// ErrMemberNotFound - 404: 成员不存在.
	ErrMemberNotFound int = iota + 103000
	// ErrMemberAlreadyExist - 400: 成员已存在.
	ErrMemberAlreadyExist
)

// 报名记录相关错误码 (104xxx).
const (
	// ErrInfoLogNotFound - 404: 报名记录不存在.
	ErrInfoLogNotFound int = iota + 104000
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
