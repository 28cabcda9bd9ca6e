package code

// codeMessages 错误码对应的消息.
var codeMessages = map[int]string{
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "令牌无效",
	ErrTooManyRequests: "请求频率过高，请稍后再试",

	ErrAdminNotFound:          "管理员不存在",
	ErrAdminAlreadyExist:      "管理员已存在",
	ErrAdminPasswordIncorrect: "管理员密码错误",

	ErrHouseNotFound:     "房屋组不存在",
	ErrHouseAlreadyExist: "房屋组已存在",
	ErrHouseAtCapacity:   "房屋组席位已满",

	ErrMemberNotFound:     "成员不存在",
	ErrMemberAlreadyExist: "成员已存在",

	ErrInfoLogNotFound: "报名记录不存在",

	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// codeStatus 错误码对应的HTTP状态码.
var codeStatus = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrAdminNotFound:          StatusNotFound,
	ErrAdminAlreadyExist:      StatusBadRequest,
	ErrAdminPasswordIncorrect: StatusUnauthorized,

	ErrHouseNotFound:     StatusNotFound,
	ErrHouseAlreadyExist: StatusBadRequest,
	ErrHouseAtCapacity:   StatusBadRequest,

	ErrMemberNotFound:     StatusNotFound,
	ErrMemberAlreadyExist: StatusBadRequest,

	ErrInfoLogNotFound: StatusNotFound,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息.
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return codeMessages[ErrUnknown]
}

// GetStatus 获取错误码对应的HTTP状态码.
func GetStatus(code int) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return StatusInternalServerError
}
