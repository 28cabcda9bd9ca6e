package utils

import "github.com/google/uuid"

// NewTraceID 生成一个用于追踪单次操作的UUID
func NewTraceID() string {
	return uuid.NewString()
}
