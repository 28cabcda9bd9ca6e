package utils

import (
	"fmt"
	"time"
)

// 请求中日期字段接受的格式
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate 解析请求中的日期字符串。空字符串返回nil，表示未提供。
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("无法解析日期: %s", value)
}
