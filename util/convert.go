package util

import (
	"strconv"
)

// StringToInt 将字符串转换为整数，如果转换失败则返回0
func StringToInt(s string) int {
	if s == "" {
		return 0
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// ParseInt 将字符串转换为整数，并返回是否转换成功
func ParseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}
