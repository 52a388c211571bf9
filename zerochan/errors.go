package zerochan

import (
	"errors"
	"fmt"
)

// FailureReason 失败原因分类
type FailureReason string

const (
	// ReasonTransport 网络错误
	ReasonTransport FailureReason = "transport"
	// ReasonTimeout 请求超时
	ReasonTimeout FailureReason = "timeout"
	// ReasonHTTPStatus 非200状态码
	ReasonHTTPStatus FailureReason = "http_status"
	// ReasonUnparseable 响应既不是JSON也提取不到重定向标签
	ReasonUnparseable FailureReason = "unparseable"
	// ReasonNotFound 条目不存在
	ReasonNotFound FailureReason = "not_found"
	// ReasonNoImage 结果中没有任何可用的图片地址
	ReasonNoImage FailureReason = "no_image"
	// ReasonExhausted 所有候选标签都尝试失败
	ReasonExhausted FailureReason = "exhausted"
)

// Error 客户端对外返回的统一错误，携带失败原因分类
// 所有内部失败都在 Search/GetEntry 边界收敛为该类型，不向外抛出原始错误
type Error struct {
	Reason FailureReason
	Tag    string // 触发失败的标签，可为空
	Status int    // HTTP状态码，仅http_status时有意义
	Err    error  // 底层错误，可为空
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("zerochan: %s", e.Reason)
	if e.Tag != "" {
		msg += fmt.Sprintf(" (tag=%q)", e.Tag)
	}
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status=%d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReasonOf 提取错误中的失败原因分类，非本包产生的错误归为transport
func ReasonOf(err error) FailureReason {
	var zerr *Error
	if errors.As(err, &zerr) {
		return zerr.Reason
	}
	return ReasonTransport
}

// IsNotFound 判断错误是否属于"未找到"类失败
func IsNotFound(err error) bool {
	reason := ReasonOf(err)
	return reason == ReasonNotFound || reason == ReasonExhausted
}
