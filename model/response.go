package model

// Segment 回复消息段，对应聊天宿主的文本/图片消息组件
type Segment struct {
	Type string `json:"type" sonic:"type"` // text 或 image
	Text string `json:"text,omitempty" sonic:"text,omitempty"`
	URL  string `json:"url,omitempty" sonic:"url,omitempty"`
}

// Message 回复消息链，按顺序发送给聊天宿主
type Message []Segment

// TextSegment 创建文本消息段
func TextSegment(text string) Segment {
	return Segment{Type: "text", Text: text}
}

// ImageSegment 创建图片消息段
func ImageSegment(url string) Segment {
	return Segment{Type: "image", URL: url}
}

// NewTextMessage 创建只包含一段文本的消息链
func NewTextMessage(text string) Message {
	return Message{TextSegment(text)}
}

// Response API通用响应
type Response struct {
	Code    int         `json:"code" sonic:"code"`
	Message string      `json:"message" sonic:"message"`
	Data    interface{} `json:"data,omitempty" sonic:"data,omitempty"`
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, message string) Response {
	return Response{
		Code:    code,
		Message: message,
	}
}
