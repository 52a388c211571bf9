package model

// SearchQuery 一次搜索命令的查询参数，构造后不再修改
type SearchQuery struct {
	Tag        string `json:"tag" binding:"required"` // 搜索标签
	Page       int    `json:"page"`                   // 页码
	Limit      int    `json:"limit"`                  // 每页数量 (1-250)
	Sort       string `json:"sort"`                   // 排序方式 (id|fav)
	Strict     bool   `json:"strict"`                 // 是否严格模式
	Dimensions string `json:"dimensions"`             // 尺寸过滤 (large|huge|landscape|portrait|square)
	Color      string `json:"color"`                  // 颜色过滤
	TimeRange  *int   `json:"time_range"`             // 时间范围 (0|1|2)，nil表示不过滤
}

// 合法的排序方式
var validSorts = map[string]bool{
	"id":  true,
	"fav": true,
}

// 合法的尺寸过滤值
var validDimensions = map[string]bool{
	"large":     true,
	"huge":      true,
	"landscape": true,
	"portrait":  true,
	"square":    true,
}

// IsValidSort 检查排序方式是否合法
func IsValidSort(sort string) bool {
	return validSorts[sort]
}

// IsValidDimensions 检查尺寸过滤值是否合法
func IsValidDimensions(dimensions string) bool {
	return validDimensions[dimensions]
}

// IsValidLimit 检查每页数量是否在上游允许的范围内
func IsValidLimit(limit int) bool {
	return limit >= 1 && limit <= 250
}

// IsValidTimeRange 检查时间范围取值是否合法
func IsValidTimeRange(timeRange int) bool {
	return timeRange >= 0 && timeRange <= 2
}
