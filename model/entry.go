package model

// ImageEntry Zerochan图片条目，字段与上游JSON返回一一对应
type ImageEntry struct {
	ID        int64    `json:"id" sonic:"id"`
	Image     string   `json:"image,omitempty" sonic:"image,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty" sonic:"thumbnail,omitempty"`
	Src       string   `json:"src,omitempty" sonic:"src,omitempty"`
	URL       string   `json:"url,omitempty" sonic:"url,omitempty"`
	Width     int      `json:"width,omitempty" sonic:"width,omitempty"`
	Height    int      `json:"height,omitempty" sonic:"height,omitempty"`
	Size      int64    `json:"size,omitempty" sonic:"size,omitempty"`
	Source    string   `json:"source,omitempty" sonic:"source,omitempty"`
	Author    string   `json:"author,omitempty" sonic:"author,omitempty"`
	Tag       string   `json:"tag,omitempty" sonic:"tag,omitempty"`
	Tags      []string `json:"tags,omitempty" sonic:"tags,omitempty"`
}

// 图片地址字段的回退顺序，来自上游实际返回行为
// 上游文档未说明，如遇字段调整需同步更新
var imageFieldOrder = []func(*ImageEntry) string{
	func(e *ImageEntry) string { return e.Image },
	func(e *ImageEntry) string { return e.Thumbnail },
	func(e *ImageEntry) string { return e.Src },
	func(e *ImageEntry) string { return e.URL },
}

// BestImage 按固定优先级返回条目中第一个非空的图片地址
// 优先级为 image > thumbnail > src > url，全部为空时返回空字符串
func (e *ImageEntry) BestImage() string {
	for _, field := range imageFieldOrder {
		if url := field(e); url != "" {
			return url
		}
	}
	return ""
}

// SearchResult 一次标签搜索的结果
// ResolvedTag 记录实际命中的候选标签，可能与用户输入不同
type SearchResult struct {
	Items       []ImageEntry `json:"items" sonic:"items"`
	Total       int          `json:"total" sonic:"total"`
	ResolvedTag string       `json:"resolved_tag,omitempty" sonic:"resolved_tag,omitempty"`
}
