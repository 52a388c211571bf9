package zerochan

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jsonutil "github.com/vmoranv/astrbot-plugin-zerochan/util/json"
)

// 页面标题中的站名后缀，重定向页的标题形如 "Furina de Fontaine - Zerochan Anime Image Board"
const titleSuffixMarker = " - Zerochan"

// FetchOutcome 单次上游请求的分类结果，三种实现恰好对应三种互斥状态
type FetchOutcome interface {
	fetchOutcome()
}

// StructuredData 上游返回了JSON数据
type StructuredData struct {
	Payload []byte // 原始JSON字节
	URL     string // 实际响应的URL（重定向后的最终地址）
}

// RedirectTag 上游返回了规范标签页面的HTML，从中提取出了修正后的标签
type RedirectTag struct {
	Tag string
}

// FetchFailure 本次请求既没有数据也没有可提取的标签
type FetchFailure struct {
	Reason FailureReason
	Status int // HTTP状态码，仅http_status时有意义
}

func (StructuredData) fetchOutcome() {}
func (RedirectTag) fetchOutcome()    {}
func (FetchFailure) fetchOutcome()   {}

// Classify 对一次HTTP响应进行分类
// 非200一律视为失败，不检查响应体；200则先按JSON解析，
// 失败后把响应体当作HTML尝试提取规范标签；对任意输入都不会panic
func Classify(status int, body []byte, resolvedURL string) FetchOutcome {
	if status != http.StatusOK {
		return FetchFailure{Reason: ReasonHTTPStatus, Status: status}
	}

	// Zerochan有时返回JSON但Content-Type不正确，因此只看内容不看头
	if jsonutil.Valid(body) {
		return StructuredData{Payload: body, URL: resolvedURL}
	}

	if tag := extractRedirectTag(body); tag != "" {
		return RedirectTag{Tag: tag}
	}

	return FetchFailure{Reason: ReasonUnparseable, Status: status}
}

// extractRedirectTag 从规范标签页的HTML中提取修正后的标签
// 优先从<title>取（去掉站名后缀），其次取canonical链接的路径段
// 提取不到返回空字符串，属于正常情况
func extractRedirectTag(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	// 方式一：页面标题
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if idx := strings.Index(title, titleSuffixMarker); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}

	// 方式二：canonical链接
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		return tagFromCanonicalURL(href)
	}

	return ""
}

// tagFromCanonicalURL 从canonical链接中还原标签
// 路径最后一段即标签本身，"+"还原为空格
func tagFromCanonicalURL(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	// 先取未解码的路径再切分，防止标签里转义过的"/"或空格干扰定位
	segment := parsed.EscapedPath()
	if idx := strings.LastIndex(segment, "/"); idx >= 0 {
		segment = segment[idx+1:]
	}
	if unescaped, err := url.PathUnescape(segment); err == nil {
		segment = unescaped
	}

	return strings.TrimSpace(strings.ReplaceAll(segment, "+", " "))
}
