package zerochan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmoranv/astrbot-plugin-zerochan/config"
	"github.com/vmoranv/astrbot-plugin-zerochan/model"
	"github.com/vmoranv/astrbot-plugin-zerochan/util"
	jsonutil "github.com/vmoranv/astrbot-plugin-zerochan/util/json"
)

const (
	// DefaultBaseURL Zerochan官方站点地址
	DefaultBaseURL = "https://www.zerochan.net"
	// UserAgentBase User-Agent前缀，Zerochan要求API调用方可被识别
	UserAgentBase = "AstrBot-Zerochan-Plugin"
	// DefaultTimeout 单次请求默认超时时间
	DefaultTimeout = 30 * time.Second

	// 固定请求英文页面，保证标题和canonical链接的格式稳定
	langCookie = "z_lang=en"
)

// Client Zerochan API客户端
// 每次调用独立发起请求，不在调用之间共享任何可变状态
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Timeout    time.Duration
	Pick       PickFunc // 回复时在多张图片中选取一张的策略
}

// NewClient 根据全局配置创建客户端
func NewClient() *Client {
	baseURL := DefaultBaseURL
	username := "AstrBotUser"
	timeout := DefaultTimeout
	if config.AppConfig != nil {
		baseURL = config.AppConfig.BaseURL
		username = config.AppConfig.Username
		timeout = config.AppConfig.RequestTimeout
	}

	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  fmt.Sprintf("%s - %s", UserAgentBase, username),
		HTTPClient: util.GetHTTPClient(),
		Timeout:    timeout,
		Pick:       RandomPick,
	}
}

// Search 执行标签搜索
// 依次尝试生成的候选标签，拿到JSON结果即停；上游把不精确的标签
// 301到规范标签页并返回HTML时，从页面中提取修正后的标签补发一次请求
func (c *Client) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	candidates := GenerateCandidates(query.Tag)
	// 已尝试过的标签集合，防止互相重定向的标签造成死循环
	tried := make(map[string]bool)

	for _, candidate := range candidates {
		if tried[candidate] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, &Error{Reason: ReasonTransport, Tag: query.Tag, Err: err}
		}
		tried[candidate] = true

		switch o := c.fetch(ctx, c.buildSearchURL(candidate, query)).(type) {
		case StructuredData:
			if result, ok := decodeSearch(o.Payload, candidate); ok {
				return result, nil
			}
		case RedirectTag:
			// 只追一层重定向，失败后回到下一个原始候选
			if tried[o.Tag] {
				continue
			}
			tried[o.Tag] = true
			if err := ctx.Err(); err != nil {
				return nil, &Error{Reason: ReasonTransport, Tag: query.Tag, Err: err}
			}
			log.Printf("[Zerochan] 标签 %q 被上游修正为 %q，按新标签重试", candidate, o.Tag)
			if data, ok := c.fetch(ctx, c.buildSearchURL(o.Tag, query)).(StructuredData); ok {
				if result, ok := decodeSearch(data.Payload, o.Tag); ok {
					return result, nil
				}
			}
		case FetchFailure:
			// 本候选失败，继续尝试下一个
		}
	}

	log.Printf("[Zerochan] 标签 %q 的全部候选（%d个）均未命中", query.Tag, len(candidates))
	return nil, &Error{Reason: ReasonExhausted, Tag: query.Tag}
}

// GetEntry 按ID获取单个条目详情
// 不做变体搜索；ID寻址的资源不应出现标签重定向，出现时按未找到处理
func (c *Client) GetEntry(ctx context.Context, entryID int64) (*model.ImageEntry, error) {
	if entryID <= 0 {
		return nil, &Error{Reason: ReasonNotFound}
	}

	requestURL := fmt.Sprintf("%s/%d?json=", c.BaseURL, entryID)
	switch o := c.fetch(ctx, requestURL).(type) {
	case StructuredData:
		entry, err := decodeEntry(o.Payload)
		if err != nil {
			return nil, &Error{Reason: ReasonUnparseable, Err: err}
		}
		if entry.ID == 0 {
			entry.ID = entryID
		}
		return entry, nil
	case RedirectTag:
		return nil, &Error{Reason: ReasonNotFound}
	case FetchFailure:
		if o.Status == http.StatusNotFound {
			return nil, &Error{Reason: ReasonNotFound, Status: o.Status}
		}
		return nil, &Error{Reason: o.Reason, Status: o.Status}
	}
	return nil, &Error{Reason: ReasonTransport}
}

// buildSearchURL 构建搜索URL
// 标签中的空格在路径段里转换为"+"；超出取值范围的参数静默丢弃
func (c *Client) buildSearchURL(tag string, query model.SearchQuery) string {
	requestURL := c.BaseURL
	if tag != "" {
		requestURL += "/" + strings.ReplaceAll(tag, " ", "+")
	}

	params := url.Values{}
	params.Set("json", "")
	if query.Page > 0 {
		params.Set("p", strconv.Itoa(query.Page))
	}
	if model.IsValidLimit(query.Limit) {
		params.Set("l", strconv.Itoa(query.Limit))
	}
	if model.IsValidSort(query.Sort) {
		params.Set("s", query.Sort)
	}
	if query.Strict {
		params.Set("strict", "")
	}
	if model.IsValidDimensions(query.Dimensions) {
		params.Set("d", query.Dimensions)
	}
	if query.Color != "" {
		params.Set("c", query.Color)
	}
	if query.TimeRange != nil && model.IsValidTimeRange(*query.TimeRange) {
		params.Set("t", strconv.Itoa(*query.TimeRange))
	}

	return requestURL + "?" + params.Encode()
}

// setRequestHeaders 设置请求头
func (c *Client) setRequestHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Cookie", langCookie)
}

// fetch 发送一次GET请求并对响应分类
// 所有失败都折叠为FetchFailure，候选循环本身就是重试机制，这里不做传输层重试
func (c *Client) fetch(ctx context.Context, requestURL string) FetchOutcome {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return FetchFailure{Reason: ReasonTransport}
	}
	c.setRequestHeaders(req)

	client := c.HTTPClient
	if client == nil {
		client = util.GetHTTPClient()
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Printf("[Zerochan] 请求超时: %s", requestURL)
			return FetchFailure{Reason: ReasonTimeout}
		}
		log.Printf("[Zerochan] 请求失败: %v", err)
		return FetchFailure{Reason: ReasonTransport}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FetchFailure{Reason: ReasonTransport}
	}

	// 重定向由传输层透明跟随，这里记录最终落到的地址
	resolvedURL := requestURL
	if resp.Request != nil && resp.Request.URL != nil {
		resolvedURL = resp.Request.URL.String()
	}

	return Classify(resp.StatusCode, body, resolvedURL)
}

// decodeSearch 把JSON数据解码为搜索结果并记录实际命中的标签
// 形状不符的JSON视为本次尝试失败，交由候选循环继续
func decodeSearch(payload []byte, resolvedTag string) (*model.SearchResult, bool) {
	var result model.SearchResult
	if err := jsonutil.Unmarshal(payload, &result); err != nil {
		return nil, false
	}
	result.ResolvedTag = resolvedTag
	return &result, true
}

// decodeEntry 解码单个条目详情，兼容对象和单元素数组两种返回形状
func decodeEntry(payload []byte) (*model.ImageEntry, error) {
	trimmed := bytes.TrimLeft(payload, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []model.ImageEntry
		if err := jsonutil.Unmarshal(payload, &entries); err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return nil, errors.New("上游返回了空的条目数组")
		}
		return &entries[0], nil
	}

	var entry model.ImageEntry
	if err := jsonutil.Unmarshal(payload, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
