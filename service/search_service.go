package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vmoranv/astrbot-plugin-zerochan/model"
	"github.com/vmoranv/astrbot-plugin-zerochan/zerochan"
)

// SearchService 搜索服务，封装Zerochan客户端并负责构建聊天回复
type SearchService struct {
	client *zerochan.Client
}

// NewSearchService 创建搜索服务实例
func NewSearchService() *SearchService {
	return NewSearchServiceWithClient(zerochan.NewClient())
}

// NewSearchServiceWithClient 用指定客户端创建搜索服务，测试时注入假客户端
func NewSearchServiceWithClient(client *zerochan.Client) *SearchService {
	return &SearchService{client: client}
}

// Search 执行标签搜索
func (s *SearchService) Search(ctx context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	return s.client.Search(ctx, query)
}

// GetEntry 按ID获取条目详情
func (s *SearchService) GetEntry(ctx context.Context, entryID int64) (*model.ImageEntry, error) {
	return s.client.GetEntry(ctx, entryID)
}

// SearchReply 执行搜索并构建聊天回复消息链
// 成功时为一段文本加一张图片，任何失败都收敛为一段说明文本
func (s *SearchService) SearchReply(ctx context.Context, query model.SearchQuery) model.Message {
	result, err := s.client.Search(ctx, query)
	if err != nil {
		if zerochan.IsNotFound(err) {
			return model.NewTextMessage(fmt.Sprintf("未找到与 '%s' 相关的图片。", query.Tag))
		}
		return model.NewTextMessage("搜索失败，请稍后重试或检查网络连接。")
	}
	if len(result.Items) == 0 {
		return model.NewTextMessage(fmt.Sprintf("未找到与 '%s' 相关的图片。", query.Tag))
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	reply := fmt.Sprintf("搜索 '%s' 找到 %d 张图片，显示第 %d 页:", query.Tag, result.Total, page)
	// 实际命中的可能是修正后的标签，告知用户真实匹配了什么
	if result.ResolvedTag != "" && result.ResolvedTag != query.Tag {
		reply += fmt.Sprintf("\n实际匹配标签: %s", result.ResolvedTag)
	}

	imageURL, err := zerochan.PickImageURL(result.Items, s.client.Pick)
	if err != nil {
		return model.NewTextMessage(reply + "\n无法获取图片链接")
	}

	return model.Message{model.TextSegment(reply), model.ImageSegment(imageURL)}
}

// EntryReply 获取条目详情并构建聊天回复消息链
func (s *SearchService) EntryReply(ctx context.Context, entryID int64) model.Message {
	entry, err := s.client.GetEntry(ctx, entryID)
	if err != nil {
		if zerochan.IsNotFound(err) {
			return model.NewTextMessage(fmt.Sprintf("未找到ID为 %d 的图片。", entryID))
		}
		return model.NewTextMessage("获取图片详情失败，请稍后重试。")
	}

	detail := buildEntryDetail(entry)
	if imageURL := entry.BestImage(); imageURL != "" {
		return model.Message{model.TextSegment(detail), model.ImageSegment(imageURL)}
	}
	return model.NewTextMessage(detail)
}

// buildEntryDetail 构建条目详情文本
func buildEntryDetail(entry *model.ImageEntry) string {
	var b strings.Builder
	b.WriteString("Zerochan 图片详情\n")
	b.WriteString(fmt.Sprintf("ID: %d\n", entry.ID))
	b.WriteString(fmt.Sprintf("尺寸: %sx%s\n", orUnknown(entry.Width), orUnknown(entry.Height)))
	b.WriteString(fmt.Sprintf("大小: %s\n", formatSize(entry.Size)))
	b.WriteString(fmt.Sprintf("作者: %s\n", orUnknownString(entry.Author)))

	if len(entry.Tags) > 0 {
		shown := entry.Tags
		if len(shown) > 10 {
			shown = shown[:10]
		}
		tagsStr := strings.Join(shown, ", ")
		if len(entry.Tags) > 10 {
			tagsStr += fmt.Sprintf(" ...共%d个标签", len(entry.Tags))
		}
		b.WriteString(fmt.Sprintf("标签: %s\n", tagsStr))
	}

	return strings.TrimRight(b.String(), "\n")
}

func orUnknown(value int) string {
	if value <= 0 {
		return "未知"
	}
	return fmt.Sprintf("%d", value)
}

func orUnknownString(value string) string {
	if value == "" {
		return "未知"
	}
	return value
}

// formatSize 把字节数格式化为易读形式
func formatSize(size int64) string {
	switch {
	case size <= 0:
		return "未知"
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(size)/(1024*1024))
	}
}
