package service

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/vmoranv/astrbot-plugin-zerochan/config"
	"github.com/vmoranv/astrbot-plugin-zerochan/model"
	"github.com/vmoranv/astrbot-plugin-zerochan/util"
)

// 命令用法说明
const (
	searchUsage = "Zerochan 图片搜索\n" +
		"用法: /zc <标签> [页码] [数量]\n" +
		"示例:\n" +
		"  /zc Genshin Impact - 搜索原神相关图片\n" +
		"  /zc Lumine 1 5 - 搜索荧，第1页，5张图"

	entryUsage = "根据ID获取Zerochan图片\n" +
		"用法: /zcid <图片ID>\n" +
		"示例: /zcid 3793685"

	helpText = "Zerochan 图片搜索插件\n" +
		"====================\n" +
		"命令:\n" +
		"  /zc <标签> [页码] [数量] - 搜索图片\n" +
		"  /zcid <ID> - 根据ID获取详情\n" +
		"  /zchelp - 显示此帮助\n" +
		"\n" +
		"示例:\n" +
		"  /zc Genshin Impact - 搜索原神\n" +
		"  /zc Lumine 1 5 - 搜索荧，第1页，5张\n" +
		"  /zcid 3793685 - 获取指定图片\n" +
		"\n" +
		"提示:\n" +
		"  - 标签支持中文别名，如 /zc 宵宫\n" +
		"  - API限制60次/分钟"
)

// splitCommand 按空白切分命令，最多保留4段，多余内容并入最后一段
func splitCommand(message string) []string {
	fields := strings.Fields(message)
	if len(fields) > 4 {
		merged := strings.Join(fields[3:], " ")
		fields = append(fields[:3], merged)
	}
	return fields
}

// ParseSearchCommand 解析 /zc 命令参数
// 第二个参数不是数字时视为多词标签的一部分；数量超出上限会被截断
// 参数不足时ok为false，调用方应回复用法说明
func ParseSearchCommand(message string, defaultLimit, maxLimit int) (model.SearchQuery, bool) {
	parts := splitCommand(message)
	if len(parts) < 2 {
		return model.SearchQuery{}, false
	}

	tag := parts[1]
	page := 1
	limit := defaultLimit

	if len(parts) >= 3 {
		if n, ok := util.ParseInt(parts[2]); ok {
			page = n
		} else {
			tag = tag + " " + parts[2]
		}
	}

	if len(parts) >= 4 {
		if n, ok := util.ParseInt(parts[3]); ok {
			limit = n
			if limit > maxLimit {
				limit = maxLimit
			}
		}
	}

	return model.SearchQuery{
		Tag:   tag,
		Page:  page,
		Limit: limit,
		Sort:  "fav",
	}, true
}

// HandleMessage 处理一条聊天命令并返回回复消息链
// 未识别的命令返回帮助文本，保证任何输入都有回复
func (s *SearchService) HandleMessage(ctx context.Context, message string) model.Message {
	trimmed := strings.TrimSpace(message)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return model.NewTextMessage(helpText)
	}

	switch fields[0] {
	case "/zc":
		defaultLimit, maxLimit := replyLimits()
		query, ok := ParseSearchCommand(trimmed, defaultLimit, maxLimit)
		if !ok {
			return model.NewTextMessage(searchUsage)
		}
		log.Printf("[Zerochan] 搜索: 标签=%s, 页码=%d, 数量=%d", query.Tag, query.Page, query.Limit)
		return s.SearchReply(ctx, query)

	case "/zcid":
		parts := splitCommand(trimmed)
		if len(parts) < 2 {
			return model.NewTextMessage(entryUsage)
		}
		entryID, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return model.NewTextMessage("请输入有效的数字ID。")
		}
		log.Printf("[Zerochan] 获取图片详情: ID=%d", entryID)
		return s.EntryReply(ctx, entryID)

	case "/zchelp":
		return model.NewTextMessage(helpText)
	}

	return model.NewTextMessage(helpText)
}

// replyLimits 取配置中的默认/最大数量，配置未加载时用内置默认值
func replyLimits() (int, int) {
	if config.AppConfig != nil {
		return config.AppConfig.DefaultLimit, config.AppConfig.MaxReplyLimit
	}
	return 3, 10
}
