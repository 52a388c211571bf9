package zerochan

import (
	"math/rand"

	"github.com/vmoranv/astrbot-plugin-zerochan/model"
)

// PickFunc 图片选取策略：输入候选数量n（n>=1），返回选中的下标
// 默认为随机选取，测试中可注入固定策略保证结果可复现
type PickFunc func(n int) int

// RandomPick 随机选取策略
func RandomPick(n int) int {
	return rand.Intn(n)
}

// FirstPick 总是选取第一个，用于需要确定性结果的场景
func FirstPick(n int) int {
	return 0
}

// CollectImageURLs 按回退顺序收集条目列表中所有可用的图片地址
func CollectImageURLs(items []model.ImageEntry) []string {
	urls := make([]string, 0, len(items))
	for i := range items {
		if url := items[i].BestImage(); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// PickImageURL 在条目列表中按策略选出一张图片的地址
// 所有条目都没有可用图片字段时返回no_image失败
func PickImageURL(items []model.ImageEntry, pick PickFunc) (string, error) {
	urls := CollectImageURLs(items)
	if len(urls) == 0 {
		return "", &Error{Reason: ReasonNoImage}
	}
	if pick == nil {
		pick = RandomPick
	}

	idx := pick(len(urls))
	if idx < 0 || idx >= len(urls) {
		idx = 0
	}
	return urls[idx], nil
}
