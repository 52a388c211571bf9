package zerochan

import (
	"strings"
	"unicode"
)

// GenerateCandidates 为一次搜索生成按优先级排列的候选标签列表
// 顺序为：别名表翻译结果、已知拼写变体、标题化写法；按首次出现去重
// 返回值保证非空，首元素一定是翻译后的基准形式
func GenerateCandidates(rawTag string) []string {
	base := Translate(rawTag)

	candidates := make([]string, 0, 4)
	seen := make(map[string]bool)

	appendUnique := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		candidates = append(candidates, tag)
	}

	appendUnique(base)
	for _, variant := range Expand(base) {
		appendUnique(variant)
	}
	appendUnique(TitleCase(base))

	// 空白输入的退化情况，保证返回序列非空且首元素为基准形式
	if len(candidates) == 0 {
		candidates = append(candidates, base)
	}

	return candidates
}

// TitleCase 把每个空白分隔的单词首字母大写，其余字符保持原样
// 不做进一步的大小写归一化，标签的精确匹配规则由上游决定
func TitleCase(tag string) string {
	words := strings.Fields(tag)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
