package zerochan

import (
	"strings"
)

// Translate 把本地化/口语别名转换为Zerochan规范英文标签
// 按原样精确匹配（区分大小写），未收录的标签原样返回，不是错误
func Translate(rawTag string) string {
	if canonical, ok := localizedAliases[rawTag]; ok {
		return canonical
	}
	return rawTag
}

// Expand 返回规范标签已知的等价拼写变体列表
// 以小写形式查表，未收录时返回nil；返回顺序即尝试优先级
func Expand(canonicalTag string) []string {
	return tagVariants[strings.ToLower(canonicalTag)]
}
