package zerochan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateKnownAliases(t *testing.T) {
	assert.Equal(t, "Yoimiya", Translate("宵宫"))
	assert.Equal(t, "Furina", Translate("furina"))
	assert.Equal(t, "Furina", Translate("芙宁娜"))
	assert.Equal(t, "Genshin Impact", Translate("原神"))
}

func TestTranslateUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "Hatsune Miku", Translate("Hatsune Miku"))
	assert.Equal(t, "some random tag", Translate("some random tag"))
	assert.Equal(t, "", Translate(""))
}

func TestTranslateIsCaseSensitive(t *testing.T) {
	// 别名表按原样精确匹配，大小写不同的键不命中
	assert.Equal(t, "Furina", Translate("furina"))
	assert.Equal(t, "FURINA", Translate("FURINA"))
}

func TestExpandKnownTag(t *testing.T) {
	variants := Expand("Furina")
	assert.Equal(t, []string{"Furina de Fontaine"}, variants)

	// 查表键统一转小写，入参大小写不影响结果
	assert.Equal(t, variants, Expand("furina"))
	assert.Equal(t, variants, Expand("FURINA"))
}

func TestExpandUnknownTagReturnsEmpty(t *testing.T) {
	assert.Empty(t, Expand("nonexistent tag"))
	assert.Empty(t, Expand(""))
}

func TestExpandPreservesOrder(t *testing.T) {
	variants := Expand("Raiden Shogun")
	assert.Equal(t, []string{"Raiden Shogun", "Beelzebul"}, variants)
}
