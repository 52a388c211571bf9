package zerochan

// 本地化/口语别名到Zerochan规范英文标签的映射
// 键按原样精确匹配（区分大小写），未命中时原样透传
// 数据在进程启动时只读，运行期不会修改
var localizedAliases = map[string]string{
	// 原神
	"原神":    "Genshin Impact",
	"genshin": "Genshin Impact",
	"宵宫":    "Yoimiya",
	"芙宁娜":  "Furina",
	"furina":  "Furina",
	"荧":      "Lumine",
	"空":      "Aether",
	"雷电将军": "Raiden Shogun",
	"雷神":    "Raiden Shogun",
	"神里绫华": "Kamisato Ayaka",
	"绫华":    "Kamisato Ayaka",
	"胡桃":    "Hu Tao",
	"hutao":   "Hu Tao",
	"甘雨":    "Ganyu",
	"刻晴":    "Keqing",
	"钟离":    "Zhongli",
	"温迪":    "Venti",
	"纳西妲":  "Nahida",
	"草神":    "Nahida",
	"枫原万叶": "Kaedehara Kazuha",
	"万叶":    "Kaedehara Kazuha",
	"八重神子": "Yae Miko",
	"夜兰":    "Yelan",
	"珊瑚宫心海": "Sangonomiya Kokomi",
	"心海":    "Sangonomiya Kokomi",
	"莫娜":    "Mona",
	"可莉":    "Klee",
	"七七":    "Qiqi",
	"优菈":    "Eula",
	"申鹤":    "Shenhe",
	"妮露":    "Nilou",
	"流浪者":  "Scaramouche",
	"散兵":    "Scaramouche",
	"魈":      "Xiao",
	"达达利亚": "Tartaglia",
	"公子":    "Tartaglia",

	// 其他常见角色
	"初音未来": "Hatsune Miku",
	"初音":    "Hatsune Miku",
	"miku":    "Hatsune Miku",
	"雷姆":    "Rem",
	"蕾姆":    "Rem",
	"明日香":  "Souryuu Asuka Langley",
	"炭治郎":  "Kamado Tanjirou",
	"祢豆子":  "Kamado Nezuko",
	"五条悟":  "Gojou Satoru",
	"阿尼亚":  "Anya Forger",
	"薇尔莉特": "Violet Evergarden",
	"紫罗兰":  "Violet Evergarden",
}

// 规范标签（小写键）到已知等价拼写变体的映射
// 变体列表顺序即后续尝试的优先级顺序
// Zerochan对同一角色可能使用带后缀或全名的页面，逐个尝试这些拼写
var tagVariants = map[string][]string{
	"furina": {"Furina de Fontaine"},
	"lumine": {"Lumine (Genshin Impact)"},
	"aether": {"Aether (Genshin Impact)"},
	"raiden shogun": {"Raiden Shogun", "Beelzebul"},
	"scaramouche": {"Scaramouche (Genshin Impact)", "Wanderer (Genshin Impact)"},
	"venti": {"Venti (Genshin Impact)"},
	"xiao":  {"Xiao (Genshin Impact)"},
	"mona":  {"Mona Megistus"},
	"qiqi":  {"Qiqi (Genshin Impact)"},
	"klee":  {"Klee (Genshin Impact)"},
	"rem":   {"Rem (Re:Zero)"},
	"tartaglia": {"Tartaglia (Genshin Impact)", "Childe"},
}
