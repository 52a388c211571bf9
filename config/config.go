package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置结构
type Config struct {
	Port     string
	ProxyURL string
	UseProxy bool
	// Zerochan相关配置
	BaseURL  string // Zerochan站点地址
	Username string // 拼接到User-Agent中的用户标识
	// 请求相关配置
	RequestTimeoutSeconds int           // 单次上游请求超时时间（秒）
	RequestTimeout        time.Duration // 单次上游请求超时时间（Duration）
	// 回复相关配置
	DefaultLimit  int // 搜索时默认请求的图片数量
	MaxReplyLimit int // 单次命令最多请求的图片数量
	// 认证相关配置
	AuthSecret string // API访问令牌密钥，为空表示不启用认证
	// 压缩相关配置
	EnableCompression bool
	MinSizeToCompress int // 最小压缩大小（字节）
}

// 全局配置实例
var AppConfig *Config

// 初始化配置
func Init() {
	proxyURL := getProxyURL()
	timeoutSeconds := getRequestTimeout()

	AppConfig = &Config{
		Port:     getPort(),
		ProxyURL: proxyURL,
		UseProxy: proxyURL != "",
		// Zerochan相关配置
		BaseURL:  getBaseURL(),
		Username: getUsername(),
		// 请求相关配置
		RequestTimeoutSeconds: timeoutSeconds,
		RequestTimeout:        time.Duration(timeoutSeconds) * time.Second,
		// 回复相关配置
		DefaultLimit:  getDefaultLimit(),
		MaxReplyLimit: getMaxReplyLimit(),
		// 认证相关配置
		AuthSecret: os.Getenv("AUTH_SECRET"),
		// 压缩相关配置
		EnableCompression: getEnableCompression(),
		MinSizeToCompress: getMinSizeToCompress(),
	}
}

// 从环境变量获取端口号，如果未设置则使用默认值
func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8888"
	}
	return port
}

// 从环境变量获取代理URL
func getProxyURL() string {
	return os.Getenv("PROXY")
}

// 从环境变量获取Zerochan站点地址，如果未设置则使用官方站点
func getBaseURL() string {
	baseURL := os.Getenv("ZEROCHAN_BASE_URL")
	if baseURL == "" {
		return "https://www.zerochan.net"
	}
	return baseURL
}

// 从环境变量获取用户标识，Zerochan要求API调用方携带可识别的User-Agent
func getUsername() string {
	username := os.Getenv("ZEROCHAN_USERNAME")
	if username == "" {
		return "AstrBotUser"
	}
	return username
}

// 从环境变量获取请求超时时间（秒），如果未设置或无效则使用默认值30秒
func getRequestTimeout() int {
	timeoutEnv := os.Getenv("REQUEST_TIMEOUT")
	if timeoutEnv != "" {
		timeout, err := strconv.Atoi(timeoutEnv)
		if err == nil && timeout > 0 {
			return timeout
		}
	}
	return 30
}

// 从环境变量获取默认请求数量，如果未设置或无效则使用默认值3
func getDefaultLimit() int {
	limitEnv := os.Getenv("DEFAULT_LIMIT")
	if limitEnv != "" {
		limit, err := strconv.Atoi(limitEnv)
		if err == nil && limit > 0 {
			return limit
		}
	}
	return 3
}

// 从环境变量获取单次命令最大请求数量，如果未设置或无效则使用默认值10
func getMaxReplyLimit() int {
	limitEnv := os.Getenv("MAX_REPLY_LIMIT")
	if limitEnv != "" {
		limit, err := strconv.Atoi(limitEnv)
		if err == nil && limit > 0 {
			return limit
		}
	}
	return 10
}

// 从环境变量获取是否启用压缩，默认启用
func getEnableCompression() bool {
	return os.Getenv("ENABLE_COMPRESSION") != "false"
}

// 从环境变量获取最小压缩大小，如果未设置或无效则使用默认值1024字节
func getMinSizeToCompress() int {
	sizeEnv := os.Getenv("MIN_SIZE_TO_COMPRESS")
	if sizeEnv != "" {
		size, err := strconv.Atoi(sizeEnv)
		if err == nil && size > 0 {
			return size
		}
	}
	return 1024
}
