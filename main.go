package main

import (
	"fmt"
	"log"

	"github.com/vmoranv/astrbot-plugin-zerochan/api"
	"github.com/vmoranv/astrbot-plugin-zerochan/config"
	"github.com/vmoranv/astrbot-plugin-zerochan/service"
	"github.com/vmoranv/astrbot-plugin-zerochan/util"
)

func main() {
	// 初始化应用
	initApp()

	// 启动服务器
	startServer()
}

// initApp 初始化应用程序
func initApp() {
	// 初始化配置
	config.Init()

	// 初始化HTTP客户端
	util.InitHTTPClient()
}

// startServer 启动Web服务器
func startServer() {
	// 初始化搜索服务
	searchService := service.NewSearchService()

	// 设置路由
	router := api.SetupRouter(searchService)

	// 获取端口配置
	port := config.AppConfig.Port

	// 输出服务信息
	printServiceInfo(port)

	// 启动Web服务器
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}

// printServiceInfo 打印服务信息
func printServiceInfo(port string) {
	fmt.Printf("服务器启动在 http://localhost:%s\n", port)
	fmt.Printf("Zerochan站点: %s\n", config.AppConfig.BaseURL)
	fmt.Printf("用户标识: %s\n", config.AppConfig.Username)

	// 输出代理信息
	if config.AppConfig.UseProxy {
		fmt.Printf("使用代理: %s\n", config.AppConfig.ProxyURL)
	} else {
		fmt.Println("未使用代理")
	}

	// 输出认证信息
	if config.AppConfig.AuthSecret != "" {
		fmt.Println("API访问令牌校验已启用")
	} else {
		fmt.Println("API访问令牌校验未启用")
	}

	// 输出压缩信息
	if config.AppConfig.EnableCompression {
		fmt.Printf("响应压缩已启用: 最小压缩大小=%d字节\n", config.AppConfig.MinSizeToCompress)
	} else {
		fmt.Println("响应压缩已禁用")
	}

	fmt.Printf("请求超时: %d秒（上游限制60次/分钟）\n", config.AppConfig.RequestTimeoutSeconds)
}
