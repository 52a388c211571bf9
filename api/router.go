package api

import (
	"github.com/gin-gonic/gin"
	"github.com/vmoranv/astrbot-plugin-zerochan/config"
	"github.com/vmoranv/astrbot-plugin-zerochan/service"
	"github.com/vmoranv/astrbot-plugin-zerochan/util"
)

// SetupRouter 设置路由
func SetupRouter(searchService *service.SearchService) *gin.Engine {
	// 设置搜索服务
	SetSearchService(searchService)

	// 设置为生产模式
	gin.SetMode(gin.ReleaseMode)

	// 创建默认路由
	r := gin.Default()

	// 添加中间件
	r.Use(CORSMiddleware())
	r.Use(LoggerMiddleware())
	r.Use(util.GzipMiddleware()) // 添加压缩中间件

	// 定义API路由组
	api := r.Group("/api")
	{
		// 标签搜索接口 - 支持POST和GET两种方式
		api.GET("/search", AuthMiddleware(), SearchHandler)
		api.POST("/search", AuthMiddleware(), SearchHandler)

		// 条目详情接口
		api.GET("/entry/:id", AuthMiddleware(), EntryHandler)

		// 聊天命令接口，聊天宿主把原始命令文本转发到这里
		api.POST("/message", AuthMiddleware(), MessageHandler)

		// 健康检查接口
		api.GET("/health", func(c *gin.Context) {
			baseURL := ""
			authEnabled := false
			if config.AppConfig != nil {
				baseURL = config.AppConfig.BaseURL
				authEnabled = config.AppConfig.AuthSecret != ""
			}

			c.JSON(200, gin.H{
				"status":       "ok",
				"base_url":     baseURL,
				"auth_enabled": authEnabled,
			})
		})
	}

	return r
}
