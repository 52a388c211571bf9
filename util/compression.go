package util

import (
	"bytes"
	"compress/gzip"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vmoranv/astrbot-plugin-zerochan/config"
)

// 缓冲响应写入器，先把响应体收集到内存，便于按大小决定是否压缩
type bufferedResponseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bufferedResponseWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *bufferedResponseWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

// GzipMiddleware 返回一个Gin中间件，对超过阈值的响应启用gzip压缩
func GzipMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 未启用压缩或客户端不支持gzip时直接跳过
		if config.AppConfig == nil || !config.AppConfig.EnableCompression {
			c.Next()
			return
		}
		if !strings.Contains(c.Request.Header.Get("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		buffered := &bufferedResponseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = buffered

		c.Next()

		data := buffered.body.Bytes()
		original := buffered.ResponseWriter

		// 小响应直接原样返回，压缩反而增加开销
		if len(data) < config.AppConfig.MinSizeToCompress {
			original.Write(data)
			return
		}

		original.Header().Set("Content-Encoding", "gzip")
		original.Header().Del("Content-Length")

		gz := gzip.NewWriter(original)
		gz.Write(data)
		gz.Close()
	}
}
