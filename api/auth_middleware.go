package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vmoranv/astrbot-plugin-zerochan/config"
	"github.com/vmoranv/astrbot-plugin-zerochan/model"
)

// AuthMiddleware 访问令牌校验中间件
// 未配置AUTH_SECRET时接口对外开放；配置后要求携带HS256签名的Bearer令牌
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := ""
		if config.AppConfig != nil {
			secret = config.AppConfig.AuthSecret
		}
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(401, "缺少认证令牌"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(401, "无效的认证格式"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse(401, "无效的认证令牌"))
			c.Abort()
			return
		}

		c.Next()
	}
}
