package util

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/vmoranv/astrbot-plugin-zerochan/config"
	"golang.org/x/net/proxy"
)

// 全局HTTP客户端
var httpClient *http.Client

// InitHTTPClient 初始化HTTP客户端
func InitHTTPClient() {
	// 创建传输配置
	transport := &http.Transport{
		// 启用HTTP/2
		ForceAttemptHTTP2: true,

		// TLS配置
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: false,
		},

		// 连接池配置
		// 上游限制60次/分钟，单主机连接数不需要太大
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   5,
		MaxConnsPerHost:       10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		// TCP连接配置
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	// 如果配置了代理，设置代理
	if config.AppConfig != nil && config.AppConfig.UseProxy {
		proxyURL, err := url.Parse(config.AppConfig.ProxyURL)
		if err == nil {
			if proxyURL.Scheme == "socks5" {
				// 创建SOCKS5代理拨号器
				dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
				if err == nil {
					transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
						return dialer.Dial(network, addr)
					}
				}
			} else {
				// HTTP/HTTPS代理
				transport.Proxy = http.ProxyURL(proxyURL)
			}
		}
	}

	// 创建客户端
	// 整体超时由每次请求的context控制，这里不再设置客户端级超时
	// 重定向由传输层透明跟随（http.Client默认行为）
	httpClient = &http.Client{
		Transport: transport,
	}
}

// GetHTTPClient 获取HTTP客户端
func GetHTTPClient() *http.Client {
	if httpClient == nil {
		InitHTTPClient()
	}
	return httpClient
}
