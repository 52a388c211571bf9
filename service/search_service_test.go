package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmoranv/astrbot-plugin-zerochan/model"
	"github.com/vmoranv/astrbot-plugin-zerochan/zerochan"
)

func newTestService(server *httptest.Server) *SearchService {
	client := &zerochan.Client{
		BaseURL:    server.URL,
		UserAgent:  zerochan.UserAgentBase + " - test",
		HTTPClient: server.Client(),
		Timeout:    5 * time.Second,
		Pick:       zerochan.FirstPick,
	}
	return NewSearchServiceWithClient(client)
}

func TestSearchReplySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":1,"thumbnail":"https://s.zerochan.net/1.jpg"}],"total":42}`))
	}))
	defer server.Close()

	reply := newTestService(server).SearchReply(context.Background(), model.SearchQuery{Tag: "Yoimiya", Page: 1})

	require.Len(t, reply, 2)
	assert.Equal(t, "text", reply[0].Type)
	assert.Contains(t, reply[0].Text, "搜索 'Yoimiya' 找到 42 张图片")
	assert.Equal(t, "image", reply[1].Type)
	assert.Equal(t, "https://s.zerochan.net/1.jpg", reply[1].URL)
}

func TestSearchReplyMentionsResolvedTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/Furina+de+Fontaine" {
			w.Write([]byte(`{"items":[{"id":7,"thumbnail":"https://s.zerochan.net/7.jpg"}],"total":3}`))
			return
		}
		w.Write([]byte(`<html><head><title>Furina de Fontaine - Zerochan</title></head></html>`))
	}))
	defer server.Close()

	reply := newTestService(server).SearchReply(context.Background(), model.SearchQuery{Tag: "furina de fontaine"})

	require.Len(t, reply, 2)
	assert.Contains(t, reply[0].Text, "实际匹配标签: Furina de Fontaine")
}

func TestSearchReplyNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	reply := newTestService(server).SearchReply(context.Background(), model.SearchQuery{Tag: "nonexistent"})

	require.Len(t, reply, 1)
	assert.Equal(t, "未找到与 'nonexistent' 相关的图片。", reply[0].Text)
}

func TestSearchReplyNoUsableImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":1},{"id":2}],"total":2}`))
	}))
	defer server.Close()

	reply := newTestService(server).SearchReply(context.Background(), model.SearchQuery{Tag: "Yoimiya"})

	require.Len(t, reply, 1)
	assert.Contains(t, reply[0].Text, "无法获取图片链接")
}

func TestEntryReplyDetail(t *testing.T) {
	tags := ""
	for i := 1; i <= 12; i++ {
		if i > 1 {
			tags += ","
		}
		tags += fmt.Sprintf(`"tag%d"`, i)
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id":3793685,"image":"https://static.zerochan.net/full.jpg","width":1200,"height":1600,"size":524288,"author":"someone","tags":[%s]}`, tags)
	}))
	defer server.Close()

	reply := newTestService(server).EntryReply(context.Background(), 3793685)

	require.Len(t, reply, 2)
	text := reply[0].Text
	assert.Contains(t, text, "ID: 3793685")
	assert.Contains(t, text, "尺寸: 1200x1600")
	assert.Contains(t, text, "作者: someone")
	// 超过10个标签时截断展示
	assert.Contains(t, text, "tag10")
	assert.NotContains(t, text, "tag11")
	assert.Contains(t, text, "...共12个标签")
	assert.Equal(t, "https://static.zerochan.net/full.jpg", reply[1].URL)
}

func TestEntryReplyWithoutImageIsTextOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":42,"width":800,"height":600}`))
	}))
	defer server.Close()

	reply := newTestService(server).EntryReply(context.Background(), 42)

	require.Len(t, reply, 1)
	assert.Equal(t, "text", reply[0].Type)
	assert.Contains(t, reply[0].Text, "ID: 42")
}

func TestEntryReplyNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	reply := newTestService(server).EntryReply(context.Background(), 123)

	require.Len(t, reply, 1)
	assert.Equal(t, "未找到ID为 123 的图片。", reply[0].Text)
}

func TestHandleMessageHelpAndUsage(t *testing.T) {
	// 这些命令不会触达网络，客户端可以为空实现
	s := NewSearchServiceWithClient(&zerochan.Client{})

	reply := s.HandleMessage(context.Background(), "/zchelp")
	require.Len(t, reply, 1)
	assert.Contains(t, reply[0].Text, "Zerochan 图片搜索插件")

	reply = s.HandleMessage(context.Background(), "/zc")
	require.Len(t, reply, 1)
	assert.Contains(t, reply[0].Text, "用法: /zc <标签> [页码] [数量]")

	reply = s.HandleMessage(context.Background(), "/zcid")
	require.Len(t, reply, 1)
	assert.Contains(t, reply[0].Text, "用法: /zcid <图片ID>")

	reply = s.HandleMessage(context.Background(), "/zcid abc")
	require.Len(t, reply, 1)
	assert.Equal(t, "请输入有效的数字ID。", reply[0].Text)

	reply = s.HandleMessage(context.Background(), "something else")
	require.Len(t, reply, 1)
	assert.Contains(t, reply[0].Text, "/zchelp")
}
