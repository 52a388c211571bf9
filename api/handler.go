package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vmoranv/astrbot-plugin-zerochan/model"
	"github.com/vmoranv/astrbot-plugin-zerochan/service"
	"github.com/vmoranv/astrbot-plugin-zerochan/util"
	jsonutil "github.com/vmoranv/astrbot-plugin-zerochan/util/json"
	"github.com/vmoranv/astrbot-plugin-zerochan/zerochan"
)

// 全局搜索服务实例
var searchService *service.SearchService

// SetSearchService 设置搜索服务
func SetSearchService(s *service.SearchService) {
	searchService = s
}

// SearchHandler 搜索处理函数
func SearchHandler(c *gin.Context) {
	var query model.SearchQuery

	// 根据请求方法不同处理参数
	if c.Request.Method == http.MethodGet {
		query = queryFromParams(c)
		if query.Tag == "" {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "缺少tag参数"))
			return
		}
	} else {
		data, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "读取请求数据失败: "+err.Error()))
			return
		}
		if err := jsonutil.Unmarshal(data, &query); err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "无效的请求参数: "+err.Error()))
			return
		}
		if query.Tag == "" {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "缺少tag参数"))
			return
		}
	}

	result, err := searchService.Search(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, result)
}

// EntryHandler 条目详情处理函数
func EntryHandler(c *gin.Context) {
	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || entryID <= 0 {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "无效的图片ID"))
		return
	}

	entry, err := searchService.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		writeError(c, err)
		return
	}

	writeSuccess(c, entry)
}

// MessageRequest 聊天命令请求体
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// MessageHandler 聊天命令处理函数，输入原始命令文本，输出回复消息链
func MessageHandler(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "读取请求数据失败: "+err.Error()))
		return
	}

	var req MessageRequest
	if err := jsonutil.Unmarshal(data, &req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(400, "无效的请求参数"))
		return
	}

	reply := searchService.HandleMessage(c.Request.Context(), req.Message)
	writeSuccess(c, reply)
}

// queryFromParams 从GET参数构建查询
func queryFromParams(c *gin.Context) model.SearchQuery {
	query := model.SearchQuery{
		Tag:        c.Query("tag"),
		Page:       util.StringToInt(c.Query("page")),
		Limit:      util.StringToInt(c.Query("limit")),
		Sort:       c.Query("sort"),
		Dimensions: c.Query("d"),
		Color:      c.Query("c"),
		Strict:     c.Query("strict") == "true",
	}

	// t=0是合法取值，必须区分"未传"和"传了0"
	if t, ok := util.ParseInt(c.Query("t")); ok {
		query.TimeRange = &t
	}

	return query
}

// writeSuccess 输出成功响应
func writeSuccess(c *gin.Context, data interface{}) {
	response := model.NewSuccessResponse(data)
	jsonData, _ := jsonutil.Marshal(response)
	c.Data(http.StatusOK, "application/json", jsonData)
}

// writeError 按失败原因映射HTTP状态码并输出错误响应
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch zerochan.ReasonOf(err) {
	case zerochan.ReasonNotFound, zerochan.ReasonExhausted, zerochan.ReasonNoImage:
		status = http.StatusNotFound
	case zerochan.ReasonTransport, zerochan.ReasonTimeout, zerochan.ReasonHTTPStatus, zerochan.ReasonUnparseable:
		status = http.StatusBadGateway
	}

	response := model.NewErrorResponse(status, err.Error())
	jsonData, _ := jsonutil.Marshal(response)
	c.Data(status, "application/json", jsonData)
}
