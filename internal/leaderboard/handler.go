package leaderboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// defaultTopN 是排行榜默认返回的条目数
	defaultTopN = 10
	// maxTopN 限制单次查询的最大条目数
	maxTopN = 100
)

var globalService *Service

// ConfigureModule 注入handler所需的服务实例，应在路由注册前调用一次
func ConfigureModule(service *Service) {
	globalService = service
}

// EntryResponse 是排行榜接口的响应模型
type EntryResponse struct {
	Username string `json:"username"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Casts    int    `json:"casts"`
}

// GetLeaderboard 返回前N名的排行榜，供悬浮层展示使用。
// limit参数可选，默认10，上限100。
func GetLeaderboard(c *gin.Context) {
	n := defaultTopN
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit参数无效"})
			return
		}
		if parsed > maxTopN {
			parsed = maxTopN
		}
		n = parsed
	}

	entries, err := globalService.Top(n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取排行榜失败"})
		return
	}

	response := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, EntryResponse{
			Username: entry.Username,
			Wins:     entry.Wins,
			Losses:   entry.Losses,
			Casts:    entry.Casts,
		})
	}
	c.JSON(http.StatusOK, response)
}
