package health

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// redisDegraded 记录Redis当前是否不可用。
// Redis只承载派生数据，降级不影响存活状态，但会体现在探针响应里。
var redisDegraded atomic.Bool

// SetRedisDegraded 由健康检查器更新Redis的可用状态
func SetRedisDegraded(degraded bool) {
	redisDegraded.Store(degraded)
}

// HandleHealthCheck 是存活探针。
// 进程能响应即视为存活，附带缓存层的降级标记。
func HandleHealthCheck(c *gin.Context) {
	payload := gin.H{"status": "ok"}
	if redisDegraded.Load() {
		payload["cache"] = "degraded"
	}
	c.JSON(http.StatusOK, payload)
}
