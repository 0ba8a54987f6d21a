package shutdown

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PotterFan92/wizard-duels-backend/pkg/lifecycle"
)

const (
	// httpTimeout 是等待在途HTTP请求完成的上限
	httpTimeout = 15 * time.Second
	// workerTimeout 是等待后台工作者退出的上限
	workerTimeout = 30 * time.Second
)

// Coordinator 负责编排应用程序的优雅停机流程
type Coordinator struct {
	Manager *lifecycle.Manager
}

// NewCoordinator 创建一个新的停机协调器
func NewCoordinator(manager *lifecycle.Manager) *Coordinator {
	return &Coordinator{Manager: manager}
}

// ListenForSignalsAndShutdown 启动信号监听并阻塞，直到停机流程完成。
// 顺序：先关闭HTTP服务器让在途请求完成，再广播停机信号并等待后台工作者退出。
func (c *Coordinator) ListenForSignalsAndShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n收到关闭信号，开始优雅停机...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("HTTP服务器关闭错误: %v\n", err)
	} else {
		fmt.Println("HTTP服务器已关闭。")
	}

	c.Manager.Shutdown()
	remaining := c.Manager.WaitWithTimeout(workerTimeout)
	if len(remaining) == 0 {
		fmt.Println("所有后台服务已退出，停机完成。")
		return
	}
	fmt.Printf("警告: 以下服务未在超时内退出: %v\n", remaining)
}
