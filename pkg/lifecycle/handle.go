package lifecycle

import "context"

// Handle 是分发给单个后台服务的生命周期控制器
type Handle struct {
	ctx context.Context

	// Close 通知Manager该服务已完成退出，
	// 应在服务Goroutine退出前通过defer调用。
	Close func()
}

// Ctx 返回与停机信号绑定的上下文
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

// Done 返回一个channel，停机信号广播时该channel关闭
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}
