package twitch

import (
	"fmt"
	"sync"
	"time"

	"github.com/PotterFan92/wizard-duels-backend/pkg/lifecycle"
	"github.com/nicklaw5/helix/v2"
)

// announcer 是一个单一消费者的后台工作者，负责把对决结果播报到直播间聊天。
// 播报是旁路副作用：任何失败只记录日志，绝不影响已提交的对决记录。
type announcer struct {
	ch            chan string
	client        *helix.Client
	broadcasterID string
	senderID      string

	tokenExpiresAt time.Time

	isShutdown    bool
	shutdownMutex sync.Mutex
}

// globalAnnouncer 是announcer的私有单例实例
var globalAnnouncer = &announcer{
	ch: make(chan string, 256),
}

// configureAnnouncer 注入出站客户端和目标频道
func configureAnnouncer(client *helix.Client, broadcasterID, senderID string) {
	globalAnnouncer.client = client
	globalAnnouncer.broadcasterID = broadcasterID
	globalAnnouncer.senderID = senderID
}

// queueAnnouncement 把一条播报消息提交给后台工作者。
// 队列已满或已停机时放弃本条消息并记录警告。
func queueAnnouncement(message string) {
	a := globalAnnouncer
	a.shutdownMutex.Lock()
	defer a.shutdownMutex.Unlock()
	if a.isShutdown {
		fmt.Println("警告: 播报工作者已停机，放弃本条播报")
		return
	}
	select {
	case a.ch <- message:
	default:
		fmt.Println("警告: 播报队列已满，放弃本条播报")
	}
}

// StartAnnouncer 启动播报工作者的主循环。
// 收到停机信号后会尽力发完队列中已有的消息再退出。
func StartAnnouncer(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("聊天播报工作者已启动。")

	a := globalAnnouncer
	for {
		select {
		case <-handle.Done():
			a.drainAndExit()
			return
		case message := <-a.ch:
			a.send(message)
		}
	}
}

// drainAndExit 停止接收新消息，并发完队列中剩余的播报
func (a *announcer) drainAndExit() {
	a.shutdownMutex.Lock()
	a.isShutdown = true
	a.shutdownMutex.Unlock()

	for {
		select {
		case message := <-a.ch:
			a.send(message)
		default:
			fmt.Println("聊天播报工作者已退出。")
			return
		}
	}
}

// send 发送单条聊天消息。未配置出站客户端时静默跳过。
func (a *announcer) send(message string) {
	if a.client == nil || a.broadcasterID == "" {
		return
	}
	if err := a.ensureAppToken(); err != nil {
		fmt.Printf("警告: 获取Twitch访问令牌失败: %v\n", err)
		return
	}

	resp, err := a.client.SendChatMessage(&helix.SendChatMessageParams{
		BroadcasterID: a.broadcasterID,
		SenderID:      a.senderID,
		Message:       message,
	})
	if err != nil {
		fmt.Printf("警告: 聊天播报发送失败: %v\n", err)
		return
	}
	if resp.ErrorMessage != "" {
		fmt.Printf("警告: 聊天播报被Twitch拒绝: %s\n", resp.ErrorMessage)
	}
}

// ensureAppToken 确保客户端持有未过期的应用访问令牌
func (a *announcer) ensureAppToken() error {
	if time.Now().Before(a.tokenExpiresAt) {
		return nil
	}
	resp, err := a.client.RequestAppAccessToken(nil)
	if err != nil {
		return err
	}
	if resp.ErrorMessage != "" {
		return fmt.Errorf("token exchange rejected: %s", resp.ErrorMessage)
	}
	a.client.SetAppAccessToken(resp.Data.AccessToken)
	// 提前一分钟过期，避免边界上的401
	a.tokenExpiresAt = time.Now().Add(time.Duration(resp.Data.ExpiresIn)*time.Second - time.Minute)
	return nil
}
