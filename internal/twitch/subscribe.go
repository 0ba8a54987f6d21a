package twitch

import (
	"fmt"
	"net/http"

	"github.com/nicklaw5/helix/v2"
)

// EnsureSubscription 向Twitch注册积分兑换的EventSub订阅。
// 订阅已存在（409）视为成功。只在配置启用时于启动阶段调用一次。
func EnsureSubscription(client *helix.Client, broadcasterID, callbackURL, secret string) error {
	if err := globalAnnouncer.ensureAppToken(); err != nil {
		return fmt.Errorf("无法获取应用访问令牌: %w", err)
	}

	resp, err := client.CreateEventSubSubscription(&helix.EventSubSubscription{
		Type:    eventSubTypeRedemption,
		Version: "1",
		Condition: helix.EventSubCondition{
			BroadcasterUserID: broadcasterID,
		},
		Transport: helix.EventSubTransport{
			Method:   "webhook",
			Callback: callbackURL,
			Secret:   secret,
		},
	})
	if err != nil {
		return fmt.Errorf("创建EventSub订阅失败: %w", err)
	}
	if resp.StatusCode == http.StatusConflict {
		fmt.Println("EventSub订阅已存在，跳过创建。")
		return nil
	}
	if resp.ErrorMessage != "" {
		return fmt.Errorf("创建EventSub订阅被拒绝: %s", resp.ErrorMessage)
	}

	fmt.Println("EventSub订阅创建成功。")
	return nil
}
