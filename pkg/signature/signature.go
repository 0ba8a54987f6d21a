// Package signature 实现Twitch EventSub通知的HMAC签名校验。
// 这是Webhook触发事件的唯一信任边界。
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// prefix 是Twitch签名头的固定前缀
const prefix = "sha256="

// Verify 校验一条EventSub通知是否确实来自Twitch。
// 签名是对 messageID + timestamp + 原始请求体 的HMAC-SHA256。
// 密钥或任何必需的头缺失时立即拒绝，不计算哈希；
// 比较使用hmac.Equal，耗时与匹配的字节数无关。
func Verify(secret, messageID, timestamp, claimed string, body []byte) bool {
	if secret == "" || messageID == "" || timestamp == "" || claimed == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	expected := prefix + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(claimed))
}
