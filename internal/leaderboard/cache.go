package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// cacheVersionKey 是一个Redis计数器，每次写入后递增。
	// 缓存键包含版本号，失效时只需INCR，无需扫描删除。
	cacheVersionKey = "leaderboard:cache:version"

	// cacheTTL 是缓存条目的保底过期时间
	cacheTTL = 5 * time.Minute
)

// TopCache 是排行榜top-N查询的读取侧缓存。
// 它只是派生数据：任何Redis故障都回落到数据库，绝不向调用方报错。
type TopCache struct {
	rdb *redis.Client
	ctx context.Context
}

// NewTopCache 创建一个基于Redis的排行榜缓存
func NewTopCache(rdb *redis.Client) *TopCache {
	return &TopCache{rdb: rdb, ctx: context.Background()}
}

// entryKey 构造包含当前版本号的缓存键
func (c *TopCache) entryKey(n int) (string, error) {
	version, err := c.rdb.Get(c.ctx, cacheVersionKey).Result()
	if err != nil {
		if err == redis.Nil {
			version = "0"
		} else {
			return "", err
		}
	}
	return fmt.Sprintf("leaderboard:top:%s:%d", version, n), nil
}

// get 尝试读取缓存的top-N结果
func (c *TopCache) get(n int) ([]Entry, bool) {
	key, err := c.entryKey(n)
	if err != nil {
		return nil, false
	}
	payload, err := c.rdb.Get(c.ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// set 回填一次top-N查询结果，失败只记录日志
func (c *TopCache) set(n int, entries []Entry) {
	key, err := c.entryKey(n)
	if err != nil {
		return
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.rdb.Set(c.ctx, key, payload, cacheTTL).Err(); err != nil {
		fmt.Printf("警告: 排行榜缓存写入失败: %v\n", err)
	}
}

// invalidate 通过递增版本号使所有缓存键一次性失效
func (c *TopCache) invalidate() {
	if err := c.rdb.Incr(c.ctx, cacheVersionKey).Err(); err != nil {
		fmt.Printf("警告: 排行榜缓存失效失败: %v\n", err)
	}
}
