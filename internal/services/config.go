package services

import (
	"log"
	"os"
	"strconv"
)

// MarketConfig 市场定价配置，进程生命周期内不可变。
// 默认值沿用链上版本 3 DOT = 2.5 + 0.5 的分成比例。
type MarketConfig struct {
	UnlockPrice   int64 // 解锁一个项目的固定价格
	StudentShare  int64 // 项目作者分成
	PlatformShare int64 // 平台金库分成
}

var marketConfig *MarketConfig

// GetMarketConfig 获取市场配置单例。
// 分成不变式 student_share + platform_share == unlock_price
// 在这里一次性校验，运行期不再逐次检查。
func GetMarketConfig() *MarketConfig {
	if marketConfig == nil {
		cfg := &MarketConfig{
			UnlockPrice:   envInt64("UNLOCK_PRICE", 300),
			StudentShare:  envInt64("STUDENT_SHARE", 250),
			PlatformShare: envInt64("PLATFORM_SHARE", 50),
		}

		if cfg.UnlockPrice <= 0 {
			log.Fatalf("Invalid market config: unlock_price must be positive, got %d", cfg.UnlockPrice)
		}
		if cfg.StudentShare+cfg.PlatformShare != cfg.UnlockPrice {
			log.Fatalf("Invalid market config: student_share(%d) + platform_share(%d) != unlock_price(%d)",
				cfg.StudentShare, cfg.PlatformShare, cfg.UnlockPrice)
		}

		marketConfig = cfg
	}
	return marketConfig
}

// envInt64 读取整型环境变量，未设置或非法时返回默认值
func envInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}
