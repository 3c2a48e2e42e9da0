package utils

import (
	"math"
	"time"
)

type RankConfig struct {
	Gravity      float64 // 时间重力 (1.5)
	WeightUnlock float64 // 3.0，付费解锁是最强的兴趣信号
	WeightReview float64 // 2.0
	WeightRating float64 // 1.0
	ScaleFactor  float64 // 放大系数 (100)
}

var DefaultConfig = RankConfig{
	Gravity:      1.5,
	WeightUnlock: 3.0,
	WeightReview: 2.0,
	WeightRating: 1.0,
	ScaleFactor:  100.0, // 让分数落在 0-100 区间，像"温度"
}

func CalculateScore(t time.Time, unlocks, reviews, avgRating int) float64 {
	hours := time.Since(t).Hours()

	// 1. 计算加权互动值 (Weighted Sum)
	weightedSum := (float64(unlocks) * DefaultConfig.WeightUnlock) +
		(float64(reviews) * DefaultConfig.WeightReview) +
		(float64(avgRating) * DefaultConfig.WeightRating)

	// 2. 基础修正
	if weightedSum < 0 {
		weightedSum = 0 // 防止负数无法取对数
	}

	// 3. 对数平滑 (Log Smoothing)
	// log10(sum + 1) -> 确保 sum=0 时结果为 0
	logScore := math.Log10(weightedSum + 1)

	// 4. 放大系数 (0.x -> 几十)
	numerator := logScore * DefaultConfig.ScaleFactor

	// 5. 时间衰减 (分母)
	decay := math.Pow(hours+2, DefaultConfig.Gravity)

	return numerator / decay
}
