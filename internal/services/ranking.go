package services

import (
	"log"
	"sync"
	"time"

	"dotgo/internal/db"
	"dotgo/internal/models"
	"dotgo/internal/utils"
)

// RankingService 提供异步计算和更新项目热度分的服务
type RankingService struct {
	queue   chan uint // 待更新的项目 ID 队列
	pending map[uint]bool
	mu      sync.Mutex
}

var (
	rankingService *RankingService
	once           sync.Once
)

// GetRankingService 获取单例排名服务
func GetRankingService() *RankingService {
	once.Do(func() {
		rankingService = &RankingService{
			queue:   make(chan uint, 1000), // 缓冲队列，防止阻塞
			pending: make(map[uint]bool),
		}
		// 启动后台 worker
		go rankingService.worker()
	})
	return rankingService
}

// ScheduleUpdate 将项目加入更新队列（异步）
// 使用去重机制避免短时间内重复计算同一项目
func (s *RankingService) ScheduleUpdate(projectID uint) {
	s.mu.Lock()
	if s.pending[projectID] {
		// 已在队列中，跳过
		s.mu.Unlock()
		return
	}
	s.pending[projectID] = true
	s.mu.Unlock()

	// 非阻塞发送到队列
	select {
	case s.queue <- projectID:
		// 成功加入队列
	default:
		// 队列满了，移除 pending 标记
		s.mu.Lock()
		delete(s.pending, projectID)
		s.mu.Unlock()
		log.Printf("热度更新队列已满，跳过项目 %d", projectID)
	}
}

// worker 后台处理队列中的更新请求
func (s *RankingService) worker() {
	// 批量处理：收集一批请求后统一处理
	batch := make([]uint, 0, 50)
	ticker := time.NewTicker(500 * time.Millisecond) // 每 500ms 处理一批
	defer ticker.Stop()

	for {
		select {
		case projectID := <-s.queue:
			batch = append(batch, projectID)
			if len(batch) >= 50 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			// 定时处理剩余的
			if len(batch) > 0 {
				s.processBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

// processBatch 批量处理项目热度分更新
func (s *RankingService) processBatch(projectIDs []uint) {
	for _, projectID := range projectIDs {
		s.updateProjectScore(projectID)

		// 清除 pending 状态
		s.mu.Lock()
		delete(s.pending, projectID)
		s.mu.Unlock()
	}
}

// updateProjectScore 计算并更新单个项目的热度分
func (s *RankingService) updateProjectScore(projectID uint) {
	var project models.Project
	if err := db.DB.First(&project, projectID).Error; err != nil {
		log.Printf("更新热度分失败：项目 %d 不存在", projectID)
		return
	}

	// 统计评阅数
	var reviews int64
	db.DB.Model(&models.Review{}).Where("project_id = ?", projectID).Count(&reviews)

	// 计算新热度分（0-100 区间整数）
	newScore := utils.CalculateScore(
		project.CreatedAt,
		project.UnlockCount,
		int(reviews),
		project.AvgRating,
	)
	scoreInt := int(newScore)

	if err := db.DB.Model(&project).UpdateColumn("score", scoreInt).Error; err != nil {
		log.Printf("更新项目 %d 热度分失败: %v", projectID, err)
	}
}

// StartScheduledScoreUpdate 启动定时热度刷新任务（每天凌晨 3 点执行）
func (s *RankingService) StartScheduledScoreUpdate() {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), 3, 0, 0, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			time.Sleep(time.Until(next))

			log.Println("开始定时刷新项目热度分...")
			s.refreshHotProjects()
			log.Println("定时刷新项目热度分完成")
		}
	}()
}

// refreshHotProjects 刷新最近 7 天和热度最高的 30 个项目（边遍历边去重）
func (s *RankingService) refreshHotProjects() {
	processed := make(map[uint]bool)
	count := 0

	// 1. 最近 7 天的项目
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	var recent []models.Project
	db.DB.Where("created_at >= ?", sevenDaysAgo).Select("id").Find(&recent)
	for _, p := range recent {
		s.updateProjectScore(p.ID)
		processed[p.ID] = true
		count++
	}

	// 2. 热度最高的 30 个项目（跳过已处理的）
	var top []models.Project
	db.DB.Order("score DESC").Limit(30).Select("id").Find(&top)
	for _, p := range top {
		if !processed[p.ID] {
			s.updateProjectScore(p.ID)
			count++
		}
	}

	log.Printf("本次刷新 %d 个项目热度分", count)
}
