package scheduler

import (
	"time"

	"github.com/fractionax/marketplace/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// LimiterCleaner 限流器回收, router.RateLimiter 实现了该接口
type LimiterCleaner interface {
	Cleanup(cutoff time.Time) int
}

// LimiterCleanupJob 回收空闲客户端的限流器
type LimiterCleanupJob struct {
	cleaner LimiterCleaner
	idle    time.Duration
}

// NewLimiterCleanupJob 创建回收任务, idle 不足一分钟时按一分钟处理
func NewLimiterCleanupJob(cleaner LimiterCleaner, idle time.Duration) *LimiterCleanupJob {
	if idle < minJobInterval {
		logger.Warn("Rate limiter idle %s too short, using %s", idle, minJobInterval)
		idle = minJobInterval
	}
	return &LimiterCleanupJob{cleaner: cleaner, idle: idle}
}

// GetName 获取任务名称
func (j *LimiterCleanupJob) GetName() string {
	return "rate_limiter_cleanup"
}

// GetSchedule 每个 idle 周期执行一次
func (j *LimiterCleanupJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.idle)
}

// Execute 执行任务
func (j *LimiterCleanupJob) Execute() {
	if removed := j.cleaner.Cleanup(time.Now().Add(-j.idle)); removed > 0 {
		logger.Debug("Removed %d idle rate limiters", removed)
	}
}
