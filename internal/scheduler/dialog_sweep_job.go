package scheduler

import (
	"time"

	"github.com/fractionax/marketplace/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// minJobInterval 清理类任务的最短执行间隔
const minJobInterval = time.Minute

// DialogSweeper 过期对话框清理, purchase.Service 实现了该接口
type DialogSweeper interface {
	Sweep(cutoff time.Time) int
}

// DialogSweepJob 关闭长时间未使用的购买对话框
type DialogSweepJob struct {
	sweeper DialogSweeper
	ttl     time.Duration
}

// NewDialogSweepJob 创建清理任务, ttl 至少为两个执行间隔
func NewDialogSweepJob(sweeper DialogSweeper, ttl time.Duration) *DialogSweepJob {
	if ttl < 2*minJobInterval {
		logger.Warn("Dialog ttl %s too short, using %s", ttl, 2*minJobInterval)
		ttl = 2 * minJobInterval
	}
	return &DialogSweepJob{sweeper: sweeper, ttl: ttl}
}

// GetName 获取任务名称
func (j *DialogSweepJob) GetName() string {
	return "purchase_dialog_sweeper"
}

// GetSchedule 每个 ttl 的一半执行一次
func (j *DialogSweepJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.ttl / 2)
}

// Execute 执行任务
func (j *DialogSweepJob) Execute() {
	if closed := j.sweeper.Sweep(time.Now().Add(-j.ttl)); closed > 0 {
		logger.Info("Closed %d expired purchase dialogs", closed)
	}
}
