// Package job contains the scheduled background jobs run by the web
// server's cron instance.
package job

import (
	"fmt"
	"time"

	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/util/common"
	"github.com/evolvo-uz/evolvo/web/service"
)

// OrderDigestJob sends a daily Telegram summary of inquiries received in
// the last 24 hours.
type OrderDigestJob struct {
	orderService *service.OrderService
	tgbot        *service.Tgbot
}

func NewOrderDigestJob(orderService *service.OrderService, tgbot *service.Tgbot) *OrderDigestJob {
	return &OrderDigestJob{orderService: orderService, tgbot: tgbot}
}

// Run implements cron.Job.
func (j *OrderDigestJob) Run() {
	defer common.Recover("order digest job")
	if !j.tgbot.Enabled() {
		return
	}
	count, err := j.orderService.CountNewOrdersSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		logger.Warning("order digest job err:", err)
		return
	}
	if count == 0 {
		return
	}
	text := fmt.Sprintf("Daily digest: %d new inquiries in the last 24 hours", count)
	if err := j.tgbot.SendMessage(text); err != nil {
		logger.Warning("order digest job err:", err)
	}
}
