package job

import (
	"github.com/evolvo-uz/evolvo/util/common"
	"github.com/evolvo-uz/evolvo/web/middleware"
)

// RateLimitSweepJob drops expired login rate-limit windows so idle
// addresses do not accumulate state.
type RateLimitSweepJob struct {
	limiter *middleware.LoginRateLimiter
}

func NewRateLimitSweepJob(limiter *middleware.LoginRateLimiter) *RateLimitSweepJob {
	return &RateLimitSweepJob{limiter: limiter}
}

// Run implements cron.Job.
func (j *RateLimitSweepJob) Run() {
	defer common.Recover("rate limit sweep job")
	j.limiter.Sweep()
}
