package service

import (
	"runtime"
	"time"

	"github.com/evolvo-uz/evolvo/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Status is a point-in-time snapshot shown in the admin back-office.
type Status struct {
	T   time.Time `json:"t"`
	Cpu float64   `json:"cpu"`
	Mem struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime     uint64 `json:"uptime"`
	Goroutines int    `json:"goroutines"`
	GoVersion  string `json:"goVersion"`
}

// StatusService reports host and process health for the back-office.
type StatusService struct{}

func (s *StatusService) GetStatus() *Status {
	status := &Status{
		T:          time.Now(),
		Goroutines: runtime.NumGoroutine(),
		GoVersion:  runtime.Version(),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		status.Cpu = percents[0]
	} else if err != nil {
		logger.Warning("get cpu percent failed:", err)
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	} else {
		logger.Warning("get memory info failed:", err)
	}

	if uptime, err := host.Uptime(); err == nil {
		status.Uptime = uptime
	} else {
		logger.Warning("get uptime failed:", err)
	}

	return status
}
