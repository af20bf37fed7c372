package app

import (
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"

	"github.com/beautyfind/beautyfind/internal/moderation"
	"github.com/beautyfind/beautyfind/internal/session"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 60s", func() {
		go a.SchedStatsTask()
		go a.SchedSystemMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.modqueue.PruneActivity(7 * 24 * time.Hour)
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()

	if err := a.bus.Subscribe(session.TopicSessionChanged, func(state string) {
		zap.L().Info("session state changed", zap.String("state", state))
	}); err != nil {
		zap.S().Errorf("bus subscribe error %s", err.Error())
	}
	if err := a.bus.Subscribe(moderation.TopicDecided, func(id, decision string) {
		zap.L().Info("moderation decision", zap.String("id", id), zap.String("decision", decision))
	}); err != nil {
		zap.S().Errorf("bus subscribe error %s", err.Error())
	}
}

// SchedStatsTask logs a periodic health line with queue and session state.
func (a *Application) SchedStatsTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	zap.L().Debug("stats",
		zap.Int("catalog_products", a.catalog.Size()),
		zap.Int("pending_submissions", a.modqueue.PendingCount()),
		zap.Bool("authenticated", a.sessions.IsAuthenticated()),
	)
}

// SchedSystemMonitorTask logs host and process resource usage.
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	fields := []zap.Field{}
	if cpuuse, err := cpu.Percent(0, false); err == nil && len(cpuuse) > 0 {
		fields = append(fields, zap.Float64("system_cpu_percent", cpuuse[0]))
	}
	if meminfo, err := mem.VirtualMemory(); err == nil {
		fields = append(fields, zap.Uint64("system_mem_used_mb", meminfo.Used/1024/1024))
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if cpuuse, err := p.CPUPercent(); err == nil {
			fields = append(fields, zap.Float64("process_cpu_percent", cpuuse))
		}
		if meminfo, err := p.MemoryInfo(); err == nil {
			fields = append(fields, zap.Uint64("process_mem_rss_mb", meminfo.RSS/1024/1024))
		}
	}
	zap.L().Debug("system monitor", fields...)
}
