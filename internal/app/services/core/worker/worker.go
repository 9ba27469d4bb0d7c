package worker

import (
	"context"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one scheduled task. With LeaderLockKey set, only the instance that
// holds the lock runs it on a given tick.
type Job struct {
	Name          string
	Spec          string
	FallbackSpec  string
	LeaderLockKey string
	LeaderLockTTL time.Duration
	Run           func(ctx context.Context) error
}

// Worker runs jobs on their cron schedules until stopped.
type Worker struct {
	log      *zap.Logger
	locker   contracts.LockerService
	jobs     []Job
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewWorker builds a worker. locker may be nil, in which case leader locks
// are skipped and every instance runs every job.
func NewWorker(log *zap.Logger, locker contracts.LockerService, jobs ...Job) *Worker {
	return &Worker{log: log, locker: locker, jobs: jobs}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	for _, job := range w.jobs {
		job := job
		run := func() { w.runJob(w.runCtx, job) }
		if _, err := c.AddFunc(job.Spec, run); err != nil {
			w.log.Warn("worker: invalid cron spec, using fallback",
				zap.String(constvars.LoggingJobNameKey, job.Name),
				zap.String("spec", job.Spec),
				zap.String("fallback_spec", job.FallbackSpec),
				zap.Error(err),
			)
			if _, err := c.AddFunc(job.FallbackSpec, run); err != nil {
				w.log.Error("worker: job not scheduled",
					zap.String(constvars.LoggingJobNameKey, job.Name),
					zap.Error(err),
				)
			}
		}
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for them to return.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		if w.cron != nil {
			<-w.cron.Stop().Done()
		}
	})
}

func (w *Worker) runJob(ctx context.Context, job Job) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID := utils.GetRequestID(ctx)

	if job.LeaderLockKey != "" && w.locker != nil {
		release, ok := w.acquireLeader(ctx, job)
		if !ok {
			return
		}
		defer release()
	}

	err := utils.LogOperation(w.log, job.Name, requestID, func() error {
		return job.Run(ctx)
	})
	if err != nil {
		w.log.Warn("worker: job failed",
			zap.String(constvars.LoggingJobNameKey, job.Name),
			zap.Error(err),
		)
	}
}

// acquireLeader takes the job's leader lock and keeps it alive at half its
// TTL until the returned release func runs.
func (w *Worker) acquireLeader(ctx context.Context, job Job) (func(), bool) {
	ttl := job.LeaderLockTTL
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	acquired, token, err := w.locker.TryLock(ctx, job.LeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("worker: leader lock attempt failed",
			zap.String(constvars.LoggingJobNameKey, job.Name),
			zap.Error(err),
		)
		return nil, false
	}
	if !acquired {
		w.log.Info("worker: leader lock held by another instance",
			zap.String(constvars.LoggingJobNameKey, job.Name),
		)
		return nil, false
	}

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, job.LeaderLockKey, token, ttl); err != nil {
					w.log.Warn("worker: failed to refresh leader lock",
						zap.String(constvars.LoggingJobNameKey, job.Name),
						zap.Error(err),
					)
				}
			}
		}
	}()

	return func() {
		cancelRefresh()
		if err := w.locker.Unlock(context.WithoutCancel(ctx), job.LeaderLockKey, token); err != nil {
			w.log.Warn("worker: failed to release leader lock",
				zap.String(constvars.LoggingJobNameKey, job.Name),
				zap.Error(err),
			)
		}
	}, true
}
