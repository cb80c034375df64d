package reclaimer

import (
	"context"
	"sync"
	"time"

	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/models"
	"github.com/vidtube/vidtube-backend/internal/videos"
	"github.com/vidtube/vidtube-backend/pkg/logger"
	"github.com/vidtube/vidtube-backend/pkg/utils"
)

const dequeueTimeout = 5 * time.Second

// Worker drains the reclaim queue, retrying remote deletions that failed
// inline, and periodically sweeps stale staging files.
type Worker struct {
	logger      logger.Logger
	redisRepo   videos.RedisRepository
	awsRepo     videos.AWSRepository
	stagingRepo videos.StagingRepository
	cfg         *config.Config
	wg          sync.WaitGroup
}

func NewWorker(cfg *config.Config, logger logger.Logger, redisRepo videos.RedisRepository, awsRepo videos.AWSRepository, stagingRepo videos.StagingRepository) *Worker {
	return &Worker{
		logger:      logger,
		redisRepo:   redisRepo,
		awsRepo:     awsRepo,
		stagingRepo: stagingRepo,
		cfg:         cfg,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting reclaimer")
	for i := 0; i < w.cfg.Reclaimer.WorkerCount; i++ {
		w.wg.Add(1)
		go w.consume(ctx)
	}
	w.wg.Add(1)
	go w.sweep(ctx)
}

func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) consume(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if canAcceptJob, usage := utils.CheckCPUUsage(w.cfg.Reclaimer.MaxCPUUsage); !canAcceptJob {
			w.logger.Infof("CPU usage is high: %f", usage)
			time.Sleep(dequeueTimeout)
			continue
		}

		task, err := w.redisRepo.DequeueReclaim(ctx, w.cfg.Redis.ReclaimQueue, dequeueTimeout)
		if err != nil {
			w.logger.Errorf("error dequeueing reclaim task: %v", err)
			time.Sleep(dequeueTimeout)
			continue
		}
		if task == nil {
			continue
		}

		w.process(ctx, task)
	}
}

func (w *Worker) process(ctx context.Context, task *models.ReclaimTask) {
	if err := w.awsRepo.RemoveObject(ctx, task.Ref); err == nil {
		w.logger.Infof("reclaimed asset %s after %d attempts", task.Ref, task.Attempts)
		return
	} else {
		w.logger.Errorf("error reclaiming asset %s: %v", task.Ref, err)
	}

	task.Attempts++
	if task.Attempts >= w.cfg.Reclaimer.MaxAttempts {
		w.logger.Errorf("giving up on asset %s after %d attempts", task.Ref, task.Attempts)
		return
	}
	if err := w.redisRepo.EnqueueReclaim(ctx, w.cfg.Redis.ReclaimQueue, task); err != nil {
		w.logger.Errorf("error requeueing reclaim task %s: %v", task.TaskID, err)
	}
}

func (w *Worker) sweep(ctx context.Context) {
	defer w.wg.Done()
	interval := time.Duration(w.cfg.Reclaimer.SweepInterval) * time.Minute
	maxAge := time.Duration(w.cfg.Staging.MaxAgeMins) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := w.stagingRepo.SweepOlderThan(maxAge)
			if err != nil {
				w.logger.Errorf("error sweeping staging dir: %v", err)
				continue
			}
			if removed > 0 {
				w.logger.Infof("swept %d stale staging files", removed)
			}
		}
	}
}
