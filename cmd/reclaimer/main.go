package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vidtube/vidtube-backend/internal/config"
	"github.com/vidtube/vidtube-backend/internal/reclaimer"
	videoRepository "github.com/vidtube/vidtube-backend/internal/videos/repository"
	"github.com/vidtube/vidtube-backend/pkg/db/aws"
	"github.com/vidtube/vidtube-backend/pkg/db/redis"
	"github.com/vidtube/vidtube-backend/pkg/logger"
)

func main() {
	log.Println("Starting reclaimer")
	configFile := "config.yml"
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}
	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()
	appLogger.Infof("AppVersion: %s, LogLevel: %s, Mode: %s", cfg.Server.AppVersion, cfg.Logger.Level, cfg.Server.Mode)

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	appLogger.Infof("redis connected")
	defer redisClient.Close()

	s3Client, err := aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		appLogger.Fatalf("could not connect to s3: %s", err)
	}

	awsRepo := videoRepository.NewAwsRepository(s3Client, cfg)
	redisRepo := videoRepository.NewVideoRedisRepo(redisClient)
	stagingRepo := videoRepository.NewStagingRepository(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := reclaimer.NewWorker(cfg, appLogger, redisRepo, awsRepo, stagingRepo)
	w.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit

	appLogger.Infof("shutting down reclaimer")
	cancel()
	w.Wait()
}
