package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"transcriptai/internal/config"
	"transcriptai/internal/model"
	mysqlClient "transcriptai/internal/platform/mysql"
	rabbitmqClient "transcriptai/internal/platform/rabbitmq"
	redisClient "transcriptai/internal/platform/redis"
	"transcriptai/internal/repository"
	"transcriptai/internal/worker"
)

type App struct {
	Config         *config.Config
	Logger         *zap.Logger
	MySQL          *gorm.DB
	Redis          *redis.Client
	MQConn         *amqp.Connection
	ShareLogWorker *worker.ShareLogWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	var logger *zap.Logger
	if cfg.App.Env == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.Transcript{}, &model.ShareLog{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	shareLogRepo := repository.NewShareLogRepository(mysqlDB)
	shareLogWorker := worker.NewShareLogWorker(mqConn, shareLogRepo, cfg.RabbitMQ.ShareLogQueue, logger)
	if err := shareLogWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start share log worker failed: %w", err)
	}

	return &App{
		Config:         cfg,
		Logger:         logger,
		MySQL:          mysqlDB,
		Redis:          redisCli,
		MQConn:         mqConn,
		ShareLogWorker: shareLogWorker,
		StartedAt:      time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.ShareLogWorker != nil {
		a.ShareLogWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return closeErr
}
