package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kind_contact_server/internal/config"
	dao "kind_contact_server/internal/dao/mysql"
	myredis "kind_contact_server/internal/dao/redis"
	"kind_contact_server/internal/gateway/google"
	"kind_contact_server/internal/gateway/websocket"
	"kind_contact_server/internal/handler"
	"kind_contact_server/internal/https_server"
	"kind_contact_server/internal/infrastructure/events"
	"kind_contact_server/internal/infrastructure/logger"
	"kind_contact_server/internal/service"
	"kind_contact_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	conf := config.GetConfig()
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger initialized")

	repos, db, err := dao.Init(&conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("init database failed", zap.Error(err))
	}
	zap.L().Info("database initialized")

	myredis.Init(&conf.RedisConfig)
	zap.L().Info("redis initialized")

	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	if err := handler.InitTrans(); err != nil {
		zap.L().Fatal("init validator translations failed", zap.Error(err))
	}

	directory := google.NewClient(&conf.GoogleConfig)

	// The websocket hub always carries sync progress; kafka publishing is
	// added on top when configured.
	hub := websocket.NewHub()
	var writer events.Writer = hub
	var kafkaWriter *events.KafkaWriter
	if conf.EventsConfig.Mode == "kafka" {
		kafkaWriter = events.NewKafkaWriter(&conf.EventsConfig)
		writer = events.NewMultiWriter(hub, kafkaWriter)
		zap.L().Info("kafka sync event publishing enabled",
			zap.String("topic", conf.EventsConfig.SyncTopic))
	}

	cache := myredis.NewRedisCache()
	service.InitServices(repos, cache, directory, writer)
	zap.L().Info("services initialized")

	engine := https_server.Init(hub)

	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		zap.L().Info("server listening", zap.String("addr", addr))
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")

	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			zap.L().Warn("close kafka writer failed", zap.Error(err))
		}
	}
	if err := hub.Close(); err != nil {
		zap.L().Warn("close websocket hub failed", zap.Error(err))
	}
	if err := myredis.Close(); err != nil {
		zap.L().Warn("close redis failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			zap.L().Warn("close database failed", zap.Error(err))
		}
	}

	zap.L().Info("server stopped")
}
