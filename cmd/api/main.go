package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookreviews/internal/infrastructure/config"
	"github.com/xiebiao/bookreviews/pkg/logger"
	"github.com/xiebiao/bookreviews/pkg/metrics"
	"github.com/xiebiao/bookreviews/pkg/tracing"
)

// @title           Book Reviews API
// @version         1.0
// @description     图书与评论管理，附带文本摘要和图书推荐。
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service exited")
		os.Exit(1)
	}
}

func run() error {
	// 步骤1: 加载配置
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	// 步骤2: 日志
	closer, err := logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer closer.Close()

	// 步骤3: 指标与链路追踪
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
	}
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			return fmt.Errorf("初始化链路追踪失败: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("tracer shutdown failed")
			}
		}()
	}

	// 步骤4: 依赖注入
	app, cleanup, err := InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	// 步骤5: 后台消费者（推荐缓存失效）
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	app.StartBackground(bgCtx)

	// 步骤6: 启动HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("mode", cfg.Server.Mode).
			Str("database", cfg.Database.Driver).
			Str("summarizer", cfg.Inference.Summarizer.Provider).
			Str("recommender", cfg.Inference.Recommender.Provider).
			Msg("server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 步骤7: 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("HTTP服务器启动失败: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器强制关闭: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
