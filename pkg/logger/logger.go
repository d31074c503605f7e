// Package logger 基于zerolog的全局结构化日志
//
// 用法：
//
//	logger.Init(logger.Config{Level: "info", Format: "json", Output: "stdout"})
//	log.Info().Str("addr", addr).Msg("server started")
//	log.Ctx(ctx).Error().Err(err).Msg("request failed") // 携带请求ID
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config 日志配置
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// Init 初始化全局日志
// 返回的closer用于关闭文件输出（stdout/stderr时为空操作）
func Init(cfg Config) (io.Closer, error) {
	out, closer, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	l := zerolog.New(out).With().Timestamp()
	if cfg.EnableCaller {
		l = l.Caller()
	}
	log.Logger = l.Logger()

	// log.Ctx(ctx)在上下文没有logger时回落到全局logger
	zerolog.DefaultContextLogger = &log.Logger

	return closer, nil
}

// ParseLevel 字符串 → zerolog级别，未知值按info处理
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
	}
	return f, f, nil
}
