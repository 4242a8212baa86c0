package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("STOCKSUGGEST_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "STOCKSUGGEST_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("STOCKSUGGEST_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

func Debug(args ...interface{}) {
	zap.S().Debug(args...)
}

func Info(args ...interface{}) {
	zap.S().Info(args...)
}

func Warn(args ...interface{}) {
	zap.S().Warn(args...)
}

func Error(args ...interface{}) {
	zap.S().Error(args...)
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
