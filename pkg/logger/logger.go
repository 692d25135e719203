package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	var err error
	L, err = build(os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
}

func build(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.Set(level); err != nil {
			return nil, err
		}
	}
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build()
}

// SetLevel 以設定檔的 log level 重建全域 logger
func SetLevel(level string) error {
	l, err := build(level)
	if err != nil {
		return err
	}
	L = l
	return nil
}

// WithComponent 回傳帶有 component 欄位的 logger，供 handler、service、worker 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// WithSession 回傳帶有 component 與 session_id 欄位的 logger
func WithSession(component, sessionID string) *zap.Logger {
	return WithComponent(component).With(zap.String("session_id", sessionID))
}
