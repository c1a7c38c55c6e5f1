package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is replaced by Initialize.
var Log = zap.NewNop()

// Initialize builds the service logger. Production uses ISO8601 JSON,
// anything else the colored development encoder. When sink is non-nil
// every entry is also written to it as JSON (CloudWatch Logs).
func Initialize(env string, sink io.Writer) (*zap.Logger, error) {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var (
		l   *zap.Logger
		err error
	)
	if sink != nil {
		level := zap.NewAtomicLevelAt(config.Level.Level())
		consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(config.EncoderConfig), zapcore.AddSync(os.Stdout), level)

		jsonConfig := config.EncoderConfig
		jsonConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		sinkCore := zapcore.NewCore(zapcore.NewJSONEncoder(jsonConfig), zapcore.AddSync(sink), level)

		l = zap.New(zapcore.NewTee(consoleCore, sinkCore), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		l, err = config.Build()
		if err != nil {
			return nil, err
		}
	}

	Log = l
	zap.ReplaceGlobals(l)
	return l, nil
}

// Sync flushes buffered entries; the error from syncing stdout is ignored.
func Sync() {
	_ = Log.Sync()
}
