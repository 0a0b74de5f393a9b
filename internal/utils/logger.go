package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const diagnosticsOutputPath = "stderr"

// NewApplicationLogger constructs a zap logger that writes bare messages to standard error.
// Each diagnostic therefore occupies exactly one "<path>: <message>" line.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Sampling = nil
	config.OutputPaths = []string{diagnosticsOutputPath}
	config.ErrorOutputPaths = []string{diagnosticsOutputPath}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}
