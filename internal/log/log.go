// Package log holds the zap logger used by the command line tool.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//New builds a console logger on stderr. Debug level is only enabled when verbose.
func New(verbose bool) *zap.SugaredLogger {
	conf := zap.NewProductionConfig()
	conf.Encoding = "console"
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	conf.DisableStacktrace = true
	if verbose {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := conf.Build()
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}
