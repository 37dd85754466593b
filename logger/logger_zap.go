package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

// InitZap logger with default writer to stdout
func InitZap(opts ...OptionFunc) {
	opt := Option{
		MultiWriter: []io.Writer{os.Stdout},
		Level:       zapcore.DebugLevel,
	}

	for _, o := range opts {
		o(&opt)
	}

	encCfg := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey: "message",

		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,

		TimeKey:    "time",
		EncodeTime: zapcore.ISO8601TimeEncoder,

		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	var coreOpt []zapcore.Core
	for _, w := range opt.MultiWriter {
		coreOpt = append(coreOpt, zapcore.NewCore(encCfg, zapcore.AddSync(w), opt.Level))
	}
	core := zapcore.NewTee(coreOpt...)

	logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()
}

// Sync flush buffered log entries
func Sync() {
	if logger != nil {
		logger.Sync()
	}
}

// Log func
func Log(level zapcore.Level, message string, context string, scope string) {
	if logger == nil {
		return
	}
	entry := logger.With(
		zap.String("context", context),
		zap.String("scope", scope),
	)

	setEntryType(level, entry, message)
}

// LogWithField func
func LogWithField(level zapcore.Level, fields map[string]interface{}) {
	if logger == nil {
		return
	}

	var message interface{}
	var args []interface{}
	for k, v := range fields {
		if k == "message" {
			message = v
			continue
		}
		args = append(args, []interface{}{k, v}...)
	}
	entry := logger.With(args...)
	setEntryType(level, entry, message)
}

// LogE error
func LogE(message string) {
	setEntryType(zapcore.ErrorLevel, logger, message)
}

// LogEf error with format
func LogEf(format string, i ...interface{}) {
	setEntryTypef(zapcore.ErrorLevel, logger, format, i...)
}

// LogW warning
func LogW(message string) {
	setEntryType(zapcore.WarnLevel, logger, message)
}

// LogWf warning with format
func LogWf(format string, i ...interface{}) {
	setEntryTypef(zapcore.WarnLevel, logger, format, i...)
}

// LogI info
func LogI(message string) {
	setEntryType(zapcore.InfoLevel, logger, message)
}

// LogIf info with format
func LogIf(format string, i ...interface{}) {
	setEntryTypef(zapcore.InfoLevel, logger, format, i...)
}

// LogIfError log error if error is not nil
func LogIfError(err error) {
	if err != nil {
		setEntryType(zapcore.ErrorLevel, logger, err.Error())
	}
}

func setEntryType(level zapcore.Level, entry *zap.SugaredLogger, msg interface{}) {
	if entry == nil {
		return
	}

	switch level {
	case zapcore.DebugLevel:
		entry.Debug(msg)
	case zapcore.InfoLevel:
		entry.Info(msg)
	case zapcore.WarnLevel:
		entry.Warn(msg)
	case zapcore.ErrorLevel:
		entry.Error(msg)
	case zapcore.FatalLevel:
		entry.Fatal(msg)
	case zapcore.PanicLevel:
		entry.Panic(msg)
	}
}

func setEntryTypef(level zapcore.Level, entry *zap.SugaredLogger, format string, args ...interface{}) {
	if entry == nil {
		return
	}

	switch level {
	case zapcore.InfoLevel:
		entry.Infof(format, args...)
	case zapcore.WarnLevel:
		entry.Warnf(format, args...)
	case zapcore.ErrorLevel:
		entry.Errorf(format, args...)
	default:
		entry.Debugf(format, args...)
	}
}
