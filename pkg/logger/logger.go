package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop().Sugar()

// Init builds the process wide logger. Anything other than "production"
// gets the human readable development encoder.
func Init(env string) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewExample()
	}

	log = l.Sugar()
}

// Set swaps the underlying logger, tests use it with zaptest or zap.NewNop.
func Set(l *zap.Logger) {
	log = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

func Sync() {
	_ = log.Sync()
}

func Debug(msg string, args ...interface{}) {
	log.Debugw(msg, normalize(args)...)
}

func Info(msg string, args ...interface{}) {
	log.Infow(msg, normalize(args)...)
}

func Warn(msg string, args ...interface{}) {
	log.Warnw(msg, normalize(args)...)
}

func Error(msg string, args ...interface{}) {
	log.Errorw(msg, normalize(args)...)
}

func Fatal(msg string, args ...interface{}) {
	log.Fatalw(msg, normalize(args)...)
}

// normalize lets callers pass a bare error (logger.Error("msg", err)) next to
// regular key/value pairs.
func normalize(args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			out = append(out, "error", v.Error())
		case string:
			if i+1 < len(args) {
				out = append(out, v, args[i+1])
				i++
				continue
			}
			out = append(out, "detail", v)
		default:
			out = append(out, "detail", v)
		}
	}
	return out
}
