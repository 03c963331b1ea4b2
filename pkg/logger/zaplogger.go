package logger

import (
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the layout of the "timestamp" field of every log line.
const TimeLayout = "2006-01-02T15-04-05.000"

// callerSkip counts the frames between runtime.Caller and the code that
// called an exported logging method.
const callerSkip = 3

type Logger struct {
	app   *appInfo
	level zap.AtomicLevel
	l     *zap.Logger
}

// appInfo is shared by a logger and all of its children.
type appInfo struct {
	env  string
	name string
}

func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = timeEncoder(TimeLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	syncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, writer := range writers {
		syncers = append(syncers, zapcore.AddSync(writer))
	}
	if len(syncers) == 0 {
		syncers = append(syncers, os.Stdout)
	}

	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.NewMultiWriteSyncer(syncers...),
		level,
	)

	return &Logger{
		app:   &appInfo{name: appName},
		level: level,
		l:     zap.New(core),
	}
}

// With returns a child logger that adds fields to every line. Level and app
// info stay shared with the parent.
func (l *Logger) With(fields map[string]any) *Logger {
	return &Logger{
		app:   l.app,
		level: l.level,
		l:     l.l.With(mapToZapFields(fields)...),
	}
}

// SetLevel changes the minimum level at runtime. Accepts zap level names.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

// SetEnv sets the app_zone field. Call it before the logger is shared.
func (l *Logger) SetEnv(env string) {
	l.app.env = env
}

func (l *Logger) Stop() error {
	return l.l.Sync()
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	l.log(zapcore.ErrorLevel, err.Error(), fields,
		zap.String("error", err.Error()),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.log(zapcore.InfoLevel, msg, fields)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.log(zapcore.WarnLevel, msg, fields)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.log(zapcore.DebugLevel, msg, fields)
}

// Fatal writes the line and exits the process.
func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.log(zapcore.FatalLevel, msg, fields)
}

func (l *Logger) log(level zapcore.Level, msg string, fields []map[string]any, extra ...zap.Field) {
	ce := l.l.Check(level, msg)
	if ce == nil {
		return
	}

	file, line, funcName := caller(callerSkip)
	out := []zap.Field{
		zap.String("app_zone", l.app.env),
		zap.String("app_name", l.app.name),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	}
	out = append(out, extra...)
	if len(fields) > 0 {
		out = append(out, mapToZapFields(fields[0])...)
	}

	ce.Write(out...)
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))
	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

func caller(skip int) (file string, line int, funcName string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "not_defined", 0, "not_defined"
	}
	return file, line, runtime.FuncForPC(pc).Name()
}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
