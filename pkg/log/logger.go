package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevel 日志级别
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarn
	LogInfo
	LogDebug
)

// String 返回日志级别字符串
func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "ERROR"
	case LogWarn:
		return "WARN"
	case LogInfo:
		return "INFO"
	case LogDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel 解析日志级别名称，未知名称返回 LogInfo
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(name) {
	case "error":
		return LogError
	case "warn", "warning":
		return LogWarn
	case "debug":
		return LogDebug
	default:
		return LogInfo
	}
}

// Logger 日志接口
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	SetLevel(level LogLevel)
	GetLevel() LogLevel
}

// LogrusLogger 基于 logrus 的日志实现
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger 创建日志，format 为 "json" 时输出 JSON，否则输出文本
func NewLogrusLogger(level LogLevel, format string) *LogrusLogger {
	return NewLogrusLoggerWithOutput(level, format, os.Stdout)
}

// NewLogrusLoggerWithOutput 创建带输出的日志
func NewLogrusLoggerWithOutput(level LogLevel, format string, output io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(output)
	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	l.SetLevel(toLogrusLevel(level))
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// WithField 返回附带字段的日志
func (l *LogrusLogger) WithField(key string, value interface{}) *LogrusLogger {
	return &LogrusLogger{entry: l.entry.WithField(key, value)}
}

// Debug 输出 DEBUG 级别日志
func (l *LogrusLogger) Debug(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Info 输出 INFO 级别日志
func (l *LogrusLogger) Info(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warn 输出 WARN 级别日志
func (l *LogrusLogger) Warn(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error 输出 ERROR 级别日志
func (l *LogrusLogger) Error(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// SetLevel 设置日志级别
func (l *LogrusLogger) SetLevel(level LogLevel) {
	l.entry.Logger.SetLevel(toLogrusLevel(level))
}

// GetLevel 获取日志级别
func (l *LogrusLogger) GetLevel() LogLevel {
	switch l.entry.Logger.GetLevel() {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return LogError
	case logrus.WarnLevel:
		return LogWarn
	case logrus.InfoLevel:
		return LogInfo
	default:
		return LogDebug
	}
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LogError:
		return logrus.ErrorLevel
	case LogWarn:
		return logrus.WarnLevel
	case LogDebug:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// NoOpLogger 空日志实现（用于禁用日志）
type NoOpLogger struct{}

// NewNoOpLogger 创建空日志
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (l *NoOpLogger) Debug(format string, args ...interface{}) {}
func (l *NoOpLogger) Info(format string, args ...interface{})  {}
func (l *NoOpLogger) Warn(format string, args ...interface{})  {}
func (l *NoOpLogger) Error(format string, args ...interface{}) {}
func (l *NoOpLogger) SetLevel(level LogLevel)                  {}
func (l *NoOpLogger) GetLevel() LogLevel                       { return LogInfo }
