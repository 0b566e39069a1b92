// Package logging provides structured logging with categories, request IDs and
// live subscribers. Encoding, level filtering and output fan-out are handled by zap.
package logging

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the severity of a log entry.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(name string) Level {
	switch name {
	case "debug", "DEBUG":
		return DEBUG
	case "warn", "WARN":
		return WARN
	case "error", "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Entry represents a single log entry with structured fields.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Site      string         `json:"site,omitempty"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Duration  *int64         `json:"duration_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Logger is a structured logger that writes to multiple outputs.
type Logger struct {
	mu          sync.RWMutex
	minLevel    Level
	zl          *zap.Logger
	site        string
	subscribers []chan<- Entry
}

// New creates a Logger writing JSON lines to every writer. With no writers the
// logger writes to stdout.
func New(site string, minLevel Level, writers ...io.Writer) *Logger {
	if len(writers) == 0 {
		writers = []io.Writer{os.Stdout}
	}
	syncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		syncers = append(syncers, zapcore.AddSync(w))
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     utcTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.NewAtomicLevelAt(minLevel.zapLevel()),
	)

	zl := zap.New(core)
	if site != "" {
		zl = zl.With(zap.String("site", site))
	}
	return &Logger{
		minLevel: minLevel,
		zl:       zl,
		site:     site,
	}
}

// Nop returns a logger that discards everything. Handy for tests.
func Nop() *Logger {
	return &Logger{minLevel: ERROR + 1, zl: zap.NewNop()}
}

func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}

// Zap exposes the underlying zap logger for libraries that expect one.
func (l *Logger) Zap() *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.zl
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zl.Sync()
}

// Subscribe adds a channel to receive log entries in real-time.
func (l *Logger) Subscribe(ch chan<- Entry) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, ch)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, sub := range l.subscribers {
			if sub == ch {
				l.subscribers = append(l.subscribers[:i], l.subscribers[i+1:]...)
				break
			}
		}
	}
}

// Log writes a log entry at the specified level.
func (l *Logger) Log(level Level, category, message string, fields map[string]any) {
	if l == nil || level < l.minLevel {
		return
	}
	l.write(level, Entry{
		Category: category,
		Message:  message,
		Fields:   fields,
	})
}

// Debug logs a debug message.
func (l *Logger) Debug(category, message string, fields map[string]any) {
	l.Log(DEBUG, category, message, fields)
}

// Info logs an info message.
func (l *Logger) Info(category, message string, fields map[string]any) {
	l.Log(INFO, category, message, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, message string, fields map[string]any) {
	l.Log(WARN, category, message, fields)
}

// Error logs an error message.
func (l *Logger) Error(category, message string, err error, fields map[string]any) {
	if l == nil || ERROR < l.minLevel {
		return
	}
	entry := Entry{
		Category: category,
		Message:  message,
		Fields:   fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	l.write(ERROR, entry)
}

func (l *Logger) write(level Level, entry Entry) {
	entry.Timestamp = time.Now().UTC()
	entry.Level = level.String()
	entry.Site = l.site

	zapFields := make([]zap.Field, 0, 5)
	zapFields = append(zapFields, zap.String("category", entry.Category))
	if len(entry.Fields) > 0 {
		zapFields = append(zapFields, zap.Any("fields", entry.Fields))
	}
	if entry.RequestID != "" {
		zapFields = append(zapFields, zap.String("request_id", entry.RequestID))
	}
	if entry.Duration != nil {
		zapFields = append(zapFields, zap.Int64("duration_ms", *entry.Duration))
	}
	if entry.Error != "" {
		zapFields = append(zapFields, zap.String("error", entry.Error))
	}
	if ce := l.zl.Check(level.zapLevel(), entry.Message); ce != nil {
		ce.Write(zapFields...)
	}

	l.mu.RLock()
	subscribersCopy := make([]chan<- Entry, len(l.subscribers))
	copy(subscribersCopy, l.subscribers)
	l.mu.RUnlock()

	for _, ch := range subscribersCopy {
		select {
		case ch <- entry:
		default:
			// Skip if channel is full
		}
	}
}

// LogContext carries a request ID, category and fields across several log calls.
type LogContext struct {
	logger    *Logger
	requestID string
	category  string
	fields    map[string]any
}

// WithRequestID creates a logging context with a request ID.
func (l *Logger) WithRequestID(requestID string) *LogContext {
	return &LogContext{
		logger:    l,
		requestID: requestID,
		fields:    make(map[string]any),
	}
}

// FromContext creates a logging context bound to the request ID stored in ctx
// by the HTTP middleware, if any.
func (l *Logger) FromContext(ctx context.Context) *LogContext {
	return l.WithRequestID(RequestIDFromContext(ctx))
}

// WithCategory sets the category for this context.
func (c *LogContext) WithCategory(category string) *LogContext {
	c.category = category
	return c
}

// WithField adds a field to this context.
func (c *LogContext) WithField(key string, value any) *LogContext {
	if c.fields == nil {
		c.fields = make(map[string]any)
	}
	c.fields[key] = value
	return c
}

// WithFields adds multiple fields to this context.
func (c *LogContext) WithFields(fields map[string]any) *LogContext {
	if c.fields == nil {
		c.fields = make(map[string]any)
	}
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

func (c *LogContext) log(level Level, message string, err error) {
	if c == nil || c.logger == nil || level < c.logger.minLevel {
		return
	}
	entry := Entry{
		Category:  c.category,
		Message:   message,
		Fields:    c.fields,
		RequestID: c.requestID,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	c.logger.write(level, entry)
}

// Info logs an info message with the context's request ID and fields.
func (c *LogContext) Info(message string) {
	c.log(INFO, message, nil)
}

// Warn logs a warning message with the context's request ID and fields.
func (c *LogContext) Warn(message string) {
	c.log(WARN, message, nil)
}

// Error logs an error message with the context's request ID and fields.
func (c *LogContext) Error(message string, err error) {
	c.log(ERROR, message, err)
}
