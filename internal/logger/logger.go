// Package logger provides structured logging and run metrics for dcs-roster.
//
// Log lines are JSON objects written by logrus, one per line, with a timestamp,
// level, message and any structured fields. Logs go to stderr by default so
// they never mix with report output on stdout.
//
// Example usage:
//
//	logger.Warn("Row skipped", logger.Fields{
//	    "row":    12,
//	    "reason": "row has too few cells",
//	})
//
//	logger.IncrCounter("rows.decoded")
//	logger.RecordTiming("parse.document", time.Since(start))
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var logrusLevels = map[Level]logrus.Level{
	LevelDebug: logrus.DebugLevel,
	LevelInfo:  logrus.InfoLevel,
	LevelWarn:  logrus.WarnLevel,
	LevelError: logrus.ErrorLevel,
}

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(name string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(name)))
	if level == "WARNING" {
		level = LevelWarn
	}
	if _, ok := logrusLevels[level]; !ok {
		return "", fmt.Errorf("unknown log level: %s", name)
	}
	return level, nil
}

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger provides structured logging
type Logger struct {
	entry *logrus.Entry
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(LevelWarn, os.Stderr)
}

// New creates a new logger with the specified minimum log level and output destination.
// Messages below the minimum level are discarded.
func New(level Level, output io.Writer) *Logger {
	base := logrus.New()
	base.SetOutput(output)
	base.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})

	lvl, ok := logrusLevels[level]
	if !ok {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a logger that adds fields to every entry
func (l *Logger) With(fields Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// SetDefault sets the package-level logger used by Debug, Info, Warn and Error.
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the package-level logger
func Default() *Logger {
	return defaultLogger
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(logrusLevels[level], message)
}

// Debug logs a debug message with optional structured fields.
func (l *Logger) Debug(message string, fields Fields) {
	l.log(LevelDebug, message, fields, nil)
}

// Info logs an informational message with optional structured fields.
func (l *Logger) Info(message string, fields Fields) {
	l.log(LevelInfo, message, fields, nil)
}

// Warn logs a warning message with optional structured fields.
// Used for roster rows that decode with missing or malformed values.
func (l *Logger) Warn(message string, fields Fields) {
	l.log(LevelWarn, message, fields, nil)
}

// Error logs an error message with optional structured fields and an error object.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Debug logs a debug message with the default logger
func Debug(message string, fields Fields) {
	defaultLogger.Debug(message, fields)
}

// Info logs an info message with the default logger
func Info(message string, fields Fields) {
	defaultLogger.Info(message, fields)
}

// Warn logs a warning message with the default logger
func Warn(message string, fields Fields) {
	defaultLogger.Warn(message, fields)
}

// Error logs an error message with the default logger
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Metrics tracks counters, gauges and timings for one run.
// Gauges hold point-in-time values such as the number of students parsed.
// All operations are thread-safe.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	gauges   map[string]float64
	timings  map[string][]time.Duration
}

var defaultMetrics = NewMetrics()

// NewMetrics creates an empty metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		gauges:   make(map[string]float64),
		timings:  make(map[string][]time.Duration),
	}
}

// IncrCounter increments a counter by 1
func (m *Metrics) IncrCounter(name string) {
	m.AddCounter(name, 1)
}

// AddCounter adds delta to a counter
func (m *Metrics) AddCounter(name string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += delta
}

// Counter returns the current value of a counter
func (m *Metrics) Counter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// SetGauge sets a gauge, overwriting any previous value
func (m *Metrics) SetGauge(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

// Gauge returns the current value of a gauge
func (m *Metrics) Gauge(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gauges[name]
}

// RecordTiming records one duration measurement
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], duration)
}

// Fields returns every counter, every gauge and the total of every timing as
// log fields. Timing names are suffixed with ".total".
func (m *Metrics) Fields() Fields {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields := make(Fields, len(m.counters)+len(m.gauges)+len(m.timings))
	for name, value := range m.counters {
		fields[name] = value
	}
	for name, value := range m.gauges {
		fields[name] = value
	}

	names := make([]string, 0, len(m.timings))
	for name := range m.timings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var total time.Duration
		for _, d := range m.timings[name] {
			total += d
		}
		fields[name+".total"] = total.String()
	}

	return fields
}

// Reset clears all counters, gauges and timings
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = make(map[string]int64)
	m.gauges = make(map[string]float64)
	m.timings = make(map[string][]time.Duration)
}

// IncrCounter increments a counter on the default metrics tracker.
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// AddCounter adds delta to a counter on the default metrics tracker.
func AddCounter(name string, delta int64) {
	defaultMetrics.AddCounter(name, delta)
}

// SetGauge sets a gauge on the default metrics tracker.
func SetGauge(name string, value float64) {
	defaultMetrics.SetGauge(name, value)
}

// RecordTiming records a timing on the default metrics tracker.
func RecordTiming(name string, duration time.Duration) {
	defaultMetrics.RecordTiming(name, duration)
}

// DefaultMetrics returns the package-level metrics tracker
func DefaultMetrics() *Metrics {
	return defaultMetrics
}
