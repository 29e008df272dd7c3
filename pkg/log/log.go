// Package log encapsula o logrus com o ID de correlação das requisições e tarefas.
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

// CorrelationIDKey guarda o ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"

const (
	correlationIDField  = "correlation_id"
	maxCorrelationIDLen = 128
)

type logger struct {
	entry *logrus.Entry
}

// L é o logger global, recriado por Configure
var L Logger = newLogger()

var development = isDevelopmentEnv(os.Getenv("APP_ENV"))

func newLogger() Logger {
	return &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func IsDevelopment() bool {
	return development
}

func isDevelopmentEnv(env string) bool {
	switch env {
	case "", "development", "dev", "local":
		return true
	}
	return false
}

// Configure define formato e nível do logrus para os executáveis.
// Em produção os logs saem em JSON, nos demais ambientes em texto.
func Configure(level, env string) {
	development = isDevelopmentEnv(env)

	if development {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = newLogger()
}

// SetupTestLogger deixa a saída legível no go test
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	L = newLogger()
}

// Em desenvolvimento só os campos úteis para depuração vão para a saída
func keep(key string) bool {
	if !IsDevelopment() {
		return true
	}
	switch key {
	case correlationIDField, "method", "path", "status_code", "duration_ms", "error", "campaign_id", "task", "attempt":
		return true
	}
	return strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value any) Logger {
	if !keep(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keep(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

func (l *logger) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...any)                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...any)                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// WithCorrelationID gera um novo ID de correlação
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// WithCorrelationIDValue reaproveita o ID recebido (cabeçalho ou mensagem da fila)
// e gera um novo quando vazio ou longo demais
func WithCorrelationIDValue(ctx context.Context, correlationID string) (context.Context, string) {
	if correlationID == "" || len(correlationID) > maxCorrelationIDLen {
		return WithCorrelationID(ctx)
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
