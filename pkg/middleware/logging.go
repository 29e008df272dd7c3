package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/log"
)

// RequestIDHeader é o cabeçalho usado para propagar o ID de correlação
const RequestIDHeader = "X-Request-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição HTTP com o ID de correlação,
// reaproveitando o X-Request-ID recebido quando houver
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationIDValue(r.Context(), r.Header.Get(RequestIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(RequestIDHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"query":          r.URL.RawQuery,
				"remote_addr":    r.RemoteAddr,
				"user_agent":     r.UserAgent(),
				"status_code":    lrw.statusCode,
				"duration_ms":    elapsed.Milliseconds(),
				"bytes":          lrw.written,
			})

			msg := fmt.Sprintf("%s %s %d em %s", r.Method, r.URL.Path, lrw.statusCode, formatDuration(elapsed))
			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error(msg)
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", elapsed)
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status e o tamanho da resposta
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	written     int
	wroteHeader bool
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if !lrw.wroteHeader {
		lrw.statusCode = code
		lrw.wroteHeader = true
	}
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	lrw.wroteHeader = true
	n, err := lrw.ResponseWriter.Write(b)
	lrw.written += n
	return n, err
}

// LogPanicMiddleware recupera panics dos handlers e responde 500 no formato padrão
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  fmt.Sprint(rec),
					"method": r.Method,
					"path":   r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Erro não tratado na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
