package middleware

import (
	"encoding/json"
	"net/http"
	"routineTracker/internal/logger"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// окно фиксированное: счётчик клиента сбрасывается целиком по истечении
type window struct {
	used    int
	resetAt time.Time
}

// Limiter считает запросы по ключу (ip клиента) в окне фиксированной длины.
// Окна с истёкшим сроком вычищаются не чаще раза за период окна.
type Limiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mtx       sync.Mutex
	windows   map[string]*window
	nextSweep time.Time
}

type LimiterOption func(*Limiter)

func WithLimiterClock(now func() time.Time) LimiterOption {
	return func(l *Limiter) {
		l.now = now
	}
}

func NewLimiter(limit int, period time.Duration, opts ...LimiterOption) *Limiter {
	l := &Limiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.nextSweep = l.now().Add(period)
	return l
}

// Allow учитывает запрос и возвращает остаток и момент сброса окна.
// ok == false - лимит исчерпан, запрос не учтён.
func (l *Limiter) Allow(key string) (remaining int, resetAt time.Time, ok bool) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	now := l.now()
	if !now.Before(l.nextSweep) {
		l.sweep(now)
	}

	w, found := l.windows[key]
	if !found || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.period)}
		l.windows[key] = w
	}

	if w.used >= l.limit {
		return 0, w.resetAt, false
	}
	w.used++
	return l.limit - w.used, w.resetAt, true
}

// Len - число отслеживаемых клиентов
func (l *Limiter) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	return len(l.windows)
}

func (l *Limiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
	l.nextSweep = now.Add(l.period)
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remaining, resetAt, ok := l.Allow(getIp(r))

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if ok {
			next.ServeHTTP(w, r)
			return
		}

		retryAfter := int(resetAt.Sub(l.now()).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		logger.Warn(
			"HTTP: превышен лимит запросов",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.String("client_ip", getIp(r)),
			zap.Int("retry_after", retryAfter),
		)

		h.Set("Content-Type", "application/json")
		h.Set("Retry-After", strconv.Itoa(retryAfter))
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error":       "rate_limit_exceeded",
			"message":     "Слишком много запросов. Попробуйте позже.",
			"retry_after": retryAfter,
			"request_id":  GetRequestID(r.Context()),
		})
	})
}

// RateLimit - лимит rpm запросов в минуту на ip
func RateLimit(rpm int) func(http.Handler) http.Handler {
	return NewLimiter(rpm, time.Minute).Middleware
}
