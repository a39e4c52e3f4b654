package workers

import (
	"context"
	"time"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
	"jobportal_front/pkg/apperrors"
)

// SessionCleaner - хранилище сессий, умеющее удалять устаревшие
type SessionCleaner interface {
	session.Store
	CleanExpired(ctx context.Context, maxAge time.Duration) (int64, error)
}

// SessionWorker удаляет сессии, которые не обновлялись дольше maxAge,
// и забывает состояние страниц удаленных сессий.
type SessionWorker struct {
	sessions SessionCleaner
	stores   *store.Registry
	maxAge   time.Duration
	interval time.Duration
}

func NewSessionWorker(sessions SessionCleaner, stores *store.Registry, maxAge, interval time.Duration) *SessionWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionWorker{
		sessions: sessions,
		stores:   stores,
		maxAge:   maxAge,
		interval: interval,
	}
}

// Start запускает фоновую очистку до отмены ctx
func (w *SessionWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *SessionWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce - один проход очистки. Возвращает число удаленных сессий
// и число сброшенных состояний.
func (w *SessionWorker) RunOnce(ctx context.Context) (int64, int) {
	removed, err := w.sessions.CleanExpired(ctx, w.maxAge)
	if err != nil {
		logger.CtxWithError(ctx, "Error cleaning expired sessions", err)
		return 0, 0
	}
	if removed > 0 {
		logger.Info("Removed expired sessions", "count", removed)
	}

	dropped := 0
	for _, id := range w.stores.IDs() {
		if id == "" {
			continue
		}
		if _, err := w.sessions.Get(ctx, id); apperrors.Is(err, apperrors.ErrSessionNotFound) {
			w.stores.Drop(id)
			dropped++
		}
	}
	return removed, dropped
}
