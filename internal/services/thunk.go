package services

import (
	"context"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
	"jobportal_front/pkg/apperrors"
)

// thunk - один асинхронный вызов API с тремя фазами в store:
// pending -> вызов -> fulfilled | rejected. Ошибка возвращается вызывающему
// и одновременно сохраняется текстом в срезе.
type thunk[T any] struct {
	slice  store.SliceName
	action string

	// auth проверяет сессию до сетевого вызова; при ошибке запрос не уходит
	auth func() (session.Credentials, error)
	call func(ctx context.Context, creds session.Credentials) (T, error)

	pending   func(s *store.State)
	fulfilled func(s *store.State, result T)
	rejected  func(s *store.State, err error)
}

func (t thunk[T]) run(ctx context.Context, st *store.Store) (T, error) {
	var zero T

	st.Dispatch(t.slice, t.action+"/pending", func(s *store.State) {
		s.Request(t.slice).Start()
		if t.pending != nil {
			t.pending(s)
		}
	})

	creds := session.Credentials{}
	if t.auth != nil {
		c, err := t.auth()
		if err != nil {
			return zero, t.reject(ctx, st, err)
		}
		creds = c
	}

	result, err := t.call(ctx, creds)
	if err != nil {
		return zero, t.reject(ctx, st, err)
	}

	st.Dispatch(t.slice, t.action+"/fulfilled", func(s *store.State) {
		s.Request(t.slice).Succeed()
		if t.fulfilled != nil {
			t.fulfilled(s, result)
		}
	})
	return result, nil
}

func (t thunk[T]) reject(ctx context.Context, st *store.Store, err error) error {
	msg := apperrors.MessageOf(err)
	st.Dispatch(t.slice, t.action+"/rejected", func(s *store.State) {
		s.Request(t.slice).Fail(msg)
		if t.rejected != nil {
			t.rejected(s, err)
		}
	})
	logger.CtxWarn(ctx, "Action rejected",
		"action", t.action,
		"code", apperrors.CodeOf(err),
		"error", msg,
	)
	return err
}

// none - результат для вызовов без тела ответа
type none struct{}
