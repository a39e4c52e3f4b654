package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
	"jobportal_front/internal/store"
)

const referenceCacheKey = "reference:data"

// ReferenceCache - общий для всех сессий кеш справочников (Redis)
type ReferenceCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type ReferenceService struct {
	base
	cache ReferenceCache
}

func NewReferenceService(b base, cache ReferenceCache) *ReferenceService {
	return &ReferenceService{base: b, cache: cache}
}

// LoadReferenceData загружает справочники один раз на сессию.
// force перечитывает их с сервера, минуя состояние сессии и Redis, и обновляет Redis.
func (s *ReferenceService) LoadReferenceData(ctx context.Context, sess *session.Session, force bool) (models.ReferenceData, error) {
	st := s.storeOf(sess)
	if !force {
		data, loaded := store.Lookup(st, func(state *store.State) (models.ReferenceData, bool) {
			return state.Reference.Data, state.Reference.Loaded
		})
		if loaded {
			return data, nil
		}
	}

	return thunk[models.ReferenceData]{
		slice:  store.SliceReference,
		action: "reference/loadReferenceData",
		call: func(ctx context.Context, _ session.Credentials) (models.ReferenceData, error) {
			return s.fetch(ctx, sess.Credentials(), force)
		},
		fulfilled: func(state *store.State, data models.ReferenceData) {
			state.Reference.Set(data)
		},
	}.run(ctx, st)
}

func (s *ReferenceService) fetch(ctx context.Context, creds session.Credentials, force bool) (models.ReferenceData, error) {
	var data models.ReferenceData
	if s.cache != nil && !force {
		hit, err := s.cache.GetJSON(ctx, referenceCacheKey, &data)
		if err != nil {
			logger.CtxWarn(ctx, "Reference cache read failed", "error", err)
		}
		if hit && !data.Empty() {
			logger.CtxDebug(ctx, "Reference cache HIT")
			return data, nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Skills, err = s.api.Skills(gctx, creds)
		return err
	})
	g.Go(func() (err error) {
		data.Sectors, err = s.api.Sectors(gctx, creds)
		return err
	})
	g.Go(func() (err error) {
		data.Benefits, err = s.api.Benefits(gctx, creds)
		return err
	})
	g.Go(func() (err error) {
		data.Locations, err = s.api.Locations(gctx, creds)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.ReferenceData{}, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, referenceCacheKey, data, 0); err != nil {
			logger.CtxWarn(ctx, "Reference cache write failed", "error", err)
		}
	}
	return data, nil
}
