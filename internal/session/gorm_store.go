package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jobportal_front/internal/models"
	"jobportal_front/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRecord - строка таблицы browser_sessions
type sessionRecord struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	AccessToken  string `gorm:"type:text"`
	RefreshToken string `gorm:"type:text"`
	UserID       string `gorm:"index"`
	Role         string
	UserInfo     datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (sessionRecord) TableName() string {
	return "browser_sessions"
}

// GormStore хранит сессии в Postgres, чтобы они переживали рестарт фронта
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate создает таблицу browser_sessions
func (g *GormStore) Migrate() error {
	return g.db.AutoMigrate(&sessionRecord{})
}

func (g *GormStore) Get(ctx context.Context, id string) (*Session, error) {
	var rec sessionRecord
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}
	return rec.toSession(), nil
}

func (g *GormStore) Save(ctx context.Context, s *Session) error {
	rec := fromSession(s)
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error
}

func (g *GormStore) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&sessionRecord{}).Error
}

// CleanExpired удаляет сессии, которые не обновлялись дольше maxAge
func (g *GormStore) CleanExpired(ctx context.Context, maxAge time.Duration) (int64, error) {
	res := g.db.WithContext(ctx).Where("updated_at < ?", time.Now().Add(-maxAge)).Delete(&sessionRecord{})
	return res.RowsAffected, res.Error
}

func (r *sessionRecord) toSession() *Session {
	var info json.RawMessage
	if len(r.UserInfo) > 0 {
		info = json.RawMessage(r.UserInfo)
	}
	return &Session{
		ID:           r.ID,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		UserID:       r.UserID,
		Role:         models.UserRole(r.Role),
		UserInfo:     info,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func fromSession(s *Session) *sessionRecord {
	var info datatypes.JSON
	if len(s.UserInfo) > 0 {
		info = datatypes.JSON(s.UserInfo)
	}
	return &sessionRecord{
		ID:           s.ID,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		UserID:       s.UserID,
		Role:         string(s.Role),
		UserInfo:     info,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

var _ Store = (*GormStore)(nil)
