package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one key of the namespace in the kv_entries table.
type Entry struct {
	Key       string `gorm:"column:kv_key;primaryKey;size:191"`
	Value     string `gorm:"column:kv_value;type:text"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore keeps the namespace in a relational table. Keys are prefixed so
// several installs can share one database.
type GormStore struct {
	db     *gorm.DB
	prefix string
}

func NewGormStore(db *gorm.DB, prefix string) *GormStore {
	return &GormStore{db: db, prefix: prefix}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e Entry
	err := s.db.WithContext(ctx).
		Where("kv_key = ?", s.prefix+key).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return e.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	e := Entry{Key: s.prefix + key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kv_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
		}).
		Create(&e).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("kv_key = ?", s.prefix+key).
		Delete(&Entry{}).Error
}

func (s *GormStore) likePrefix() string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s.prefix) + "%"
}

func (s *GormStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Where("kv_key LIKE ?", s.likePrefix()).
		Delete(&Entry{}).Error
}

func (s *GormStore) All(ctx context.Context) (map[string]string, error) {
	var entries []Entry
	if err := s.db.WithContext(ctx).
		Where("kv_key LIKE ?", s.likePrefix()).
		Order("kv_key ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[strings.TrimPrefix(e.Key, s.prefix)] = e.Value
	}
	return out, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Store = (*GormStore)(nil)
