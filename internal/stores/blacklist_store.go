package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"traffic-analytics/internal/shared/sqlitedb"
)

//go:generate mockgen -source=blacklist_store.go -destination=./mocks/blacklist_store_mock.go -package=mocks
type BlacklistStore interface {
	// ContainsIP reports whether ip is a member of the IP blacklist.
	ContainsIP(ctx context.Context, ip string) (bool, error)
	// ContainsUserAgent reports whether ua is a member of the user-agent blacklist.
	ContainsUserAgent(ctx context.Context, ua string) (bool, error)
	// InsertIPIgnore adds ip to the IP blacklist unless already present.
	InsertIPIgnore(ctx context.Context, ip string) (bool, error)
	// InsertUserAgentIgnore adds ua to the user-agent blacklist unless already present.
	InsertUserAgentIgnore(ctx context.Context, ua string) (bool, error)
}

type blacklistStore struct {
	db sqlitedb.DBTX
}

func NewBlacklistStore(db sqlitedb.DBTX) BlacklistStore {
	return &blacklistStore{db: db}
}

func (s *blacklistStore) ContainsIP(ctx context.Context, ip string) (bool, error) {
	return s.contains(ctx, `SELECT 1 FROM ip_blacklist WHERE ip = ?`, ip)
}

func (s *blacklistStore) ContainsUserAgent(ctx context.Context, ua string) (bool, error) {
	return s.contains(ctx, `SELECT 1 FROM ua_blacklist WHERE ua = ?`, ua)
}

func (s *blacklistStore) InsertIPIgnore(ctx context.Context, ip string) (bool, error) {
	return s.insertIgnore(ctx, `INSERT OR IGNORE INTO ip_blacklist (ip) VALUES (?)`, ip)
}

func (s *blacklistStore) InsertUserAgentIgnore(ctx context.Context, ua string) (bool, error) {
	return s.insertIgnore(ctx, `INSERT OR IGNORE INTO ua_blacklist (ua) VALUES (?)`, ua)
}

func (s *blacklistStore) contains(ctx context.Context, query, value string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, query, value).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist membership: %w", err)
	}
	return true, nil
}

func (s *blacklistStore) insertIgnore(ctx context.Context, query, value string) (bool, error) {
	res, err := s.db.ExecContext(ctx, query, value)
	if err != nil {
		return false, fmt.Errorf("failed to insert blacklist entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
