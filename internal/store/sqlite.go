package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore stores custom games in the custom_games table of a migrated
// database.
func NewSQLiteStore(db *sql.DB) CustomGames {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Get(ctx context.Context, code string) (string, error) {
	query, args, err := sq.Select("target_key").From("custom_games").
		Where(sq.Eq{"code": code}).ToSql()
	if err != nil {
		return "", err
	}
	var key string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get custom game: %w", err)
	}
	return key, nil
}

func (s *sqliteStore) Put(ctx context.Context, code, key string) error {
	query, args, err := sq.Insert("custom_games").
		Options("OR IGNORE").
		Columns("code", "target_key").
		Values(code, key).ToSql()
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("put custom game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrExists
	}
	return nil
}
