// internal/daily/store.go
//
// Daily-mode bookkeeping in SQLite.
//   - daily_attempts: guesses per player per date key (player = user id or
//     anonymous cookie id), with the time of the first guess.
//   - daily_results: first correct guess per player per date (UNIQUE), used for
//     the leaderboard and per-user stats.
// Custom games are never recorded here.

package daily

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Result is one solved daily puzzle.
type Result struct {
	PlayerID  string `json:"playerId"`
	Date      string `json:"date"`
	TargetKey string `json:"target"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// LBRow is one leaderboard line. Username is empty for anonymous players.
type LBRow struct {
	PlayerID  string `json:"playerId"`
	Username  string `json:"username,omitempty"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats summarises a player's daily history.
type Stats struct {
	Played    int `json:"gamesPlayed"`
	Wins      int `json:"wins"`
	Streak    int `json:"streak"`
	MaxStreak int `json:"maxStreak"`
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// RecordAttempt counts one guess for playerID on date and returns the new total.
func (s *Store) RecordAttempt(ctx context.Context, playerID, date string, now time.Time) (int, error) {
	query, args, err := sq.Insert("daily_attempts").
		Columns("player_id", "date", "attempts", "first_at").
		Values(playerID, date, 1, now.UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT (player_id, date) DO UPDATE SET attempts = attempts + 1").
		ToSql()
	if err != nil {
		return 0, err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("record attempt: %w", err)
	}

	var attempts int
	query, args, err = sq.Select("attempts").From("daily_attempts").
		Where(sq.Eq{"player_id": playerID, "date": date}).
		ToSql()
	if err != nil {
		return 0, err
	}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("read attempts: %w", err)
	}
	return attempts, nil
}

// Solve records the first correct guess of the day. It reports false when the
// player had already solved this date.
func (s *Store) Solve(ctx context.Context, playerID, date, targetKey string, now time.Time) (Result, bool, error) {
	r := Result{PlayerID: playerID, Date: date, TargetKey: targetKey}

	query, args, err := sq.Select("attempts", "first_at").From("daily_attempts").
		Where(sq.Eq{"player_id": playerID, "date": date}).
		ToSql()
	if err != nil {
		return r, false, err
	}
	var firstAt string
	switch err := s.db.QueryRowContext(ctx, query, args...).Scan(&r.Guesses, &firstAt); {
	case errors.Is(err, sql.ErrNoRows):
		r.Guesses = 1
	case err != nil:
		return r, false, fmt.Errorf("read attempts: %w", err)
	default:
		if t, err := time.Parse(time.RFC3339Nano, firstAt); err == nil {
			r.ElapsedMs = now.Sub(t).Milliseconds()
		}
	}

	query, args, err = sq.Insert("daily_results").
		Options("OR IGNORE").
		Columns("player_id", "date", "target_key", "guesses", "elapsed_ms").
		Values(r.PlayerID, r.Date, r.TargetKey, r.Guesses, r.ElapsedMs).
		ToSql()
	if err != nil {
		return r, false, err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r, false, fmt.Errorf("insert result: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return r, false, err
	}
	return r, n == 1, nil
}

// AlreadySolved reports whether playerID has a result for date.
func (s *Store) AlreadySolved(ctx context.Context, playerID, date string) (bool, error) {
	query, args, err := sq.Select("COUNT(1)").From("daily_results").
		Where(sq.Eq{"player_id": playerID, "date": date}).
		ToSql()
	if err != nil {
		return false, err
	}
	var cnt int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Leaderboard returns the best results for date: fewest guesses, then fastest,
// then earliest. limit <= 0 means 20.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	query, args, err := sq.Select("r.player_id", "COALESCE(u.username, '')", "r.guesses", "r.elapsed_ms").
		From("daily_results r").
		LeftJoin("users u ON u.id = r.player_id").
		Where(sq.Eq{"r.date": date}).
		OrderBy("r.guesses ASC", "r.elapsed_ms ASC", "r.created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.PlayerID, &r.Username, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats computes played/wins and the win streaks for playerID. A streak
// continues while each win's date is the day after the previous win. The
// current streak is 0 unless the latest win is on today or the day before.
func (s *Store) Stats(ctx context.Context, playerID, today string) (Stats, error) {
	var st Stats

	query, args, err := sq.Select("COUNT(1)").From("daily_attempts").
		Where(sq.Eq{"player_id": playerID}).ToSql()
	if err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&st.Played); err != nil {
		return st, fmt.Errorf("count played: %w", err)
	}

	query, args, err = sq.Select("date").From("daily_results").
		Where(sq.Eq{"player_id": playerID}).
		OrderBy("date ASC").ToSql()
	if err != nil {
		return st, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	var prev string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return st, err
		}
		st.Wins++
		if prevDay, err := PreviousDateKey(date); err == nil && prev != "" && prevDay == prev {
			st.Streak++
		} else {
			st.Streak = 1
		}
		st.MaxStreak = max(st.MaxStreak, st.Streak)
		prev = date
	}
	if err := rows.Err(); err != nil {
		return st, err
	}
	if yesterday, err := PreviousDateKey(today); err == nil && prev != today && prev != yesterday {
		st.Streak = 0
	}
	return st, nil
}

// ClaimAnonymous moves an anonymous player's history to a user account. Rows
// the user already has for the same date are kept and the anonymous ones dropped.
func (s *Store) ClaimAnonymous(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" || anonID == userID {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"daily_attempts", "daily_results"} {
		query, args, err := sq.Update("OR IGNORE "+table).
			Set("player_id", userID).
			Where(sq.Eq{"player_id": anonID}).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("claim %s: %w", table, err)
		}
		query, args, err = sq.Delete(table).Where(sq.Eq{"player_id": anonID}).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("drop leftover %s: %w", table, err)
		}
	}
	return tx.Commit()
}
