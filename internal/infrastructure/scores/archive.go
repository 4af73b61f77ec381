// Package scores ведет журнал завершенных забегов в локальной
// SQLite-базе. Журнал переживает перезапуски сервера и дает
// таблицу рекордов без внешних сервисов.
package scores

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	seed      INTEGER NOT NULL,
	score     INTEGER NOT NULL,
	turns     INTEGER NOT NULL,
	catches   INTEGER NOT NULL,
	legendary INTEGER NOT NULL DEFAULT 0,
	ended_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
`

// Run - одна строка журнала.
type Run struct {
	Seed      int64
	Score     int
	Turns     int
	Catches   int
	Legendary bool
	EndedAt   time.Time
}

// Archive - открытый журнал. Безопасен для одного писателя
// (RunLoop движка); database/sql сериализует остальное.
type Archive struct {
	db *sql.DB
}

// Open открывает (и при необходимости создает) базу журнала.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("score archive: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("score archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

// Record дописывает завершенный забег.
func (a *Archive) Record(r Run) error {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	_, err := a.db.Exec(
		`INSERT INTO runs (seed, score, turns, catches, legendary, ended_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Score, r.Turns, r.Catches, r.Legendary, r.EndedAt.Unix(),
	)
	return err
}

// Best возвращает лучшие забеги по счету, не больше limit.
func (a *Archive) Best(limit int) ([]Run, error) {
	rows, err := a.db.Query(
		`SELECT seed, score, turns, catches, legendary, ended_at FROM runs ORDER BY score DESC, id ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var endedAt int64
		if err := rows.Scan(&r.Seed, &r.Score, &r.Turns, &r.Catches, &r.Legendary, &endedAt); err != nil {
			return nil, err
		}
		r.EndedAt = time.Unix(endedAt, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (a *Archive) Close() error {
	return a.db.Close()
}
