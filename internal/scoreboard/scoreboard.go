package scoreboard

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/avito-tech/dogwalk-server/internal/httpapi"
)

// writeTimeout bounds a single insert's transaction, so a stalled
// connection cannot pile up the pending-write queue indefinitely.
const writeTimeout = 5 * time.Second

const schema = `
CREATE TABLE IF NOT EXISTS retired_players (
	id serial PRIMARY KEY,
	name varchar(255) NOT NULL,
	score int NOT NULL,
	play_time real NOT NULL
);
CREATE INDEX IF NOT EXISTS retired_players_score_idx
	ON retired_players (score DESC, play_time ASC, name ASC);
`

// writeRequest is one pending insert, queued for the background executor.
type writeRequest struct {
	name     string
	score    int
	playTime float64
}

// Board is the Postgres-backed scoreboard: it satisfies both
// httpapi.ScoreSink and httpapi.RecordsReader.
type Board struct {
	db      *sql.DB
	pending chan writeRequest
	done    chan struct{}
}

// Open connects to url (a libpq-compatible connection string, spec §6
// Environment "BOOKYPEDIA_DB_URL"), bounds the pool, ensures the schema
// exists, and starts the background write executor.
func Open(ctx context.Context, url string, maxOpenConns int) (*Board, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: open: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("scoreboard: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("scoreboard: create schema: %w", err)
	}

	b := &Board{
		db:      db,
		pending: make(chan writeRequest, 256),
		done:    make(chan struct{}),
	}
	go b.run()
	return b, nil
}

func (b *Board) run() {
	defer close(b.done)
	for req := range b.pending {
		if err := b.insert(req); err != nil {
			// Per spec §7: "Database failures in the score-persistence
			// collaborator are logged and do not fail the tick; the
			// record is dropped with a warning."
			log.Printf("scoreboard: dropping record for %q: %v", req.name, err)
		}
	}
}

func (b *Board) insert(req writeRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	tx, err := b.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO retired_players (name, score, play_time) VALUES ($1, $2, $3)`,
		req.name, req.score, req.playTime,
	); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Record queues a retired player's final score for persistence. It never
// blocks the caller beyond the channel send; if the executor has fallen
// behind past the buffer size, Record drops the record with a warning
// rather than stall the strand.
func (b *Board) Record(name string, score int, playTime float64) {
	select {
	case b.pending <- writeRequest{name: name, score: score, playTime: playTime}:
	default:
		log.Printf("scoreboard: write queue full, dropping record for %q", name)
	}
}

// ListRecords implements httpapi.RecordsReader: a single page of the
// score index, highest score first (spec §6 "Reads page the index with
// LIMIT $1 OFFSET $2").
func (b *Board) ListRecords(ctx context.Context, start, maxItems int) ([]httpapi.ScoreRecord, error) {
	rows, err := b.db.QueryContext(ctx,
		`SELECT name, score, play_time FROM retired_players
		 ORDER BY score DESC, play_time ASC, name ASC
		 LIMIT $1 OFFSET $2`,
		maxItems, start,
	)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: list records: %w", err)
	}
	defer rows.Close()

	var records []httpapi.ScoreRecord
	for rows.Next() {
		var r httpapi.ScoreRecord
		if err := rows.Scan(&r.Name, &r.Score, &r.PlayTime); err != nil {
			return nil, fmt.Errorf("scoreboard: scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close stops accepting new writes, drains the pending queue, and closes
// the pool. Used at graceful shutdown (spec §5: "flushes pending score
// writes").
func (b *Board) Close() error {
	close(b.pending)
	<-b.done
	return b.db.Close()
}
