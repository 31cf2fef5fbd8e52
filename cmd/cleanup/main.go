// Command cleanup physically removes rows that were soft-deleted longer ago
// than the retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Usage:
//
//	cleanup --days=30
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	days := flag.Int("days", 30, "retention period for soft-deleted rows")
	flag.Parse()

	if *days < 1 {
		fmt.Fprintln(os.Stderr, "retention must be at least one day")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -*days)

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("begin transaction: %v", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Children first, then parents, so foreign keys never block a delete.
	// Tags are shared across blogs and are never purged.
	statements := []struct {
		label string
		sql   string
	}{
		{"visitors", `
			DELETE FROM visitors
			WHERE (deleted_at IS NOT NULL AND deleted_at < $1)
			   OR blog_id IN (SELECT id FROM blogs WHERE deleted_at IS NOT NULL AND deleted_at < $1)`},
		{"blog_tags", `
			DELETE FROM blog_tags
			WHERE blog_id IN (SELECT id FROM blogs WHERE deleted_at IS NOT NULL AND deleted_at < $1)`},
		{"blogs", `
			DELETE FROM blogs
			WHERE deleted_at IS NOT NULL AND deleted_at < $1`},
		{"refresh_tokens", `
			DELETE FROM refresh_tokens
			WHERE user_id IN (SELECT id FROM users WHERE deleted_at IS NOT NULL AND deleted_at < $1)`},
		{"users", `
			DELETE FROM users
			WHERE deleted_at IS NOT NULL AND deleted_at < $1
			  AND id NOT IN (SELECT DISTINCT author_id FROM blogs)`},
	}

	for _, st := range statements {
		tag, err := tx.Exec(ctx, st.sql, threshold)
		if err != nil {
			log.Fatalf("purge %s: %v", st.label, err)
		}
		fmt.Printf("%s: %d rows purged\n", st.label, tag.RowsAffected())
	}

	// Profiles are kept alive only by the users.profile_id reference.
	tag, err := tx.Exec(ctx, `
		DELETE FROM profiles p
		WHERE NOT EXISTS (SELECT 1 FROM users u WHERE u.profile_id = p.id)`)
	if err != nil {
		log.Fatalf("purge profiles: %v", err)
	}
	fmt.Printf("profiles: %d rows purged\n", tag.RowsAffected())

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("commit: %v", err)
	}
}
