//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultOfferTitle is seeded by SeedReferenceData.
const DefaultOfferTitle = "Sesja rodzinna"

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, 'admin', true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestOffer(t *testing.T, db DBLike, title, duration string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO offers (title, category, price, duration, questions) VALUES ($1, 'Sesje', '500 zł', $2, '["Ile osób?"]') RETURNING id`,
		title, duration).Scan(&id)
	require.NoError(t, err)
	return id
}

func DefaultOfferID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM offers WHERE title = $1 LIMIT 1", DefaultOfferTitle).Scan(&id)
	require.NoError(t, err)
	return id
}

// ReservationPassword reads the stored password; it is never part of an API response.
func ReservationPassword(t *testing.T, db DBLike, code string) string {
	t.Helper()

	var pw string
	err := db.QueryRow(context.Background(), "SELECT password FROM reservations WHERE code = $1", code).Scan(&pw)
	require.NoError(t, err)
	return pw
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO offers (title, category, price, duration, questions)
		VALUES ($1, 'Sesje', '450 zł', '90', '["Ile osób?"]');
	`, DefaultOfferTitle)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO discount_codes (code, type, value, is_active) VALUES
		    ('LATO10', 'percentage', 10, true),
		    ('STARY', 'fixed', 50, false)
		ON CONFLICT (code) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
