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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye/Ci/Q9wF8WkG8pO.PkkXhvlOqMZqNSa"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	var apartmentID uuid.UUID

	ctx := context.Background()
	err := db.QueryRow(ctx, "SELECT id FROM apartments WHERE number = '101' LIMIT 1").Scan(&apartmentID)
	require.NoError(t, err)

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, display_name, role, apartment_id, is_active) VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "Resident "+email, role, apartmentID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestAmenity(t *testing.T, db DBLike, name string, capacity, maxDurationMin int32) uuid.UUID {
	t.Helper()

	amenityID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO amenities (id, name, capacity, max_duration_min) VALUES ($1, $2, $3, $4) ON CONFLICT (lower(name)) DO NOTHING",
		amenityID, name, capacity, maxDurationMin)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM amenities WHERE lower(name) = lower($1)", name).Scan(&amenityID)
	}

	return amenityID
}

func CreateTestApartment(t *testing.T, db DBLike, number string, floor int32) uuid.UUID {
	t.Helper()

	apartmentID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO apartments (id, number, floor) VALUES ($1, $2, $3) ON CONFLICT (number) DO NOTHING",
		apartmentID, number, floor)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM apartments WHERE number = $1", number).Scan(&apartmentID)
	}

	return apartmentID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO apartments (id, number, floor) VALUES
		    (gen_random_uuid(), '101', 1),
		    (gen_random_uuid(), '202', 2)
		ON CONFLICT (number) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
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
