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

// Reference rows use fixed IDs so tests can address them without lookups.
var (
	TourPeninsulaID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	DriverSiphoID   = uuid.MustParse("22222222-2222-2222-2222-222222222221")
	DriverThandiID  = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestDriverUser inserts a driver-role user and links it to the given
// driver row, so the account resolves to that driver on login.
func CreateTestDriverUser(t *testing.T, db DBLike, email string, driverID uuid.UUID) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "driver")
	_, err := db.Exec(context.Background(), "UPDATE drivers SET user_id = $1 WHERE id = $2", userID, driverID)
	require.NoError(t, err)

	return userID
}

func CreateTestDriver(t *testing.T, db DBLike, name string, active bool) uuid.UUID {
	t.Helper()

	driverID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO drivers (id, name, is_active) VALUES ($1, $2, $3)",
		driverID, name, active)
	require.NoError(t, err)

	return driverID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tours (id, name, duration_days, is_active) VALUES
		    ($1, 'Cape Peninsula Day Tour', 1, true)
		ON CONFLICT (id) DO NOTHING;
	`, TourPeninsulaID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO tour_prices (tour_id, min_size, max_size, price_per_person_cents) VALUES
		    ($1,  1,  1, 250000),
		    ($1,  2,  2, 180000),
		    ($1,  3,  3, 150000),
		    ($1,  4,  4, 130000),
		    ($1,  5,  6, 120000),
		    ($1,  7, 10, 110000),
		    ($1, 11, 14, 100000),
		    ($1, 15, 18,  95000),
		    ($1, 19, 22,  90000)
		ON CONFLICT (tour_id, min_size) DO NOTHING;
	`, TourPeninsulaID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO drivers (id, name, is_active) VALUES
		    ($1, 'Sipho M.', true),
		    ($2, 'Thandi K.', true)
		ON CONFLICT (id) DO NOTHING;
	`, DriverSiphoID, DriverThandiID)
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
