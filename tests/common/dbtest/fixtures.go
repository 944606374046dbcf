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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword matches testPasswordHash.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const (
	DefaultBranchName = "Kadıköy"
	DefaultBranchCity = "İstanbul"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCustomer(t *testing.T, db DBLike, email, phone, role string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO customers (full_name, email, phone, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING id`,
		"Test Müşteri", email, phone, testPasswordHash, role).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestBranch(t *testing.T, db DBLike, name, city string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO branches (name, city, active) VALUES ($1, $2, true) RETURNING id",
		name, city).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestOrder inserts an order without items; enough for listing and status tests.
func CreateTestOrder(t *testing.T, db DBLike, customerID, branchID int64, status, total string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO orders (customer_id, branch_id, status, description, total)
		 VALUES ($1, $2, $3, $4, $5::numeric) RETURNING id`,
		customerID, branchID, status, "Test adres\n2 x Gömlek (Yıkama + Kurutma)", total).Scan(&id)
	require.NoError(t, err)
	return id
}

func DefaultBranchID(t *testing.T, db DBLike) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"SELECT id FROM branches WHERE name = $1 AND city = $2 ORDER BY id LIMIT 1",
		DefaultBranchName, DefaultBranchCity).Scan(&id)
	require.NoError(t, err)
	return id
}

// LatestResetCode reads the newest unused code so tests can skip the mailbox.
func LatestResetCode(t *testing.T, db DBLike, customerID int64) string {
	t.Helper()

	var code string
	err := db.QueryRow(context.Background(),
		"SELECT code FROM reset_codes WHERE customer_id = $1 AND used = false ORDER BY id DESC LIMIT 1",
		customerID).Scan(&code)
	require.NoError(t, err)
	return code
}

// SeedReferenceData inserts the branch most tests order from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		"INSERT INTO branches (name, city, address, phone, active) VALUES ($1, $2, $3, $4, true)",
		DefaultBranchName, DefaultBranchCity, "Caferağa Mah. Moda Cad. No:1", "02161234567")
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		truncateSQL.Store(buildTruncateSQL(ctx, pool))
	})
	stmt, _ := truncateSQL.Load().(string)
	if stmt == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

func buildTruncateSQL(ctx context.Context, pool *pgxpool.Pool) string {
	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'`)
	if err != nil {
		return ""
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return ""
		}
		tables = append(tables, name)
	}
	if rows.Err() != nil {
		return ""
	}
	if len(tables) == 0 {
		return "SELECT 1"
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;"
}
