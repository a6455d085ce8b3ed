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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Conn is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run inside a
// test-owned transaction as well as against the shared pool.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword is the plain text behind testPasswordHash.
const TestPassword = "password123"

// bcrypt hash of TestPassword
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestOwner inserts an active user with the given role and a business owned by it.
func CreateTestOwner(t *testing.T, db Conn, email, role string) (userID, businessID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	userID = uuid.New()
	name, _, _ := strings.Cut(email, "@")
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, name, email, testPasswordHash, role)
	require.NoError(t, err)
	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	businessID = uuid.New()
	tag, err = db.Exec(ctx,
		"INSERT INTO businesses (id, user_id, name) VALUES ($1, $2, $3) ON CONFLICT (user_id) DO NOTHING",
		businessID, userID, name+" Cafe")
	require.NoError(t, err)
	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM businesses WHERE user_id = $1", userID).Scan(&businessID))
	}

	return userID, businessID
}

func SetUserActive(t *testing.T, db Conn, email string, active bool) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = $2 WHERE email = $1", email, active)
	require.NoError(t, err)
}

// CreateTestSurvey inserts a survey with a rating, a yes/no and an optional text question.
func CreateTestSurvey(t *testing.T, db Conn, businessID uuid.UUID, status string) (surveyID uuid.UUID, questionIDs []uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	surveyID = uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO surveys (id, business_id, name, description, status) VALUES ($1, $2, $3, $4, $5)",
		surveyID, businessID, "Visit Survey", "How was your visit?", status)
	require.NoError(t, err)

	questions := []struct {
		text     string
		qtype    string
		required bool
	}{
		{"How would you rate us?", "RATING_SCALE_5", true},
		{"Would you come back?", "YES_NO", true},
		{"Anything else?", "TEXT", false},
	}
	for i, q := range questions {
		id := uuid.New()
		_, err := db.Exec(ctx,
			"INSERT INTO questions (id, survey_id, text, type, position, is_required) VALUES ($1, $2, $3, $4, $5, $6)",
			id, surveyID, q.text, q.qtype, i, q.required)
		require.NoError(t, err)
		questionIDs = append(questionIDs, id)
	}

	return surveyID, questionIDs
}

// CreateTestResponseEntity inserts a feedback link. COMPLETED links are stamped as submitted now.
func CreateTestResponseEntity(t *testing.T, db Conn, surveyID uuid.UUID, deliveryType, status string) uuid.UUID {
	t.Helper()

	var phone *string
	if deliveryType != "QR" {
		p := "+15551234567"
		phone = &p
	}
	var submittedAt *time.Time
	if status == "COMPLETED" {
		now := time.Now().UTC()
		submittedAt = &now
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO response_entities (id, survey_id, type, phone_number, status, submitted_at) VALUES ($1, $2, $3, $4, $5, $6)",
		id, surveyID, deliveryType, phone, status, submittedAt)
	require.NoError(t, err)
	return id
}

// CreateTestDiscountCode inserts a 10% code for a response entity.
func CreateTestDiscountCode(t *testing.T, db Conn, businessID, responseEntityID uuid.UUID, code string, expiresAt *time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO discount_codes (id, code, discount_type, discount_value, expires_at, business_id, response_entity_id) VALUES ($1, $2, 'PERCENTAGE', 10, $3, $4, $5)",
		id, code, expiresAt, businessID, responseEntityID)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table.
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
