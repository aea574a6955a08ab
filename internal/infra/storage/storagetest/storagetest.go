// Package storagetest поднимает схему в живой PostgreSQL для интеграционных тестов репозиториев.
// Тесты пропускаются, если TEST_DATABASE_DSN не задан:
//
//	TEST_DATABASE_DSN=postgres://... go test ./internal/infra/storage/...
package storagetest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// migrationsDir путь к миграциям относительно пакета репозитория
const migrationsDir = "../../../../migrations"

var seq atomic.Int64

// OpenDB подключается к TEST_DATABASE_DSN и применяет все миграции
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migrations in %s", migrationsDir)
	sort.Strings(files)

	for _, f := range files {
		schema, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(schema))
		require.NoError(t, err, "apply %s", filepath.Base(f))
	}

	return db
}

// CreateUser создаёт пользователя; он и всё, что на него ссылается, удаляются после теста
func CreateUser(t *testing.T, db *sql.DB, userType string) int64 {
	t.Helper()

	var id int64
	email := fmt.Sprintf("%s-%d-%d@example.com", userType, time.Now().UnixNano(), seq.Add(1))
	require.NoError(t, db.QueryRow(
		`INSERT INTO users (email, full_name, user_type) VALUES ($1, $2, $3) RETURNING id`,
		email, "Test "+userType, userType).Scan(&id))

	t.Cleanup(func() {
		db.Exec(`DELETE FROM users WHERE id = $1`, id)
	})
	return id
}

// CreateService создаёт активную услугу провайдера
func CreateService(t *testing.T, db *sql.DB, providerID int64, title string) int64 {
	t.Helper()

	var id int64
	require.NoError(t, db.QueryRow(
		`INSERT INTO services (provider_id, title, price) VALUES ($1, $2, 25) RETURNING id`,
		providerID, title).Scan(&id))
	return id
}
