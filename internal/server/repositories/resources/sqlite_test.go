package resources

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/edtechlab/coursehub/internal/server/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A second pooled connection would see its own empty in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE resources (
  seq             INTEGER PRIMARY KEY AUTOINCREMENT,
  id              TEXT NOT NULL UNIQUE,
  course_id       TEXT NOT NULL,
  resource_url    TEXT NOT NULL,
  poster_username TEXT NOT NULL,
  created_at      BIGINT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func addResource(t *testing.T, r *SQLiteRepository, course, url string, at time.Time) *models.Resource {
	t.Helper()
	res, err := r.Create(context.Background(), &models.Resource{
		CourseID:       course,
		ResourceURL:    url,
		PosterUsername: "alice",
		CreatedAt:      at,
	})
	require.NoError(t, err)
	return res
}

func TestListByCourse_InsertionOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now()
	addResource(t, r, "CS101", "http://a", now)
	addResource(t, r, "CS101", "http://b", now) // same timestamp, later insert
	addResource(t, r, "MA202", "http://c", now)

	got, err := r.ListByCourse(ctx, "CS101")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "http://a", got[0].ResourceURL)
	assert.Equal(t, "http://b", got[1].ResourceURL)
}

func TestListByCourse_UnknownCourseIsEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.ListByCourse(context.Background(), "NOPE")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestListCourses_DistinctInFirstUploadOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	now := time.Now()
	addResource(t, r, "MA202", "http://a", now)
	addResource(t, r, "CS101", "http://b", now)
	addResource(t, r, "MA202", "http://c", now)

	got, err := r.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MA202", "CS101"}, got)
}

func TestListCourses_EmptyStore(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.ListCourses(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCourseExists(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	addResource(t, r, "CS101", "http://a", time.Now())

	exists, err := r.CourseExists(ctx, "CS101")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.CourseExists(ctx, "NOPE")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListNewerThan_StrictCutoff(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	t0 := time.Now()
	addResource(t, r, "CS101", "http://old", t0)
	addResource(t, r, "CS101", "http://new", t0.Add(time.Second))

	got, err := r.ListNewerThan(ctx, "CS101", t0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "http://new", got[0].ResourceURL)

	// The cutoff itself is excluded.
	got, err = r.ListNewerThan(ctx, "CS101", t0.Add(time.Second))
	require.NoError(t, err)
	require.Empty(t, got)
}
