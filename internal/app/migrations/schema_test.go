package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, service, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", service, name))
	require.NoError(t, err)
	return string(content)
}

// TestCourseSchemaConstraints pins the constraints the repository layer
// depends on: deleting a course must take its roster with it, and the
// composite unique key is both the duplicate-enrollment guard and the
// constraint name the repository matches on.
func TestCourseSchemaConstraints(t *testing.T) {
	schema := readMigration(t, "courseservice", "001_init.sql")

	assert.Contains(t, schema, "REFERENCES courses(id) ON DELETE CASCADE")
	assert.Contains(t, schema, "CONSTRAINT enrollments_course_id_user_id_key UNIQUE (course_id, user_id)")
	assert.Contains(t, schema, "CHECK (credits >= 0)")
	// Weak user reference: enrollments carry no FK to users, those rows
	// live in the other service's database
	assert.NotContains(t, schema, "REFERENCES users")
}

// TestUserSchemaConstraints pins the email unique constraint by the name
// the repository maps to the duplicate-email error.
func TestUserSchemaConstraints(t *testing.T) {
	schema := readMigration(t, "userservice", "001_init.sql")

	assert.Contains(t, schema, "CONSTRAINT users_email_key UNIQUE (email)")
	assert.Contains(t, schema, "birth_date DATE NOT NULL")
}
