package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdjacome2/microcampus/internal/config"
)

func defaultTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	return cfg
}

func fetch(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// TestSwaggerDocsPerService builds both service routers in one process. The
// two docs packages register under distinct instance names, so linking both
// into a single binary must not panic at init, and each router must serve
// its own service's spec.
func TestSwaggerDocsPerService(t *testing.T) {
	cfg := defaultTestConfig(t)
	lgr := zerolog.Nop()

	userRouter := SetupUserRouter(cfg, BuildUserDependencies(nil, lgr), lgr)
	courseRouter := SetupCourseRouter(cfg, BuildCourseDependencies(cfg, nil, lgr), lgr)

	rec := fetch(userRouter, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MicroCampus User Service API")
	assert.NotContains(t, rec.Body.String(), "Course Service API")

	rec = fetch(courseRouter, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MicroCampus Course Service API")
	assert.Contains(t, rec.Body.String(), "/courses/{id}/users")
}

func TestRoutersServeHealth(t *testing.T) {
	cfg := defaultTestConfig(t)
	lgr := zerolog.Nop()

	userRouter := SetupUserRouter(cfg, BuildUserDependencies(nil, lgr), lgr)
	courseRouter := SetupCourseRouter(cfg, BuildCourseDependencies(cfg, nil, lgr), lgr)

	assert.Equal(t, http.StatusOK, fetch(userRouter, "/api/v1/health").Code)
	assert.Equal(t, http.StatusOK, fetch(courseRouter, "/api/v1/health").Code)
}
