package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/catalog"
	"cosmo_stats_backend/internals/features/surveys/frequency/model"
	"cosmo_stats_backend/internals/features/surveys/frequency/service"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

type fakeStore struct {
	pingErr error
	rows    []submissions.AnswerCount
	schools []string
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) CountAnswers(_ context.Context, q submissions.AnswerQuery) ([]submissions.AnswerCount, error) {
	f.schools = append(f.schools, q.School)
	return f.rows, nil
}

func newApp(t *testing.T, store *fakeStore) *fiber.App {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	// concurrency 1 keeps fakeStore free of races
	asm := service.NewAssembler(cat, service.NewAggregator(store, nil), 1, nil)
	ctl := NewFrequencyController(asm, store, nil, nil)

	app := fiber.New()
	app.Get("/api/frequency-ratings", ctl.Get)
	app.Get("/api/frequency-ratings/averages", ctl.Averages)
	return app
}

type envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
	Data      T      `json:"data"`
}

func get[T any](t *testing.T, app *fiber.App, path string) (int, envelope[T]) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope[T]
	require.NoError(t, json.Unmarshal(b, &env), string(b))
	return resp.StatusCode, env
}

func TestGetSchoolWithoutSubmissionsReturnsSentinelTree(t *testing.T) {
	store := &fakeStore{}
	app := newApp(t, store)

	status, env := get[model.Report](t, app, "/api/frequency-ratings?school="+url.QueryEscape("IE Vacía"))

	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "IE Vacía", env.Data.School)
	require.Len(t, env.Data.Sections, 3)

	var leaves int
	for _, sec := range env.Data.Sections {
		for _, it := range sec.Items {
			for _, role := range constants.AllRoles {
				r := it.Results[role]
				assert.Equal(t, model.FrequencyResult{S: -1, A: -1, N: -1, Status: r.Status}, r)
				leaves++
			}
		}
	}
	assert.Equal(t, 60, leaves)
	for _, s := range store.schools {
		assert.Equal(t, "IE Vacía", s)
	}
}

func TestGetComputesPercentages(t *testing.T) {
	store := &fakeStore{rows: []submissions.AnswerCount{
		{Rating: "Siempre", Count: 2},
		{Rating: "A veces", Count: 1},
		{Rating: "Nunca", Count: 1},
	}}
	app := newApp(t, store)

	status, env := get[model.Report](t, app, "/api/frequency-ratings")

	require.Equal(t, fiber.StatusOK, status)
	first := env.Data.Sections[0].Items[0].Results[constants.RoleTeacher]
	assert.Equal(t, model.FrequencyResult{S: 50, A: 25, N: 25, Status: model.OutcomeOK}, first)
	assert.Equal(t, "", store.schools[0])
}

func TestGetStoreUnreachable(t *testing.T) {
	store := &fakeStore{pingErr: errors.New("dial tcp: connection refused")}
	app := newApp(t, store)

	status, env := get[any](t, app, "/api/frequency-ratings")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, env.Success)
	assert.Equal(t, "INTERNAL_ERROR", env.ErrorCode)
	assert.Empty(t, store.schools)
}

func TestGetRejectsOversizedSchool(t *testing.T) {
	app := newApp(t, &fakeStore{})

	status, env := get[any](t, app, "/api/frequency-ratings?school="+strings.Repeat("x", 300))

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
}

func TestAverages(t *testing.T) {
	store := &fakeStore{rows: []submissions.AnswerCount{
		{Rating: "siempre", Count: 1},
		{Rating: "a veces", Count: 1},
		{Rating: "nunca", Count: 1},
	}}
	app := newApp(t, store)

	status, env := get[struct {
		Sections []model.SectionAverage `json:"sections"`
	}](t, app, "/api/frequency-ratings/averages")

	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, env.Data.Sections, 3)
	for _, sec := range env.Data.Sections {
		for _, role := range constants.AllRoles {
			r := sec.Results[role]
			// every cell is 33/33/33; the average is renormalised onto S
			assert.Equal(t, model.FrequencyResult{S: 34, A: 33, N: 33, Status: model.OutcomeOK}, r, "%s/%s", sec.Key, role)
		}
	}
}
