package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// App uji dengan user login palsu; validasi request berhenti sebelum DB
// tersentuh, jadi controller boleh dibuat tanpa koneksi.
func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		return c.Next()
	})

	ctrl := NewAssessmentController(nil)
	app.Post("/api/fuzzy/assessments", ctrl.Save)
	app.Get("/api/fuzzy/assessments/filter/date", ctrl.FilterByDate)
	app.Get("/api/fuzzy/assessments/search", ctrl.Search)
	app.Get("/api/fuzzy/assessments/:buildingId", ctrl.GetByID)
	app.Delete("/api/fuzzy/assessments/:buildingId", ctrl.Delete)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]any
	dec := sonic.ConfigDefault.NewDecoder(resp.Body)
	_ = dec.Decode(&parsed)
	return resp.StatusCode, parsed
}

func TestSaveValidation(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{"body bukan json", `bukan json`},
		{"nameBuilding kosong", `{"finalStatus":"Renovasi","fuzzyScore":0.4,"categories":[{"categoryId":1}]}`},
		{"finalStatus kosong", `{"nameBuilding":"Gedung A","fuzzyScore":0.4,"categories":[{"categoryId":1}]}`},
		{"finalStatus di luar enum", `{"nameBuilding":"Gedung A","finalStatus":"Dirobohkan","fuzzyScore":0.4,"categories":[{"categoryId":1}]}`},
		{"fuzzyScore tidak ada", `{"nameBuilding":"Gedung A","finalStatus":"Renovasi","categories":[{"categoryId":1}]}`},
		{"categories kosong", `{"nameBuilding":"Gedung A","finalStatus":"Renovasi","fuzzyScore":0.4,"categories":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, fiber.MethodPost, "/api/fuzzy/assessments", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestFilterByDateRequiresParameter(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, fiber.MethodGet, "/api/fuzzy/assessments/filter/date", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	status, _ = doRequest(t, app, fiber.MethodGet, "/api/fuzzy/assessments/filter/date?month=03-2024", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSearchRequiresQuery(t *testing.T) {
	app := newTestApp()

	status, body := doRequest(t, app, fiber.MethodGet, "/api/fuzzy/assessments/search", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}

func TestBuildingIDMustBeNumeric(t *testing.T) {
	app := newTestApp()

	status, _ := doRequest(t, app, fiber.MethodGet, "/api/fuzzy/assessments/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doRequest(t, app, fiber.MethodDelete, "/api/fuzzy/assessments/-1", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

// Angka 0 adalah skor sah; hanya field yang benar-benar absen yang ditolak.
func TestFuzzyScoreZeroIsPresent(t *testing.T) {
	var req struct {
		FuzzyScore *float64 `json:"fuzzyScore"`
	}
	require.NoError(t, sonic.Unmarshal([]byte(`{"fuzzyScore":0}`), &req))
	require.NotNil(t, req.FuzzyScore)
	assert.Equal(t, 0.0, *req.FuzzyScore)

	req.FuzzyScore = nil
	require.NoError(t, sonic.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.FuzzyScore)
}
