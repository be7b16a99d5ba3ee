package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"job-alerts-backend/config"
	v1 "job-alerts-backend/internal/delivery/http/v1"
	"job-alerts-backend/internal/matching"
	"job-alerts-backend/internal/repository/memory"
	"job-alerts-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"request_id"`
}

type alertJSON struct {
	ID       string `json:"id"`
	JobTitle string `json:"job_title"`
	JobType  string `json:"job_type"`
	Active   bool   `json:"active"`
	Status   string `json:"status"`
}

type matchJSON struct {
	ID         string `json:"id"`
	AlertID    string `json:"alert_id"`
	Title      string `json:"title"`
	Salary     string `json:"salary"`
	Type       string `json:"type"`
	MatchScore int    `json:"match_score"`
}

type dashboardJSON struct {
	Alerts      []alertJSON `json:"alerts"`
	Matches     []matchJSON `json:"matches"`
	ActiveCount int         `json:"active_count"`
	MatchCount  int         `json:"match_count"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	alertRepo := memory.NewAlertRepository()
	matchRepo := memory.NewMatchRepository()
	return v1.NewRouter(v1.RouterDeps{
		AlertUC:  usecase.NewAlertUsecase(alertRepo, matchRepo, matching.NewStaticSource()),
		HealthUC: usecase.NewHealthUsecase(alertRepo, matchRepo, "test"),
		Config: &config.Config{
			GinMode:     gin.TestMode,
			FrontendURL: "http://localhost:3000",
		},
	})
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestAlertLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodPost, "/v1/alerts", map[string]string{
		"job_title": "Backend Engineer",
		"location":  "Remote",
		"salary":    "",
		"job_type":  "contract",
		"keywords":  "",
		"frequency": "weekly",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)

	var created struct {
		Alert           alertJSON     `json:"alert"`
		Matches         []matchJSON   `json:"matches"`
		MatchesDeferred bool          `json:"matches_deferred"`
		Dashboard       dashboardJSON `json:"dashboard"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	alertID := created.Alert.ID
	assert.NotEmpty(t, alertID)
	assert.True(t, created.Alert.Active)
	assert.Equal(t, "active", created.Alert.Status)
	require.Len(t, created.Matches, 3)
	assert.Equal(t, []int{95, 88, 82}, []int{created.Matches[0].MatchScore, created.Matches[1].MatchScore, created.Matches[2].MatchScore})
	assert.Equal(t, "$80k - $120k", created.Matches[0].Salary)
	assert.Equal(t, "contract", created.Matches[0].Type)
	assert.Equal(t, 3, created.Dashboard.MatchCount)

	t.Run("Toggle pauses", func(t *testing.T) {
		w, env := do(t, r, http.MethodPatch, "/v1/alerts/"+alertID+"/toggle", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var d dashboardJSON
		require.NoError(t, json.Unmarshal(env.Data, &d))
		require.Len(t, d.Alerts, 1)
		assert.False(t, d.Alerts[0].Active)
		assert.Equal(t, "paused", d.Alerts[0].Status)
		assert.Equal(t, 0, d.ActiveCount)
		assert.Len(t, d.Matches, 3)
	})

	t.Run("Toggle on unknown id is accepted", func(t *testing.T) {
		w, _ := do(t, r, http.MethodPatch, "/v1/alerts/unknown/toggle", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete keeps matches", func(t *testing.T) {
		w, env := do(t, r, http.MethodDelete, "/v1/alerts/"+alertID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var d dashboardJSON
		require.NoError(t, json.Unmarshal(env.Data, &d))
		assert.Empty(t, d.Alerts)
		assert.Equal(t, 3, d.MatchCount)

		w, _ = do(t, r, http.MethodDelete, "/v1/alerts/"+alertID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Matches listing", func(t *testing.T) {
		w, env := do(t, r, http.MethodGet, "/v1/matches", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list struct {
			Matches []matchJSON `json:"matches"`
			Total   int         `json:"total"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, alertID, list.Matches[0].AlertID)
	})
}

func TestCreateAlertDefaults(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodPost, "/v1/alerts", map[string]string{
		"job_title": "Go Developer",
		"location":  "Berlin",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Alert struct {
			JobType   string `json:"job_type"`
			Frequency string `json:"frequency"`
		} `json:"alert"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "full-time", created.Alert.JobType)
	assert.Equal(t, "daily", created.Alert.Frequency)
}

func TestCreateAlertValidation(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		body map[string]string
		want string
	}{
		{"missing job title", map[string]string{"location": "Remote"}, "Job title: is required"},
		{"empty location", map[string]string{"job_title": "Dev", "location": ""}, "Location: is required"},
		{"unknown job type", map[string]string{"job_title": "Dev", "location": "Remote", "job_type": "gig"}, "Job type: must be one of"},
		{"unknown frequency", map[string]string{"job_title": "Dev", "location": "Remote", "frequency": "hourly"}, "Alert frequency: must be one of"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/v1/alerts", c.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Contains(t, string(env.Error), c.want)
		})
	}

	// nothing was stored
	w, env := do(t, r, http.MethodGet, "/v1/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 0, list.Total)
}

func TestCreateAlertAcceptsFreeText(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		name string
		body map[string]string
	}{
		{"long salary", map[string]string{"job_title": "Dev", "location": "Remote", "salary": strings.Repeat("$120k - $180k plus equity and bonus, ", 10)}},
		{"emoji in title", map[string]string{"job_title": "Senior Dev 🚀", "location": "Remote"}},
		{"modifier symbols in title", map[string]string{"job_title": "C^ Developer `core`", "location": "Remote"}},
		{"long keywords", map[string]string{"job_title": "Dev", "location": "Remote", "keywords": strings.Repeat("go,", 300)}},
		{"whitespace-only location", map[string]string{"job_title": "Dev", "location": "   "}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/v1/alerts", c.body)
			require.Equal(t, http.StatusCreated, w.Code, string(env.Error))

			var created struct {
				Alert struct {
					JobTitle string `json:"job_title"`
					Location string `json:"location"`
					Salary   string `json:"salary"`
				} `json:"alert"`
				Matches []matchJSON `json:"matches"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &created))
			assert.Equal(t, c.body["job_title"], created.Alert.JobTitle)
			assert.Equal(t, c.body["location"], created.Alert.Location)
			assert.Equal(t, c.body["salary"], created.Alert.Salary)
			assert.Len(t, created.Matches, 3)
		})
	}
}

func TestCreateAlertMalformedBody(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/alerts", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestHealthAndNoRoute(t *testing.T) {
	r := newTestRouter()

	w, env := do(t, r, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"status":"ok"`)

	w, env = do(t, r, http.MethodGet, "/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}
