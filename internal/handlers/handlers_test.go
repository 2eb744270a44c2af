package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bciai-club/clubdesk/internal/app"
	"github.com/bciai-club/clubdesk/internal/store/sqlite"
)

func setupServer(t *testing.T) (*httptest.Server, func()) {
	st, err := sqlite.NewSQLiteStore(":memory:")
	require.NoError(t, err, "Failed to create store")
	require.NoError(t, st.ApplyMigrations("../../migrations"))

	cfg := &app.Config{}
	cfg.Server.Port = ":0"
	cfg.Display.TimestampFormat = "2006-01-02 15:04:05"
	cfg.Display.EventDateFormat = "2006-01-02 15:04"

	service := &app.Service{
		Config: cfg,
		Store:  st,
	}

	mux := http.NewServeMux()
	Register(mux, service)

	srv := httptest.NewServer(mux)
	return srv, func() {
		srv.Close()
		require.NoError(t, st.Close())
	}
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestApplyEndpoint(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	t.Run("valid submission", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/apply", `{
			"name": "Zhang",
			"student_id": "2021001",
			"email": "z@x.com",
			"phone": "138",
			"major": "CS",
			"position": "dev",
			"interests": ["bci", "ai"],
			"skills": "Python"
		}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["success"])
	})

	t.Run("stored detail round trips", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/applications/1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, []interface{}{"bci", "ai"}, body["interests"])
		assert.Equal(t, []interface{}{"Python"}, body["skills"])
		assert.Equal(t, "pending", body["status"])
		assert.Equal(t, "not_scheduled", body["interview_status"])
	})

	t.Run("missing field names the field", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/apply", `{
			"name": "Zhang",
			"student_id": "2021001",
			"email": "z@x.com",
			"phone": "138",
			"major": "CS"
		}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Contains(t, body["error"], "position")
	})

	t.Run("malformed json", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/apply", `{not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestApplicationListAndUpdate(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	resp := postJSON(t, srv.URL+"/api/apply", `{
		"name": "Wang",
		"student_id": "2021002",
		"email": "w@x.com",
		"phone": "139",
		"major": "EE",
		"position": "research"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("list", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/applications")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		apps := body["applications"].([]interface{})
		require.Len(t, apps, 1)
		first := apps[0].(map[string]interface{})
		assert.Equal(t, "Wang", first["name"])
		_, hasReason := first["reason"]
		assert.False(t, hasReason, "summary must not carry free-text fields")
	})

	t.Run("partial update", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/applications/1",
			bytes.NewBufferString(`{"status": "approved"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		got, err := http.Get(srv.URL + "/api/applications/1")
		require.NoError(t, err)
		body := decodeBody(t, got)
		assert.Equal(t, "approved", body["status"])
		assert.Equal(t, "not_scheduled", body["interview_status"])
	})

	t.Run("status filter excludes approved", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/applications?status=pending")
		require.NoError(t, err)
		body := decodeBody(t, resp)
		assert.Len(t, body["applications"], 0)
	})

	t.Run("update unknown id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/applications/999",
			bytes.NewBufferString(`{"status": "approved"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("detail unknown id", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/applications/999")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestNewsletterEndpoint(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	t.Run("first subscribe", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/newsletter", `{"email": "a@x.com"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("second subscribe conflicts", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/newsletter", `{"email": "a@x.com"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Contains(t, body["error"], "already subscribed")
	})

	t.Run("empty email", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/api/newsletter", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Contains(t, body["error"], "email")
	})
}

func TestContactEndpoint(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	resp := postJSON(t, srv.URL+"/api/contact", `{
		"contact-name": "Li",
		"contact-email": "li@x.com",
		"contact-subject": "hello",
		"contact-message": "hi there"
	}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/contact", `{"contact-name": "Li"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "contact-email")
}

func TestSiteEndpoints(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	t.Run("events date ascending", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/events")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		events := body["events"].([]interface{})
		require.Len(t, events, 3)
		prev := ""
		for _, e := range events {
			date := e.(map[string]interface{})["date"].(string)
			assert.GreaterOrEqual(t, date, prev)
			prev = date
		}
	})

	t.Run("stats payload", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/stats")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, float64(3), body["total_events"])
		assert.Contains(t, body, "application_status")
		assert.Contains(t, body, "paper_stats")
	})

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Contains(t, body["message"], "running")
	})
}
