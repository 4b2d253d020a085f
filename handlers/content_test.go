package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/fixture"
	"github.com/haruko-imports/site/page"
)

func TestHandleData(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/data/links.json", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.JSONEq(t, linksJSON, body)
}

func TestHandleData_NotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/api/data/missing.json",
		"/api/data/..%2F..%2Fetc%2Fpasswd",
		"/api/data/%2E%2E",
	} {
		t.Run(target, func(t *testing.T) {
			resp, body := env.do(t, http.MethodGet, target, "", "")
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "File not found", decodeJSON(t, body)["error"])
		})
	}
}

func TestHandleData_EscapedName(t *testing.T) {
	env := newTestEnv(t)
	env.writeData(t, "my file.json", `{"ok":true}`)

	resp, body := env.do(t, http.MethodGet, "/api/data/my%20file.json", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, body)
}

func TestHandleData_Malformed(t *testing.T) {
	env := newTestEnv(t)
	env.writeData(t, "broken.json", `{"skiptSkool": `)

	resp, body := env.do(t, http.MethodGet, "/api/data/broken.json", "", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Malformed JSON", decodeJSON(t, body)["error"])
}

func TestHandleData_ReadFresh(t *testing.T) {
	env := newTestEnv(t)

	_, body := env.do(t, http.MethodGet, "/api/data/links.json", "", "")
	assert.JSONEq(t, linksJSON, body)

	env.writeData(t, "links.json", `{"skiptSkool":"https://changed.example/"}`)
	_, body = env.do(t, http.MethodGet, "/api/data/links.json", "", "")
	assert.JSONEq(t, `{"skiptSkool":"https://changed.example/"}`, body)
}

func TestHandleSignup(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		success     bool
		message     string
	}{
		{"missing email", fiber.MIMEApplicationJSON, `{"name":"A"}`, fiber.StatusBadRequest, false, "Name and email are required"},
		{"missing name", fiber.MIMEApplicationJSON, `{"email":"a@b.com"}`, fiber.StatusBadRequest, false, "Name and email are required"},
		{"empty body", "", "", fiber.StatusBadRequest, false, "Name and email are required"},
		{"bad json", fiber.MIMEApplicationJSON, `{"name":`, fiber.StatusBadRequest, false, "Name and email are required"},
		{"valid json", fiber.MIMEApplicationJSON, `{"name":"A","email":"a@b.com"}`, fiber.StatusOK, true, "Thank you for signing up to our newsletter!"},
		{"valid form", fiber.MIMEApplicationForm, "name=A&email=a%40b.com", fiber.StatusOK, true, "Thank you for signing up to our newsletter!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.do(t, http.MethodPost, "/api/signup", tt.contentType, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			m := decodeJSON(t, body)
			assert.Equal(t, tt.success, m["success"])
			assert.Equal(t, tt.message, m["message"])
		})
	}
}

func TestHandleCheckAssets(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/debug/check-assets", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	m := decodeJSON(t, body)
	assert.Equal(t, true, m["success"])
	files, ok := m["files"].([]any)
	require.True(t, ok)
	require.Len(t, files, 1)
	assert.Equal(t, "logo.svg", files[0].(map[string]any)["name"])
}

func TestHandleCheckAssets_MissingDir(t *testing.T) {
	env := newTestEnv(t)
	deps.PublicDir = env.publicDir + "/nope"

	resp, body := env.do(t, http.MethodGet, "/api/debug/check-assets", "", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to read asset directory", decodeJSON(t, body)["error"])
}

func TestHandleServerInfo(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/debug/server-info", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	m := decodeJSON(t, body)
	for _, key := range []string{"goVersion", "platform", "uptime", "serverTime", "publicPath", "dataPath"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "fixtureCache")
}

func TestHandleHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeJSON(t, body)["status"])
}

func TestUnknownAPIRouteFallsBackToPage(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/nothing-here", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<!doctype html>")
}

func TestHandleSignup_RateLimited(t *testing.T) {
	saved := config.SignupRateLimitMax
	config.SignupRateLimitMax = 2
	t.Cleanup(func() { config.SignupRateLimitMax = saved })
	env := newTestEnv(t)

	body := `{"name":"A","email":"a@b.com"}`
	for i := 0; i < 2; i++ {
		resp, _ := env.do(t, http.MethodPost, "/api/signup", fiber.MIMEApplicationJSON, body)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp, out := env.do(t, http.MethodPost, "/api/signup", fiber.MIMEApplicationJSON, body)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, false, decodeJSON(t, out)["success"])
}

func TestNonGetFallsThrough(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/anything", "", "")
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	assert.Contains(t, body, "Error 405")
	assert.NotContains(t, body, `id="ktrucks-grid"`)

	resp, body = env.do(t, http.MethodPut, "/api/nothing-here", "", "")
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method Not Allowed", decodeJSON(t, body)["error"])
}

func TestHandleClearCache(t *testing.T) {
	env := newTestEnv(t)
	store, err := fixture.NewStore(env.dataDir, time.Minute)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	deps.Store = store
	deps.Loader = page.Loader{Source: store}

	_, body := env.do(t, http.MethodGet, "/api/data/links.json", "", "")
	assert.JSONEq(t, linksJSON, body)

	env.writeData(t, "links.json", `{"skiptSkool":"https://changed.example/"}`)
	resp, body := env.do(t, http.MethodPost, "/api/debug/cache/clear", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	m := decodeJSON(t, body)
	assert.Equal(t, true, m["cleared"])
	assert.Contains(t, m, "fixtureCache")

	_, body = env.do(t, http.MethodGet, "/api/data/links.json", "", "")
	assert.JSONEq(t, `{"skiptSkool":"https://changed.example/"}`, body)
}

func TestHandleClearCache_Disabled(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/debug/cache/clear", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	m := decodeJSON(t, body)
	assert.Equal(t, false, m["cleared"])
	assert.NotContains(t, m, "fixtureCache")
}
