package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/haruko-imports/site/fixture"
	"github.com/haruko-imports/site/page"
)

const (
	trucksJSON = `[
		{"id":"t1","alt":"Suzuki Carry","thumbnailUrl":"/assets/t1-thumb.jpg","imageUrl":"/assets/t1.jpg"},
		{"id":"t2","alt":"Honda Acty","thumbnailUrl":"/assets/t2-thumb.jpg","imageUrl":"/assets/t2.jpg"}
	]`
	descriptionsJSON = `[
		{"id":"t1","title":"1994 Suzuki Carry","year":"1994","engine":"657cc","transmission":"4WD 5MT","capacity":"350kg","mileage":"52,000 km","price":"$7,200","description":"Clean frame."},
		{"id":"t2","title":"1996 Honda Acty","year":"1996","engine":"656cc","transmission":"5MT","capacity":"350kg","mileage":"40,000 km","price":"$6,500","description":"Dump bed."}
	]`
	linksJSON = `{"skiptSkool":"https://skipt.example/","svgImage":"./assets/logo.svg"}`
)

type testEnv struct {
	app       *fiber.App
	dataDir   string
	publicDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		dataDir:   t.TempDir(),
		publicDir: t.TempDir(),
	}
	env.writeData(t, "ktruckimage.json", trucksJSON)
	env.writeData(t, "ktruckdescription.json", descriptionsJSON)
	env.writeData(t, "links.json", linksJSON)

	assetsDir := filepath.Join(env.publicDir, "assets")
	require.NoError(t, os.Mkdir(assetsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "logo.svg"), []byte("<svg/>"), 0o644))

	store, err := fixture.NewStore(env.dataDir, 0)
	require.NoError(t, err)

	Init(Deps{
		Store:     store,
		Loader:    page.Loader{Source: store},
		PublicDir: env.publicDir,
	})
	env.app = fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	Register(env.app)
	return env
}

func (e *testEnv) writeData(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.dataDir, name), []byte(content), 0o644))
}

func (e *testEnv) removeData(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, os.Remove(filepath.Join(e.dataDir, name)))
}

// do runs a request, carrying cookies in and returning the response body.
func (e *testEnv) do(t *testing.T, method, target, contentType, body string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func decodeJSON(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}
