package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/page"
)

func stateCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == config.StateCookie {
			return c
		}
	}
	require.FailNow(t, "no state cookie in response")
	return nil
}

func TestHandleHome(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/", "/some/deep/link"} {
		resp, body := env.do(t, http.MethodGet, target, "", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, body, `id="ktrucks-grid"`)
		assert.Equal(t, 2, strings.Count(body, `class="product-item`))
		assert.Contains(t, body, `href="https://skipt.example/"`)
		assert.Contains(t, body, `src="./assets/logo.svg"`)
	}
}

func TestHandleHome_LinksFallback(t *testing.T) {
	env := newTestEnv(t)
	env.removeData(t, "links.json")

	_, body := env.do(t, http.MethodGet, "/", "", "")
	assert.Contains(t, body, `href="https://skiptskool.onrender.com/"`)
	assert.Contains(t, body, `src="./assets/SKPTSKL-T1.svg"`)
	assert.Contains(t, body, `id="ktrucks-grid"`)
}

func TestHandleHome_TruckDataMissing(t *testing.T) {
	env := newTestEnv(t)
	env.removeData(t, "ktruckimage.json")

	resp, body := env.do(t, http.MethodGet, "/", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Error loading K Trucks data")
	assert.NotContains(t, body, "product-item")
	assert.Contains(t, body, `href="https://skipt.example/"`)
}

func TestHandleHome_StaleModalIsClosed(t *testing.T) {
	env := newTestEnv(t)
	stale := &http.Cookie{Name: config.StateCookie, Value: page.State{Modal: "gone"}.Encode()}

	resp, body := env.do(t, http.MethodGet, "/", "", "", stale)
	assert.Contains(t, body, "display: none")
	assert.False(t, page.DecodeState(stateCookie(t, resp).Value).ModalOpen())
}

func TestModalFlow(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/ui/ktrucks/t2", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "display: flex")
	assert.Contains(t, body, "1996 Honda Acty")
	assert.NotContains(t, body, "1994 Suzuki Carry")
	cookie := stateCookie(t, resp)
	assert.Equal(t, "t2", page.DecodeState(cookie.Value).Modal)

	// The full page keeps the modal open on reload.
	_, body = env.do(t, http.MethodGet, "/", "", "", cookie)
	assert.Contains(t, body, "display: flex")

	resp, body = env.do(t, http.MethodPost, "/ui/keydown", fiber.MIMEApplicationForm, "key=Escape", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "display: none")
	cookie = stateCookie(t, resp)
	assert.False(t, page.DecodeState(cookie.Value).ModalOpen())

	// Escape with nothing open changes nothing.
	resp, _ = env.do(t, http.MethodPost, "/ui/keydown", fiber.MIMEApplicationForm, "key=Escape", cookie)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestHandleModalClose(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodGet, "/ui/ktrucks/t1", "", "")
	cookie := stateCookie(t, resp)

	resp, body := env.do(t, http.MethodPost, "/ui/ktrucks/close", "", "", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "display: none")
	assert.False(t, page.DecodeState(stateCookie(t, resp).Value).ModalOpen())
}

func TestHandleKeyDown_OtherKey(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodGet, "/ui/ktrucks/t1", "", "")
	cookie := stateCookie(t, resp)

	resp, _ = env.do(t, http.MethodPost, "/ui/keydown", fiber.MIMEApplicationForm, "key=Enter", cookie)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestHandleTruckDetail_NoDescription(t *testing.T) {
	env := newTestEnv(t)
	env.writeData(t, "ktruckdescription.json", `[{"id":"t1","title":"1994 Suzuki Carry"}]`)

	resp, _ := env.do(t, http.MethodGet, "/ui/ktrucks/t2", "", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
}

func TestSidebarAndSubmenus(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/ui/sidebar/toggle", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `class="sidebar-container expanded"`)
	assert.Contains(t, body, `document.body.className = "menu-expanded";`)
	cookie := stateCookie(t, resp)

	resp, body = env.do(t, http.MethodPost, "/ui/submenu/imports/toggle", "", "", cookie)
	assert.Contains(t, body, "submenu-expanded")
	cookie = stateCookie(t, resp)
	assert.Equal(t, "imports", page.DecodeState(cookie.Value).Submenu)

	// Opening another submenu closes the first.
	resp, _ = env.do(t, http.MethodPost, "/ui/submenu/community/toggle", "", "", cookie)
	cookie = stateCookie(t, resp)
	assert.Equal(t, "community", page.DecodeState(cookie.Value).Submenu)

	// Closing the sidebar closes the submenu too.
	resp, body = env.do(t, http.MethodPost, "/ui/sidebar/toggle", "", "", cookie)
	assert.Contains(t, body, `class="sidebar-container"`)
	assert.Contains(t, body, `document.body.className = "";`)
	s := page.DecodeState(stateCookie(t, resp).Value)
	assert.False(t, s.Sidebar)
	assert.Empty(t, s.Submenu)
}

func TestHandleSubmenuToggle_Unknown(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/ui/submenu/nope/toggle", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="sidebar"`)
	assert.Empty(t, resp.Cookies())
}

func TestHandleTrucksGrid(t *testing.T) {
	env := newTestEnv(t)

	_, body := env.do(t, http.MethodGet, "/ui/ktrucks/grid", "", "")
	assert.Equal(t, 2, strings.Count(body, `class="product-item`))
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/assets/logo.svg", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "<svg/>", body)

	// Missing assets fall through to the page.
	resp, body = env.do(t, http.MethodGet, "/assets/missing.png", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<!doctype html>")
}

func TestNumericDescriptionFields(t *testing.T) {
	env := newTestEnv(t)
	env.writeData(t, "ktruckdescription.json", `[
		{"id":"t1","title":"1994 Suzuki Carry","year":1994,"mileage":52000,"price":7200,"description":"Clean frame."},
		{"id":"t2","title":"1996 Honda Acty","year":1996,"price":6500.5}
	]`)

	_, body := env.do(t, http.MethodGet, "/", "", "")
	assert.NotContains(t, body, "Error loading K Trucks data")
	assert.Equal(t, 2, strings.Count(body, `class="product-item`))

	resp, body := env.do(t, http.MethodGet, "/ui/ktrucks/t1", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "1994")
	assert.Contains(t, body, "52000")
	assert.Contains(t, body, "7200")
}
