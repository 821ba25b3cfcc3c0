package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"name": {"alice"}, "password": {"secret"}}
	rr := ts.post("/auth/register", form)

	// Should redirect to home with a session cookie
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasSession())

	// Follow redirect and check we're logged in
	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "nav", "alice")
	assertContainsText(t, doc, ".flash", "Welcome to the league")
}

func TestRegisterEmptyName(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"name": {""}, "password": {"secret"}}
	rr := ts.post("/auth/register", form)

	// Re-renders the form with an error, no session
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error", "Name and password are required")
}

func TestRegisterNameTaken(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	other := newCookieJar()
	ts.cookies = other

	form := url.Values{"name": {"alice"}, "password": {"other"}}
	rr := ts.post("/auth/register", form)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error", "already registered")
}

func TestLogin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	// Fresh jar simulates a new browser
	ts.cookies = newCookieJar()

	form := url.Values{"name": {"alice"}, "password": {"secret"}}
	rr := ts.post("/auth/login", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.True(t, ts.cookies.hasSession())

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Welcome back, alice")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")
	ts.cookies = newCookieJar()

	form := url.Values{"name": {"alice"}, "password": {"wrong"}}
	rr := ts.post("/auth/login", form)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".error", "Invalid name or password")
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	rr := ts.post("/auth/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	// Protected pages now redirect to login
	rr = ts.get("/")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/", "/stats", "/profile", "/roster"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusSeeOther, rr.Code, path)
		assert.Equal(t, "/login", rr.Header().Get("Location"), path)
	}
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	rr := ts.get("/login")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestFlashShownOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".flash")

	// Second load has no flash
	rr = ts.get("/")
	doc = parseHTML(rr.Body)
	assertNotContainsElement(t, doc, ".flash")
}
