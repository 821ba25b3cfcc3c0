package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordGame(ts *webTestServer, date string, goals, rebounds, steals, blocks string) {
	ts.t.Helper()
	form := url.Values{
		"date":     {date},
		"goals":    {goals},
		"rebounds": {rebounds},
		"steals":   {steals},
		"blocks":   {blocks},
	}
	rr := ts.post("/stats", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
}

func TestDashboardEmptyLeague(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "League dashboard")
	assertContainsText(t, doc, "section", "No stats recorded yet")
	assertNotContainsElement(t, doc, ".leaderboard-row")
}

func TestDashboardLeaderboard(t *testing.T) {
	ts := newWebTestServer(t)

	ts.register("alice", "secret")
	recordGame(ts, "2024-01-05", "10", "2", "1", "0")

	ts.cookies = newCookieJar()
	ts.register("bob", "secret")
	recordGame(ts, "2024-01-05", "20", "1", "0", "0")

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	rows := doc.Find(".leaderboard-row")
	require.Equal(t, 2, rows.Length())

	// Bob leads on goals
	first := rows.First().Text()
	assert.Contains(t, first, "bob")
	assert.Contains(t, first, "20")
}

func TestDashboardDefaultsToViewer(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")
	recordGame(ts, "2024-01-05", "12", "4", "1", "2")

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".player-card h3", "alice")
	assertContainsText(t, doc, ".totals", "12 goals")
}

func TestDashboardPlayerLookup(t *testing.T) {
	ts := newWebTestServer(t)

	ts.register("alice", "secret")
	recordGame(ts, "2024-01-05", "12", "4", "1", "2")

	ts.cookies = newCookieJar()
	ts.register("bob", "secret")

	rr := ts.get("/?player=alice")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".player-card h3", "alice")
	assertContainsElement(t, doc, ".player-card .history")
	assertContainsElement(t, doc, "img.avatar[src='/avatars/alice']")
}

func TestStatsPageLifecycle(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	// Entry form defaults the date to today per the app clock
	rr := ts.get("/stats")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "input[name='date'][value='2024-01-01']")

	recordGame(ts, "2024-01-05", "12", "4", "1", "2")

	rr = ts.get("/stats")
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".history", "2024-01-05")

	// Delete the entry
	rr = ts.post("/stats/delete", url.Values{"date": {"2024-01-05"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.get("/stats")
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, "section", "No games recorded yet")
}

func TestStatsSubmitInvalidValues(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	form := url.Values{
		"date":     {"2024-01-05"},
		"goals":    {"-1"},
		"rebounds": {"0"},
		"steals":   {"0"},
		"blocks":   {"0"},
	}
	rr := ts.post("/stats", form)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".error")
}

func TestProfileUpdate(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	form := url.Values{
		"height":   {"195"},
		"weight":   {"90"},
		"position": {"C"},
	}
	rr := ts.post("/profile", form)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	rr = ts.followRedirect(rr)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash", "Profile saved")
	assertContainsElement(t, doc, "input[name='height'][value='195']")
}

func TestProfileUpdateOutOfRange(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	form := url.Values{
		"height":   {"300"},
		"weight":   {"90"},
		"position": {"C"},
	}
	rr := ts.post("/profile", form)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, ".error")
}

func TestRosterPage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")
	ts.cookies = newCookieJar()
	ts.register("bob", "secret")

	rr := ts.get("/roster")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	cards := doc.Find(".player-card")
	assert.Equal(t, 2, cards.Length())
}

func TestAvatarFallback(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")

	rr := ts.get("/avatars/alice")
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/static/default-avatar.svg", rr.Header().Get("Location"))
}

func TestExportStatsDownload(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret")
	recordGame(ts, "2024-01-05", "12", "4", "1", "2")

	rr := ts.get("/export/stats")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "all_stats_2024-01-01.csv")
	assert.Contains(t, rr.Body.String(), "alice,2024-01-05,12,4,1,2")
}
