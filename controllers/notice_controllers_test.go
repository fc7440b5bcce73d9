package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publish(t *testing.T, admin *browser, form url.Values) {
	w := admin.post("/add_notice", form)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
}

func studentBrowser(t *testing.T, b *browser) *browser {
	require.Equal(t, http.StatusFound, b.post("/signup", url.Values{"username": {"sam"}, "password": {"password123"}}).Code)
	b.login("sam", "password123")
	return b
}

func TestAdminPublishesNotice(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))
	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)

	publish(t, admin, url.Values{"title": {"Library closed"}, "content": {"Closed for inventory."}, "category": {"facilities"}})

	w := admin.get("/admin/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Notice published successfully!")
	assert.Contains(t, body, "Library closed")
	assert.Contains(t, body, "by root")
	assert.Contains(t, body, "Total notices: <strong>1</strong>")
}

func TestAddNoticeValidation(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))
	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)

	publish(t, admin, url.Values{"title": {"No content"}})
	assert.Contains(t, admin.get("/admin/dashboard").Body.String(), "Please fill in all required fields")

	publish(t, admin, url.Values{"title": {"Bad date"}, "content": {"x"}, "expiry_date": {"tomorrow"}})
	body := admin.get("/admin/dashboard").Body.String()
	assert.Contains(t, body, "Invalid expiry date")
	assert.Contains(t, body, "Total notices: <strong>0</strong>")
}

func TestStudentSeesOnlyActiveNotices(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))
	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	publish(t, admin, url.Values{"title": {"Expired drill"}, "content": {"x"}, "expiry_date": {yesterday}})
	publish(t, admin, url.Values{"title": {"Exam week"}, "content": {"x"}, "expiry_date": {nextWeek}})
	publish(t, admin, url.Values{"title": {"House rules"}, "content": {"x"}})

	student := studentBrowser(t, newBrowser(t, router))
	w := student.get("/student/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "Expired drill")
	assert.Contains(t, body, "Exam week")
	assert.Contains(t, body, "House rules")
	assert.Less(t, strings.Index(body, "House rules"), strings.Index(body, "Exam week"), "newest first")

	home := newBrowser(t, router).get("/")
	assert.Contains(t, home.Body.String(), "House rules")
	assert.NotContains(t, home.Body.String(), "Expired drill")
}

func TestViewNotice(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))
	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)
	publish(t, admin, url.Values{"title": {"Fire drill"}, "content": {"Assemble at the field."}})

	student := studentBrowser(t, newBrowser(t, router))
	w := student.get("/notice/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Assemble at the field.")
	assert.Contains(t, w.Body.String(), "Posted by root")

	w = newBrowser(t, router).get("/notice/1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestMissingNoticeRedirectsToDashboard(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))

	student := studentBrowser(t, newBrowser(t, router))
	w := student.get("/notice/999")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/student/dashboard", w.Header().Get("Location"))
	assert.Contains(t, student.get("/student/dashboard").Body.String(), "Notice not found")

	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)
	w = admin.get("/notice/999")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	assert.Contains(t, admin.get("/admin/dashboard").Body.String(), "Notice not found")
}

func TestNonNumericNoticeIDIsNotFound(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))
	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)

	w := admin.get("/notice/abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentCannotPublish(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))
	student := studentBrowser(t, newBrowser(t, router))

	w := student.post("/add_notice", url.Values{"title": {"Free pizza"}, "content": {"x"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = student.get("/admin/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)
	assert.Contains(t, admin.get("/admin/dashboard").Body.String(), "Total notices: <strong>0</strong>")
}

func TestViewExpiredNoticeIsMarked(t *testing.T) {
	router := setupRouterForTest(t, setupTestExecutor(t))
	admin := newBrowser(t, router)
	admin.login(adminUsername, adminPassword)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	publish(t, admin, url.Values{"title": {"Old news"}, "content": {"x"}, "expiry_date": {yesterday}})
	publish(t, admin, url.Values{"title": {"Still running"}, "content": {"y"}})

	w := admin.get("/notice/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="badge expired"`)

	w = admin.get("/notice/2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `class="badge expired"`)
}
