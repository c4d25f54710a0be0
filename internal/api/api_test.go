package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"thrift_manager/internal/middleware"
	"thrift_manager/internal/service"
	"thrift_manager/internal/store"
	"thrift_manager/internal/store/storetest"
	"thrift_manager/internal/utils"
)

const testSecret = "api-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T, gdb *gorm.DB, isProd bool) *gin.Engine {
	t.Helper()
	svc := service.New(store.New(gdb), utils.NopCache{}, testSecret, time.Hour)
	return NewRouter(svc, RouterOptions{IsProd: isProd, Metrics: middleware.NewMetrics()})
}

// client replays the session cookie like a browser would
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
	bearer string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			c.cookie = ck
		}
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func registerClient(t *testing.T, r *gin.Engine, email string) *client {
	t.Helper()
	c := &client{t: t, router: r}
	w := c.do(http.MethodPost, "/api/auth/register", gin.H{"name": "Ada", "email": email, "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return c
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API is running...", w.Body.String())
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	c := &client{t: t, router: r}

	w := c.do(http.MethodPost, "/api/auth/register", gin.H{"name": "Ada", "email": "ada@example.com", "password": "secret123"})
	require.Equal(t, http.StatusCreated, w.Code)
	user := decode[map[string]any](t, w)
	assert.NotEmpty(t, user["_id"])
	assert.Equal(t, "ada@example.com", user["email"])
	assert.NotContains(t, user, "password")
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.cookie.SameSite)
	assert.Equal(t, 3600, c.cookie.MaxAge)

	w = c.do(http.MethodPost, "/api/auth/register", gin.H{"name": "Ada", "email": "ada@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode[middleware.ErrorResponse](t, w).Message)

	w = c.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user["_id"], decode[map[string]any](t, w)["_id"])

	fresh := &client{t: t, router: r}
	w = fresh.do(http.MethodPost, "/api/auth/login", gin.H{"email": "ada@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode[middleware.ErrorResponse](t, w).Message)
	assert.Nil(t, fresh.cookie)

	w = fresh.do(http.MethodPost, "/api/auth/login", gin.H{"email": "ada@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", decode[MessageResponse](t, w).Message)
	require.NotNil(t, fresh.cookie)

	w = fresh.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, fresh.cookie.MaxAge)
}

func TestMalformedBody(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request", decode[middleware.ErrorResponse](t, w).Message)
}

func TestRegisterOverlongInputIsBadRequest(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	c := &client{t: t, router: r}

	w := c.do(http.MethodPost, "/api/auth/register", gin.H{"name": "Ada", "email": "ada@example.com", "password": strings.Repeat("a", 80)})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "password must be at most 72 bytes", decode[middleware.ErrorResponse](t, w).Message)
	assert.Nil(t, c.cookie)

	w = c.do(http.MethodPost, "/api/auth/register", gin.H{"name": strings.Repeat("A", 101), "email": "ada@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name must be at most 100 characters", decode[middleware.ErrorResponse](t, w).Message)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	anon := &client{t: t, router: r}

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/members/create"},
		{http.MethodGet, "/api/members/all"},
		{http.MethodPost, "/api/thrifts/create"},
		{http.MethodGet, "/api/thrifts/all"},
		{http.MethodPut, "/api/thrifts/abc"},
		{http.MethodPost, "/api/contributions/create"},
		{http.MethodGet, "/api/contributions/all"},
		{http.MethodGet, "/api/dashboard/stats"},
		{http.MethodGet, "/api/dashboard/activities"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := anon.do(rt.method, rt.path, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	expired, err := utils.GenerateJWT("someone", testSecret, -time.Minute)
	require.NoError(t, err)
	w := (&client{t: t, router: r, bearer: expired}).do(http.MethodGet, "/api/members/all", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized, token is invalid or expired", decode[middleware.ErrorResponse](t, w).Message)
}

func TestEndToEnd(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	c := registerClient(t, r, "owner@example.com")

	w := c.do(http.MethodPost, "/api/members/create", gin.H{"name": "Ade", "phone": "08012345678"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	member := decode[map[string]any](t, w)

	w = c.do(http.MethodPost, "/api/thrifts/create", gin.H{
		"name": "X", "startDate": "2024-01-01", "amountPerCycle": 5000, "frequency": "weekly", "maxMembers": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	thrift := decode[map[string]any](t, w)
	assert.Equal(t, "pending", thrift["status"])
	assert.Equal(t, true, thrift["isPublic"])

	w = c.do(http.MethodPost, "/api/contributions/create", gin.H{
		"memberId": member["_id"], "thriftId": thrift["_id"], "amount": 1000, "date": "2024-01-08",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	contribution := decode[map[string]any](t, w)
	assert.Equal(t, "Pending", contribution["status"])
	assert.Regexp(t, `^TRN-`, contribution["transactionRef"])

	w = c.do(http.MethodGet, "/api/members/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = c.do(http.MethodGet, "/api/contributions/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	contributions := decode[service.ContributionPage](t, w)
	require.Len(t, contributions.Contributions, 1)
	require.NotNil(t, contributions.Contributions[0].Member)
	assert.Equal(t, "Ade", contributions.Contributions[0].Member.Name)

	w = c.do(http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[service.Stats](t, w)
	assert.EqualValues(t, 1, stats.TotalMembers)
	assert.EqualValues(t, 1, stats.TotalThrifts)
	assert.Equal(t, 1000.0, stats.TotalContributions)
	require.Len(t, stats.RecentActivity, 1)
	assert.Equal(t, "Ade", stats.RecentActivity[0].MemberName)
	assert.Equal(t, "X", stats.RecentActivity[0].ThriftName)

	w = c.do(http.MethodGet, "/api/dashboard/activities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	activities := decode[[]map[string]any](t, w)
	require.Len(t, activities, 3)
	assert.Equal(t, "₦1,000 contribution received from Ade", activities[0]["action"])
	assert.Equal(t, "💰", activities[0]["icon"])
}

func TestThriftPaginationBoundary(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	c := registerClient(t, r, "pager@example.com")
	for i := 0; i < 25; i++ {
		w := c.do(http.MethodPost, "/api/thrifts/create", gin.H{
			"name": fmt.Sprintf("Plan %d", i), "startDate": "2024-01-01", "amountPerCycle": 100, "frequency": "monthly", "maxMembers": 2,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := c.do(http.MethodGet, "/api/thrifts/all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[map[string]any](t, w)
	assert.Len(t, first["thrifts"], 25)
	assert.EqualValues(t, 1, first["totalPages"])
	assert.EqualValues(t, 25, first["totalThrifts"])

	w = c.do(http.MethodGet, "/api/thrifts/all?page=2&limit=25", nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[map[string]any](t, w)
	assert.Equal(t, []any{}, second["thrifts"])
	assert.EqualValues(t, 1, second["totalPages"])
	assert.EqualValues(t, 2, second["currentPage"])

	w = c.do(http.MethodGet, "/api/thrifts/all?page=9223372036854775807&limit=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	far := decode[map[string]any](t, w)
	assert.Equal(t, []any{}, far["thrifts"])
	assert.EqualValues(t, 1, far["totalPages"])

	w = c.do(http.MethodGet, "/api/thrifts/all?page=abc&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	third := decode[map[string]any](t, w)
	assert.Len(t, third["thrifts"], 10)
	assert.EqualValues(t, 3, third["totalPages"])
	assert.EqualValues(t, 1, third["currentPage"])
}

func TestUpdateThrift(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	owner := registerClient(t, r, "owner@example.com")
	intruder := registerClient(t, r, "intruder@example.com")

	payload := gin.H{"name": "Fund", "startDate": "2024-01-01", "amountPerCycle": 5000, "frequency": "weekly", "maxMembers": 5}
	w := owner.do(http.MethodPost, "/api/thrifts/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[map[string]any](t, w)["_id"].(string)

	payload["name"] = "Hijacked"
	w = intruder.do(http.MethodPut, "/api/thrifts/"+id, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized to update this thrift", decode[middleware.ErrorResponse](t, w).Message)

	w = owner.do(http.MethodPut, "/api/thrifts/does-not-exist", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = owner.do(http.MethodPut, "/api/thrifts/"+id, gin.H{"name": "Fund"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload["name"] = "Fund v2"
	payload["status"] = "active"
	w = owner.do(http.MethodPut, "/api/thrifts/"+id, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.Equal(t, "Fund v2", updated["name"])
	assert.Equal(t, "active", updated["status"])

	w = owner.do(http.MethodGet, "/api/thrifts/all", nil)
	list := decode[service.ThriftPage](t, w)
	require.Len(t, list.Thrifts, 1)
	assert.Equal(t, "Fund v2", list.Thrifts[0].Name)
}

func TestContributionForeignReferences(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	owner := registerClient(t, r, "owner@example.com")
	other := registerClient(t, r, "other@example.com")

	w := other.do(http.MethodPost, "/api/members/create", gin.H{"name": "Chidi"})
	require.Equal(t, http.StatusCreated, w.Code)
	foreignMember := decode[map[string]any](t, w)["_id"]
	w = owner.do(http.MethodPost, "/api/thrifts/create", gin.H{"name": "Fund", "startDate": "2024-01-01", "amountPerCycle": 100, "frequency": "daily", "maxMembers": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	thriftID := decode[map[string]any](t, w)["_id"]

	w = owner.do(http.MethodPost, "/api/contributions/create", gin.H{"memberId": foreignMember, "thriftId": thriftID, "amount": 100, "date": "2024-01-02"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Member not found", decode[middleware.ErrorResponse](t, w).Message)

	w = owner.do(http.MethodPost, "/api/contributions/create", gin.H{"thriftId": thriftID, "amount": 100, "date": "2024-01-02"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// newFailingDB returns a gorm handle whose every query fails
func newFailingDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 4; i++ {
		mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	}
	gdb, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb
}

func TestStoreFailureIsServerError(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("development exposes the trace", func(t *testing.T) {
		r := newTestRouter(t, newFailingDB(t), false)
		w := (&client{t: t, router: r, bearer: token}).do(http.MethodGet, "/api/members/all", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode[middleware.ErrorResponse](t, w)
		assert.Equal(t, "Server error", resp.Message)
		require.NotNil(t, resp.Stack)
		assert.Contains(t, *resp.Stack, "connection refused")
	})

	t.Run("production hides it", func(t *testing.T) {
		r := newTestRouter(t, newFailingDB(t), true)
		w := (&client{t: t, router: r, bearer: token}).do(http.MethodGet, "/api/members/all", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode[middleware.ErrorResponse](t, w)
		assert.Equal(t, "Server error", resp.Message)
		assert.Nil(t, resp.Stack)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, storetest.NewDB(t), false)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/",status="200"} 1`)
}
