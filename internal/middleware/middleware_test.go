package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/user_account_service/internal/apperrors"
	"github.com/SscSPs/user_account_service/internal/core/domain"
	"github.com/SscSPs/user_account_service/internal/core/services"
	"github.com/SscSPs/user_account_service/internal/middleware"
	"github.com/SscSPs/user_account_service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const cookieName = "token"

func testTokenConfig() *config.Config {
	return &config.Config{
		JWTSecret:                "middleware-test-secret",
		JWTExpiryDuration:        time.Hour,
		JWTIssuer:                "user-account-service",
		EmailVerificationSecret:  "middleware-test-email-secret",
		EmailTokenExpiryDuration: time.Hour,
	}
}

type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) RecordLogin(ctx context.Context, userID string) (*domain.UserSession, error) {
	args := m.Called(ctx, userID)
	var session *domain.UserSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.UserSession)
	}
	return session, args.Error(1)
}

func (m *mockSessionRepo) CloseSession(ctx context.Context, userID string, logoutTime time.Time) error {
	args := m.Called(ctx, userID, logoutTime)
	return args.Error(0)
}

func (m *mockSessionRepo) FindSessionByUserID(ctx context.Context, userID string) (*domain.UserSession, error) {
	args := m.Called(ctx, userID)
	var session *domain.UserSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.UserSession)
	}
	return session, args.Error(1)
}

func (m *mockSessionRepo) FindActiveSession(ctx context.Context, userID string) (*domain.UserSession, error) {
	args := m.Called(ctx, userID)
	var session *domain.UserSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.UserSession)
	}
	return session, args.Error(1)
}

type mockMonitoringRepo struct {
	mock.Mock
}

func (m *mockMonitoringRepo) UpsertRouteStat(ctx context.Context, stat domain.RouteStat) error {
	args := m.Called(ctx, stat)
	return args.Error(0)
}

func (m *mockMonitoringRepo) InsertRouteAlert(ctx context.Context, routePath string, requestCount int64) error {
	args := m.Called(ctx, routePath, requestCount)
	return args.Error(0)
}

func performGet(r *gin.Engine, path, cookieValue string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenSvc := services.NewTokenService(testTokenConfig())

	var seenUserID string
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(cookieName, tokenSvc), func(c *gin.Context) {
		seenUserID, _ = middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, "ok")
	})

	t.Run("missing cookie", func(t *testing.T) {
		w := performGet(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := performGet(r, "/protected", "not-a-jwt")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token format")
	})

	t.Run("expired token", func(t *testing.T) {
		cfg := testTokenConfig()
		cfg.JWTExpiryDuration = -time.Minute
		expired, err := services.NewTokenService(cfg).IssueAuthToken("user-1")
		require.NoError(t, err)

		w := performGet(r, "/protected", expired)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Token has expired")
	})

	t.Run("valid token attaches user ID", func(t *testing.T) {
		token, err := tokenSvc.IssueAuthToken("user-1")
		require.NoError(t, err)

		w := performGet(r, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", seenUserID)
	})
}

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenSvc := services.NewTokenService(testTokenConfig())

	newRouter := func(repo *mockSessionRepo) (*gin.Engine, *string) {
		var seenSessionID string
		r := gin.New()
		r.GET("/protected",
			middleware.AuthMiddleware(cookieName, tokenSvc),
			middleware.SessionMiddleware(repo),
			func(c *gin.Context) {
				seenSessionID, _ = middleware.GetSessionIDFromContext(c)
				c.String(http.StatusOK, "ok")
			})
		return r, &seenSessionID
	}

	token, err := tokenSvc.IssueAuthToken("user-1")
	require.NoError(t, err)

	t.Run("attaches session ID", func(t *testing.T) {
		repo := new(mockSessionRepo)
		repo.On("FindSessionByUserID", mock.Anything, "user-1").
			Return(&domain.UserSession{ID: "row-1", UserID: "user-1", SessionID: "sess-1", LoginTime: time.Now()}, nil).Once()
		r, seen := newRouter(repo)

		w := performGet(r, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sess-1", *seen)
	})

	t.Run("no session row passes through", func(t *testing.T) {
		repo := new(mockSessionRepo)
		repo.On("FindSessionByUserID", mock.Anything, "user-1").
			Return(nil, apperrors.ErrNotFound).Once()
		r, seen := newRouter(repo)

		w := performGet(r, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, *seen)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		repo := new(mockSessionRepo)
		repo.On("FindSessionByUserID", mock.Anything, "user-1").
			Return(nil, assert.AnError).Once()
		r, _ := newRouter(repo)

		w := performGet(r, "/protected", token)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)
	ipLimiter := limiter.New(memory.NewStore(), rate)

	r := gin.New()
	r.GET("/limited", middleware.RateLimit(ipLimiter), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	assert.Equal(t, http.StatusOK, performGet(r, "/limited", "").Code)
	assert.Equal(t, http.StatusOK, performGet(r, "/limited", "").Code)

	w := performGet(r, "/limited", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestMonitoringMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(mockMonitoringRepo)
	repo.On("UpsertRouteStat", mock.Anything, mock.MatchedBy(func(stat domain.RouteStat) bool {
		return stat.RoutePath == "/tracked" && stat.RequestCount >= 1
	})).Return(nil)
	repo.On("InsertRouteAlert", mock.Anything, "/tracked", mock.AnythingOfType("int64")).Return(nil)

	r := gin.New()
	r.Use(middleware.MonitoringMiddleware(repo))
	r.GET("/tracked", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })

	// Crossing the alert threshold must start recording alert rows.
	for i := 0; i < 12; i++ {
		assert.Equal(t, http.StatusOK, performGet(r, "/tracked", "").Code)
	}
	repo.AssertNumberOfCalls(t, "UpsertRouteStat", 12)
	repo.AssertCalled(t, "InsertRouteAlert", mock.Anything, "/tracked", int64(11))
	repo.AssertCalled(t, "InsertRouteAlert", mock.Anything, "/tracked", int64(12))

	// Health checks are never tracked.
	assert.Equal(t, http.StatusOK, performGet(r, "/health", "").Code)
	repo.AssertNumberOfCalls(t, "UpsertRouteStat", 12)
}
