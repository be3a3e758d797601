package client

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reachout/config"
	"reachout/database/dbtest"
	"reachout/middleware"
	"reachout/models"
	"reachout/repository"
	"reachout/server"
	authService "reachout/services/auth"
	certificateService "reachout/services/certificate"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	testSecret = "client-test-secret"
	adminEmail = "admin@reachoutacademy.com"
	adminPass  = "admin123"
)

func startServer(t *testing.T) (string, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{JWTKey: testSecret, TokenTTL: 24 * time.Hour, SaltRound: bcrypt.MinCost, CorsOrigins: "*"}
	db := dbtest.New(t)

	auth := authService.NewService(repository.NewAdminRepository(db), middleware.NewTokenManager(cfg.JWTKey, cfg.TokenTTL), cfg.SaltRound)
	_, err := auth.CreateAdministrator(context.Background(), adminEmail, adminPass)
	require.NoError(t, err)

	app := server.New(cfg, db, server.Options{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go app.Listener(ln)
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), db
}

func refusedAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return "http://" + addr
}

func TestLoginAndMe(t *testing.T) {
	ctx := context.Background()
	baseURL, _ := startServer(t)
	c := New(baseURL)

	session, user, err := c.Login(ctx, "Admin@ReachOutAcademy.com", adminPass)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, user.Email)
	assert.Equal(t, adminEmail, session.Principal.Email)
	assert.Equal(t, middleware.RoleAdmin, session.Principal.Role)
	assert.True(t, session.Valid(time.Now()))
	assert.False(t, session.Valid(time.Now().Add(25*time.Hour)))

	profile, err := c.Me(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)

	assert.NoError(t, c.Logout(ctx, session))
}

func TestLoginRejected(t *testing.T) {
	baseURL, _ := startServer(t)

	_, _, err := New(baseURL).Login(context.Background(), adminEmail, "wrong-password")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestCheckAuth(t *testing.T) {
	ctx := context.Background()
	baseURL, db := startServer(t)
	c := New(baseURL)

	session, _, err := c.Login(ctx, adminEmail, adminPass)
	require.NoError(t, err)

	kept, profile, err := c.CheckAuth(ctx, session)
	require.NoError(t, err)
	assert.Same(t, session, kept)
	assert.Equal(t, adminEmail, profile.Email)

	// no session, nothing to check
	kept, _, err = c.CheckAuth(ctx, nil)
	assert.NoError(t, err)
	assert.Nil(t, kept)

	forged, _, err := middleware.NewTokenManager("other-secret", time.Hour).GenerateJWT(1, adminEmail, middleware.RoleAdmin)
	require.NoError(t, err)
	forgedSession, err := SessionFromToken(forged)
	require.NoError(t, err)
	kept, _, err = c.CheckAuth(ctx, forgedSession)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Nil(t, kept)

	require.NoError(t, db.Where("email = ?", adminEmail).Delete(&models.AdminUser{}).Error)
	kept, _, err = c.CheckAuth(ctx, session)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Nil(t, kept)
}

func TestCheckAuthConnectionErrors(t *testing.T) {
	ctx := context.Background()

	token, _, err := middleware.NewTokenManager(testSecret, time.Hour).GenerateJWT(1, adminEmail, middleware.RoleAdmin)
	require.NoError(t, err)
	session, err := SessionFromToken(token)
	require.NoError(t, err)

	kept, _, err := New(refusedAddress(t)).CheckAuth(ctx, session)
	require.Error(t, err)
	assert.True(t, IsConnectionRefused(err))
	assert.Nil(t, kept)

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":true,"message":"Internal server error"}`))
	}))
	defer broken.Close()

	kept, _, err = New(broken.URL).CheckAuth(ctx, session)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Same(t, session, kept)
}

func TestCheckAuthSkipsExpiredSession(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	expired := &Session{Token: "x.y.z", ExpiresAt: time.Now().Add(-time.Minute)}
	kept, _, err := New(srv.URL).CheckAuth(context.Background(), expired)
	assert.NoError(t, err)
	assert.Nil(t, kept)
	assert.Zero(t, calls)
}

func TestVerifyCertificate(t *testing.T) {
	ctx := context.Background()
	baseURL, db := startServer(t)
	c := New(baseURL)

	certs := certificateService.NewService(repository.NewCertificateRepository(db))
	_, err := certs.Issue(ctx, certificateService.IssueInput{
		StudentName: "Jane Doe", CourseName: "Web Development", IssueDate: "2024-01-15", CertNumber: "CERT-001-2024",
	})
	require.NoError(t, err)
	_, err = certs.Issue(ctx, certificateService.IssueInput{
		StudentName: "John Roe", CourseName: "Python", IssueDate: "2024-02-01", CertNumber: "CERT 002", Status: models.CertificateStatusRevoked,
	})
	require.NoError(t, err)

	v, err := c.VerifyCertificate(ctx, "CERT-001-2024")
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "Jane Doe", v.Certificate.StudentName)
	assert.Equal(t, "2024-01-15", v.Certificate.IssueDate)

	v, err = c.VerifyCertificate(ctx, "CERT 002")
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, models.CertificateStatusRevoked, v.Certificate.Status)

	_, err = certs.Issue(ctx, certificateService.IssueInput{
		StudentName: "Ravi Kumar", CourseName: "Python", IssueDate: "2024-05-02", CertNumber: "RO/2024/001",
	})
	require.NoError(t, err)

	v, err = c.VerifyCertificate(ctx, "RO/2024/001")
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "RO/2024/001", v.Certificate.CertNumber)

	_, err = c.VerifyCertificate(ctx, "CERT-404")
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestHealthAndCourses(t *testing.T) {
	ctx := context.Background()
	baseURL, db := startServer(t)
	c := New(baseURL)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "ok", health.Database)

	courses, err := c.ListCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	require.NoError(t, repository.NewCourseRepository(db).Create(ctx, &models.Course{
		Title: "Python", Description: "Basics", Duration: "6 weeks", Fees: decimal.RequireFromString("1500.50"),
	}))

	courses, err = c.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(courses[0].Fees))
}

func TestSessionFromToken(t *testing.T) {
	_, err := SessionFromToken("not-a-token")
	assert.Error(t, err)

	token, expiresAt, err := middleware.NewTokenManager(testSecret, time.Hour).GenerateJWT(9, adminEmail, middleware.RoleAdmin)
	require.NoError(t, err)

	session, err := SessionFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), session.Principal.ID)
	assert.WithinDuration(t, expiresAt, session.ExpiresAt, time.Second)

	var nilSession *Session
	assert.False(t, nilSession.Valid(time.Now()))
}
