package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/portfolio/backend/internal/handlers"
	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/anonto42/portfolio/backend/internal/testutil"
	"github.com/anonto42/portfolio/backend/pkg/config"
	"github.com/anonto42/portfolio/backend/pkg/logger"
	"github.com/anonto42/portfolio/backend/pkg/storage"
	"github.com/anonto42/portfolio/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	t  *testing.T
	e  *echo.Echo
	db *gorm.DB
}

// newTestServer serves the full route table over a fresh database. Options
// adjust the dependencies before the routes are built.
func newTestServer(t *testing.T, opts ...func(*Dependencies)) *testServer {
	t.Helper()
	logger.InitLogger("panic")

	db := testutil.NewTestDB(t)
	files, err := storage.NewLocalFileStore(t.TempDir(), "/media/")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:      "router-test-secret",
		TokenTTL:       time.Hour,
		MediaURL:       "/media/",
		MaxUploadBytes: 1 << 20,
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler(logger.Log)
	SetupMiddleware(e)
	deps := Dependencies{DB: db, Config: cfg, Files: files}
	for _, opt := range opts {
		opt(&deps)
	}
	SetupRoutes(e, deps)

	return &testServer{t: t, e: e, db: db}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/login", "", echo.Map{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(s.t, rec)["token"].(string)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body, ok := decode(t, rec)["error"].(map[string]interface{})
	require.True(t, ok, rec.Body.String())
	return body["code"].(string)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/register", "", echo.Map{
		"email":            "A@X.com",
		"password":         "Secret123!",
		"password_confirm": "Secret123!",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "a@x.com", body["user"].(map[string]interface{})["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	token := s.login("a@x.com", "Secret123!")
	assert.NotEmpty(t, token)

	rec = s.do(http.MethodPost, "/api/auth/login", "", echo.Map{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/register", "", echo.Map{
		"email":            "a@x.com",
		"password":         "Secret123!",
		"password_confirm": "Secret123!",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", errorCode(t, rec))

	rec = s.do(http.MethodPost, "/api/auth/register", "", echo.Map{
		"email":            "b@x.com",
		"password":         "Secret123!",
		"password_confirm": "Different1!",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := decode(t, rec)["error"].(map[string]interface{})["details"].(map[string]interface{})
	assert.Contains(t, details, "password")
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")
	token := s.login("a@x.com", "Secret123!")

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/profile", token, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/auth/logout", token, nil).Code)

	rec := s.do(http.MethodGet, "/api/auth/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestToggleLike(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")
	token := s.login("a@x.com", "Secret123!")

	project := &models.Project{Title: "Drone Reel", Slug: "drone-reel", Category: models.CategoryDrone, IsActive: true}
	require.NoError(t, s.db.Create(project).Error)
	path := fmt.Sprintf("/api/like/project/%d", project.ID)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, path, "", nil).Code)

	rec := s.do(http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, true, body["liked"])
	assert.EqualValues(t, 1, body["likes_count"])

	rec = s.do(http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, false, body["liked"])
	assert.EqualValues(t, 0, body["likes_count"])

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/like/project/999", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/like/comment/1", token, nil).Code)
}

func TestSettingsAccess(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")
	testutil.CreateUser(t, s.db, "admin@x.com", models.RoleAdmin, "Secret123!")

	rec := s.do(http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "google_client_secret")
	assert.NotContains(t, rec.Body.String(), "email_host_password")
	assert.Contains(t, decode(t, rec), "site_name")

	member := s.login("a@x.com", "Secret123!")
	rec = s.do(http.MethodPatch, "/api/settings", member, echo.Map{"site_name": "Mine"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	admin := s.login("admin@x.com", "Secret123!")
	rec = s.do(http.MethodPatch, "/api/settings", admin, echo.Map{"site_name": "Studio"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Studio", decode(t, rec)["site_name"])

	rec = s.do(http.MethodGet, "/api/settings", "", nil)
	assert.Equal(t, "Studio", decode(t, rec)["site_name"])
}

func uploadRequest(t *testing.T, token, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	return req
}

func TestUpload(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")
	token := s.login("a@x.com", "Secret123!")

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, uploadRequest(t, token, "notes.txt", "text/plain", []byte("hello")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, uploadRequest(t, token, "fake.png", "image/png", []byte("plain text pretending")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, uploadRequest(t, token, "pixel.png", "image/png", png))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	url := body["url"].(string)
	assert.True(t, strings.HasPrefix(url, "/media/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	get := httptest.NewRequest(http.MethodGet, url, nil)
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, get)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, png, rec.Body.Bytes())

	anon := uploadRequest(t, "", "pixel.png", "image/png", png)
	anon.Header.Del(echo.HeaderAuthorization)
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, anon)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")
	token := s.login("a@x.com", "Secret123!")

	big := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 2<<20)...)
	req := uploadRequest(t, token, "big.png", "image/png", big)
	require.Greater(t, req.ContentLength, int64(1<<20))

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", errorCode(t, rec))
}

func TestRateLimitPerCaller(t *testing.T) {
	s := newTestServer(t, func(d *Dependencies) {
		d.RateStore = middleware.NewMemoryRateStore(middleware.Limits{Anon: 2, User: 3, Window: time.Minute})
	})

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/settings", "", nil).Code, "call %d", i)
	}
	rec := s.do(http.MethodGet, "/api/settings", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", errorCode(t, rec))

	// Login itself spends the anonymous allowance.
	users := newTestServer(t, func(d *Dependencies) {
		d.RateStore = middleware.NewMemoryRateStore(middleware.Limits{Anon: 1, User: 2, Window: time.Minute})
	})
	testutil.CreateUser(t, users.db, "a@x.com", models.RoleRegistered, "Secret123!")
	token := users.login("a@x.com", "Secret123!")
	assert.Equal(t, http.StatusTooManyRequests, users.do(http.MethodGet, "/api/settings", "", nil).Code)
	assert.Equal(t, http.StatusOK, users.do(http.MethodGet, "/api/settings", token, nil).Code)
	assert.Equal(t, http.StatusOK, users.do(http.MethodGet, "/api/settings", token, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, users.do(http.MethodGet, "/api/settings", token, nil).Code)
}

func TestSubscribe(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/subscribe", "", echo.Map{"email": "Reader@X.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/subscribe", "", echo.Map{"email": "reader@x.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Already subscribed", decode(t, rec)["message"])

	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/unsubscribe", "", echo.Map{"email": "reader@x.com"}).Code)
	rec = s.do(http.MethodPost, "/api/subscribe", "", echo.Map{"email": "reader@x.com"})
	assert.Equal(t, "Re-subscribed successfully", decode(t, rec)["message"])

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/unsubscribe", "", echo.Map{"email": "nobody@x.com"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/subscribe", "", echo.Map{"email": "not-an-email"}).Code)
}

func TestCVDocument(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/cv", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	for _, section := range []string{"personal_info", "experiences", "education", "skills", "languages", "certifications", "projects", "interests"} {
		assert.Contains(t, body, section)
	}
	assert.Equal(t, []interface{}{}, body["experiences"])
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	s := newTestServer(t)
	admin := testutil.CreateUser(t, s.db, "admin@x.com", models.RoleAdmin, "Secret123!")
	other := testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")
	token := s.login("admin@x.com", "Secret123!")

	rec := s.do(http.MethodDelete, fmt.Sprintf("/api/auth/admin/users/%d", admin.ID), token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/auth/admin/users/%d", other.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	testutil.CreateUser(t, s.db, "b@x.com", models.RoleRegistered, "Secret123!")
	memberToken := s.login("b@x.com", "Secret123!")
	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/auth/admin/users/%d", admin.ID), memberToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNotificationsAreScopedToRecipients(t *testing.T) {
	s := newTestServer(t)
	admin := testutil.CreateUser(t, s.db, "admin@x.com", models.RoleAdmin, "Secret123!")
	testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")

	repo := repositories.NewSQLNotificationRepository(s.db)
	n := &models.Notification{Title: "Hello", Message: "For admins"}
	require.NoError(t, repo.CreateNotification(n, []uint{admin.ID}))

	member := s.login("a@x.com", "Secret123!")
	rec := s.do(http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", n.ID), member, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/notifications/unread-count", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, decode(t, rec)["unread_count"])

	adminToken := s.login("admin@x.com", "Secret123!")
	rec = s.do(http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", n.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(http.MethodGet, "/api/notifications/unread-count", adminToken, nil)
	assert.EqualValues(t, 0, decode(t, rec)["unread_count"])
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(http.MethodGet, "/api/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestContactFlowNotifiesBothSides(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateUser(t, s.db, "admin@x.com", models.RoleAdmin, "Secret123!")
	testutil.CreateUser(t, s.db, "a@x.com", models.RoleRegistered, "Secret123!")
	admin := s.login("admin@x.com", "Secret123!")
	member := s.login("a@x.com", "Secret123!")

	rec := s.do(http.MethodPost, "/api/contact", member, echo.Map{
		"name":    "Ann",
		"email":   "a@x.com",
		"subject": "Drone work",
		"message": "Are you available in May?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := int(decode(t, rec)["id"].(float64))

	rec = s.do(http.MethodGet, "/api/notifications/unread-count", admin, nil)
	assert.EqualValues(t, 1, decode(t, rec)["unread_count"])

	rec = s.do(http.MethodGet, "/api/contact/messages", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["results"], 1)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, fmt.Sprintf("/api/contact/%d/reply", id), member, echo.Map{"reply": "hi"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, fmt.Sprintf("/api/contact/%d/reply", id), admin, echo.Map{"reply": "  "}).Code)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/contact/%d/reply", id), admin, echo.Map{"reply": "Yes, from the 4th."})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/notifications", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, 1, body["unread_count"])
	assert.Len(t, body["results"], 1)
}
