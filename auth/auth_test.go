package auth

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tutorialhub/models"
	"tutorialhub/store"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect to test database")
	}
	db.AutoMigrate(&models.User{}, &models.Category{}, &models.Tag{}, &models.Tutorial{}, &models.TutorialTag{})
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	sessionStore := cookie.NewStore([]byte("secret"))
	router.Use(sessions.Sessions("test-session", sessionStore))
	router.LoadHTMLGlob("views/*.html")

	authModule := NewAuthModule(db, store.NewUserRepo(db))
	authModule.RegisterRoutes(router)

	router.GET("/tutorials", RequireAuth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString("username")})
	})
	return router
}

func postJSON(router *gin.Engine, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getWithCookies(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerTestUser(router *gin.Engine) []*http.Cookie {
	w := postJSON(router, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`, nil)
	return w.Result().Cookies()
}

func TestRegister_CreatesSession(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := postJSON(router, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully!")
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotEmpty(t, w.Result().Cookies())

	// the fresh session authenticates follow-up requests
	me := getWithCookies(router, "/api/auth/me", w.Result().Cookies())
	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "alice")
}

func TestRegister_Validation(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	missing := postJSON(router, "/api/auth/register", `{"username":"alice"}`, nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	badEmail := postJSON(router, "/api/auth/register",
		`{"username":"alice","email":"not-an-email","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, badEmail.Code)
	assert.Contains(t, badEmail.Body.String(), "Invalid email format!")

	shortPassword := postJSON(router, "/api/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"abc"}`, nil)
	assert.Equal(t, http.StatusBadRequest, shortPassword.Code)
	assert.Contains(t, shortPassword.Body.String(), "at least 6 characters")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	registerTestUser(router)

	w := postJSON(router, "/api/auth/register",
		`{"username":"bob","email":"alice@example.com","password":"secret2"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already exists!")
}

func TestLogin_Success(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	registerTestUser(router)

	w := postJSON(router, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful!")

	me := getWithCookies(router, "/api/auth/me", w.Result().Cookies())
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestLogin_FailuresAnswerIdentically(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	registerTestUser(router)

	wrongPassword := postJSON(router, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, nil)
	unknownEmail := postJSON(router, "/api/auth/login",
		`{"email":"nobody@example.com","password":"secret1"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogout(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	cookies := registerTestUser(router)

	w := postJSON(router, "/api/auth/logout", "", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout successful!")

	// the cleared cookie no longer authenticates
	me := getWithCookies(router, "/api/auth/me", w.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestRequireAuth_ApiGetsJSON(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := getWithCookies(router, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized. Please login.")
}

func TestRequireAuth_PageRedirectsToLogin(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := getWithCookies(router, "/tutorials", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login")
}

func TestRequireAuth_AttachesSessionIdentity(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	cookies := registerTestUser(router)

	w := getWithCookies(router, "/tutorials", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequireGuest_RedirectsAuthenticated(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)
	cookies := registerTestUser(router)

	w := getWithCookies(router, "/login", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/tutorials")
}

func TestLoginPage_AnonymousRenders(t *testing.T) {
	db := setupTestDB()
	router := setupTestRouter(db)

	w := getWithCookies(router, "/login", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
