package auth

import (
	"errors"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tutorialhub/store"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthModule owns registration, login and logout plus the interactive
// entry pages.
type AuthModule struct {
	db    *gorm.DB
	users *store.UserRepo
}

func NewAuthModule(db *gorm.DB, users *store.UserRepo) *AuthModule {
	return &AuthModule{db: db, users: users}
}

func (a *AuthModule) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/auth/register", a.register)
	router.POST("/api/auth/login", a.login)
	router.POST("/api/auth/logout", RequireAuth, a.logout)
	router.GET("/api/auth/me", RequireAuth, a.currentUser)

	router.GET("/login", RequireGuest, a.loginPage)
	router.GET("/register", RequireGuest, a.registerPage)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthModule) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body!"})
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, email, and password are required!"})
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format!"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters!"})
		return
	}

	user, err := a.users.Create(req.Username, req.Email, req.Password)
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, gin.H{"message": dup.Field + " already exists!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while registering user."})
		return
	}

	// registration auto-authenticates; the session must be durable
	// before the success response goes out
	if err := SignIn(c, user); err != nil {
		log.Printf("Session save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully!",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthModule) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body!"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required!"})
		return
	}

	user, err := a.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUnauthorized) {
			// unknown email and wrong password answer identically
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while logging in."})
		return
	}

	if err := SignIn(c, user); err != nil {
		log.Printf("Session save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful!",
		"user":    user,
	})
}

func (a *AuthModule) logout(c *gin.Context) {
	if err := SignOut(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error occurred while logging out."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful!"})
}

func (a *AuthModule) currentUser(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := a.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving user."})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a *AuthModule) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auth_login.html", gin.H{})
}

func (a *AuthModule) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auth_register.html", gin.H{})
}
