package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amal-dz/amal/internal/auth"
	"github.com/amal-dz/amal/internal/httpapi/middleware"
	"github.com/amal-dz/amal/internal/models"
)

const (
	minPasswordLen = 6

	forgotPasswordMsg = "If the email exists, a reset link has been sent"
)

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// authFail is a logical auth failure: HTTP 200, success false. The
// client folds the error string into its uniform error type.
func authFail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "error": msg})
}

func serverError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}

func userJSON(u *models.User) gin.H {
	return gin.H{"id": u.ID, "email": u.Email, "name": u.Name}
}

func (h *Handler) signTokenPair(userID string) (access, refresh string, err error) {
	access, err = auth.SignAccessToken(userID, h.Cfg.JWTSecret)
	if err != nil {
		return "", "", err
	}
	refresh, err = auth.SignRefreshToken(userID, h.Cfg.JWTSecret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		authFail(c, "Invalid email address")
		return
	}
	if len(req.Password) < minPasswordLen {
		authFail(c, "Password must be at least 6 characters")
		return
	}

	var cnt int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		serverError(c)
		return
	}
	if cnt > 0 {
		authFail(c, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		serverError(c)
		return
	}

	id, err := models.NewUserID()
	if err != nil {
		serverError(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user := models.User{ID: id, Email: email, Name: name, PasswordHash: hash}
	if err := h.DB.Create(&user).Error; err != nil {
		// unique index race on email
		authFail(c, "Email already registered")
		return
	}

	access, refresh, err := h.signTokenPair(user.ID)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"user":          userJSON(&user),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			authFail(c, "Invalid email or password")
			return
		}
		serverError(c)
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		authFail(c, "Invalid email or password")
		return
	}

	access, refresh, err := h.signTokenPair(user.ID)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"user":          userJSON(&user),
		"access_token":  access,
		"refresh_token": refresh,
	})
}

type forgotPasswordReq struct {
	Email string `json:"email"`
}

// ForgotPassword answers with the same message whether or not the
// email is registered. The reset token leaves the server only in dev
// mode (or, in production, via the mail channel once one exists).
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	resp := gin.H{"success": true, "message": forgotPasswordMsg}

	var user models.User
	err := h.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			serverError(c)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		serverError(c)
		return
	}
	token := hex.EncodeToString(b)

	if err := h.Redis.SetResetToken(c.Request.Context(), token, user.Email); err != nil {
		serverError(c)
		return
	}

	if h.Cfg.DevMode {
		resp["reset_token"] = token
	}
	c.JSON(http.StatusOK, resp)
}

type resetPasswordReq struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}
	if len(req.NewPassword) < minPasswordLen {
		authFail(c, "Password must be at least 6 characters")
		return
	}

	email, ok, err := h.Redis.ConsumeResetToken(c.Request.Context(), req.Token)
	if err != nil {
		serverError(c)
		return
	}
	if !ok {
		authFail(c, "Invalid or expired reset token")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		serverError(c)
		return
	}
	if err := h.DB.Model(&models.User{}).Where("email = ?", email).
		Update("password_hash", hash).Error; err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh rotates the token pair. The presented refresh token is
// denylisted for its remaining lifetime so it cannot be replayed.
func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	claims, err := auth.ParseToken(req.RefreshToken, h.Cfg.JWTSecret, auth.TypeRefresh)
	if err != nil {
		authFail(c, "Invalid refresh token")
		return
	}

	denied, err := h.Redis.IsRefreshTokenDenied(c.Request.Context(), req.RefreshToken)
	if err != nil {
		serverError(c)
		return
	}
	if denied {
		authFail(c, "Invalid refresh token")
		return
	}

	access, refresh, err := h.signTokenPair(claims.Subject)
	if err != nil {
		serverError(c)
		return
	}

	if err := h.Redis.DenyRefreshToken(c.Request.Context(), req.RefreshToken, time.Until(claims.ExpiresAt.Time)); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

type logoutReq struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout revokes the refresh token. Unknown or already-expired tokens
// are fine; the client is signing out either way.
func (h *Handler) Logout(c *gin.Context) {
	var req logoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	if claims, err := auth.ParseToken(req.RefreshToken, h.Cfg.JWTSecret, auth.TypeRefresh); err == nil {
		if err := h.Redis.DenyRefreshToken(c.Request.Context(), req.RefreshToken, time.Until(claims.ExpiresAt.Time)); err != nil {
			serverError(c)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "User not found"})
			return
		}
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, userJSON(&user))
}
