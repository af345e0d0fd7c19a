package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/juanedi/fifatum/config"
	"github.com/juanedi/fifatum/internal/middleware"
	"github.com/juanedi/fifatum/internal/user"
	"github.com/juanedi/fifatum/pkg/responses"
	"github.com/juanedi/fifatum/pkg/token"
	"github.com/juanedi/fifatum/utils"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(userID uint) (string, string, error) {
	accessToken, err := token.GenerateJWT(userID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(userID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    userID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// @Summary      Register a new user
// @Description  Create a new user with name, email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} AuthResponse "User registered, returns tokens and user info"
// @Failure      400   {object} responses.ValidationErrorResponse "Validation error"
// @Failure      409   {object} responses.ErrorResponse "User with this email already exists"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(c, err)
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := ac.repo.GetUserByEmail(email); !errors.Is(err, gorm.ErrRecordNotFound) {
		if err != nil {
			log.Printf("auth: register lookup failed: %v", err)
			responses.InternalErrorJSON(c)
			return
		}
		responses.ConflictJSON(c, "User with this email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("auth: password hashing failed: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	newUser := &user.User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
	}
	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("auth: user creation failed: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newUser.ID)
	if err != nil {
		log.Printf("auth: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         newUser.APIJSON(),
	})
}

// @Summary      Login user
// @Description  Authenticate user with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} AuthResponse "Login successful, returns tokens and user info"
// @Failure      400   {object} responses.ValidationErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Failure      500   {object} responses.ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(c, err)
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.ErrorJSON(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("auth: login lookup failed: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		responses.ErrorJSON(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(foundUser.ID)
	if err != nil {
		log.Printf("auth: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         foundUser.APIJSON(),
	})
}

// @Summary      Refresh Access Token
// @Description  Refreshes the access token using a valid refresh token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh Token Request"
// @Success      200 {object} map[string]string "Returns a new access token"
// @Failure      400 {object} responses.ValidationErrorResponse "Invalid input"
// @Failure      401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Failure      500 {object} responses.ErrorResponse "Token generation failed"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(c, err)
		return
	}

	rt, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.ErrorJSON(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	newAccessToken, err := token.GenerateJWT(rt.UserID, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		log.Printf("auth: access token generation failed: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": newAccessToken})
}

// @Summary      Get current user
// @Description  Returns the authenticated user's public record.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} user.UserJSON
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Router       /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.UnauthorizedJSON(c)
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		log.Printf("auth: me lookup failed for user %d: %v", userID, err)
		responses.InternalErrorJSON(c)
		return
	}

	c.JSON(http.StatusOK, u.APIJSON())
}

// @Summary      Logout
// @Description  Revokes the presented refresh token.
// @Tags         Auth
// @Accept       json
// @Success      204 "Logged out"
// @Failure      400 {object} responses.ValidationErrorResponse "Invalid input"
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorJSON(c, err)
		return
	}

	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		log.Printf("auth: logout failed: %v", err)
		responses.InternalErrorJSON(c)
		return
	}

	c.Status(http.StatusNoContent)
}
