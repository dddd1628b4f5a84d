package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/campus-events-api/internal/apperr"
	"github.com/gdg-garage/campus-events-api/internal/config"
	"github.com/gdg-garage/campus-events-api/internal/models"
	"github.com/gdg-garage/campus-events-api/internal/navigation"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	CookieName    = "auth_token"
	TokenDuration = 24 * time.Hour
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// AuthInput carries the session cookie of protected operations.
type AuthInput struct {
	Cookie string `header:"Cookie" doc:"Session cookie (auth_token)"`
}

// LoginForm is what the login screen submits. No identity provider is
// consulted: the user is created from the form as is.
type LoginForm struct {
	Name       string          `json:"name" minLength:"1" doc:"Full name"`
	RollNumber string          `json:"roll_number,omitempty" doc:"College roll number"`
	Year       string          `json:"year,omitempty" doc:"Year of study"`
	Branch     string          `json:"branch,omitempty" doc:"Branch of study"`
	Type       models.UserType `json:"type" enum:"student,organizer" doc:"Account type"`
	ClubID     string          `json:"club_id,omitempty" doc:"Club the organizer acts for (organizers only)"`
}

type LoginRequest struct {
	Body LoginForm
}

type UserBody struct {
	models.User
	Home navigation.View `json:"home" doc:"First view to show this user"`
}

type LoginResponse struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      UserBody
}

// Login fabricates and stores a user from form.
func (h *AuthHandler) Login(ctx context.Context, form LoginForm) (models.User, error) {
	user := models.User{
		Name:       strings.TrimSpace(form.Name),
		RollNumber: strings.TrimSpace(form.RollNumber),
		Year:       strings.TrimSpace(form.Year),
		Branch:     strings.TrimSpace(form.Branch),
		Type:       form.Type,
	}
	if user.Name == "" {
		return models.User{}, apperr.Validation("name", "is required")
	}
	if !user.Type.Valid() {
		return models.User{}, apperr.Validation("type", "must be student or organizer")
	}
	if user.IsOrganizer() {
		user.ClubID = strings.TrimSpace(form.ClubID)
		if user.ClubID == "" {
			return models.User{}, apperr.Validation("club_id", "is required for organizers")
		}
	}

	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	user, err := h.Login(ctx, input.Body)
	if err != nil {
		return nil, huma.NewError(apperr.Status(err), err.Error())
	}

	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginResponse{}
	res.SetCookie = sessionCookie(token)
	res.Body = UserBody{User: user, Home: navigation.Home(user.Type)}
	return res, nil
}

type MeResponse struct {
	Body UserBody
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *AuthInput) (*MeResponse, error) {
	user, err := h.CurrentUser(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	return &MeResponse{Body: UserBody{User: user, Home: navigation.Home(user.Type)}}, nil
}

func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize resolves the user id of a request, from the session middleware
// when it ran, otherwise from the raw Cookie header.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) (uint, error) {
	if userID, ok := ctx.Value(UserIDKey).(uint); ok && userID != 0 {
		return userID, nil
	}

	cookies, err := http.ParseCookie(cookieHeader)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized: No token found")
	}
	for _, c := range cookies {
		if c.Name != CookieName {
			continue
		}
		claims, err := h.parseToken(c.Value)
		if err != nil {
			return 0, huma.Error401Unauthorized("Unauthorized: Invalid token")
		}
		return claims.userID, nil
	}
	return 0, huma.Error401Unauthorized("Unauthorized: No token found")
}

// CurrentUser is Authorize followed by loading the user.
func (h *AuthHandler) CurrentUser(ctx context.Context, cookieHeader string) (models.User, error) {
	userID, err := h.Authorize(ctx, cookieHeader)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = h.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, huma.Error401Unauthorized("Unauthorized: Unknown user")
	}
	if err != nil {
		return models.User{}, huma.Error500InternalServerError("Database error")
	}
	return user, nil
}

type tokenClaims struct {
	userID    uint
	expiresAt time.Time
}

func (h *AuthHandler) parseToken(tokenString string) (tokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return tokenClaims{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return tokenClaims{}, errors.New("invalid token claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat <= 0 {
		return tokenClaims{}, errors.New("invalid token claims")
	}

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}
	return tokenClaims{userID: uint(userIDFloat), expiresAt: expiresAt}, nil
}

func sessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
	}
}
