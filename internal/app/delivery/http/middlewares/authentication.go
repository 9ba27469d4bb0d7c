package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/exceptions"
	"sirsak-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

var (
	errBearerMissing     = errors.New("bearer token missing")
	errNoSigningSecret   = errors.New("no signing secret configured")
	errUnexpectedSigning = errors.New("unexpected signing method")
	errTokenNotValid     = errors.New("token not valid")
	errNoUserID          = errors.New("token carries no user id")
	errNotAdmin          = errors.New("admin role required")
)

// Authenticate verifies the bearer token against the reservation API's
// signing secret and puts a models.Session in the request context. Builders
// are keyed by the session's user, so an unverified token is never trusted.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		session, err := sessionFromRequest(r, m.InternalConfig.SirsakAPI.JWTSecret)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := models.ContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := models.SessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errBearerMissing))
			return
		}
		if !session.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(errNotAdmin))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionFromRequest(r *http.Request, secret string) (*models.Session, error) {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return nil, exceptions.ErrTokenMissing(errBearerMissing)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
	if token == "" {
		return nil, exceptions.ErrTokenMissing(errBearerMissing)
	}

	claims, err := parseToken(token, secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	userID := claimString(claims, constvars.JWTClaimUserID)
	if userID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(errNoUserID)
	}

	role := claimString(claims, constvars.JWTClaimRole)
	if role != constvars.SirsakRoleAdmin {
		role = constvars.SirsakRoleUser
	}

	session := &models.Session{
		UserID:   userID,
		Username: claimString(claims, constvars.JWTClaimUsername),
		Role:     role,
		Token:    token,
	}
	if exp, ok := claims[constvars.JWTClaimExpiry].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return session, nil
}

// parseToken checks the HMAC signature and the time based claims.
func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, errNoSigningSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", errUnexpectedSigning, token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errTokenNotValid
	}
	return claims, nil
}

// claimString accepts string and numeric claims; JSON numbers decode as float64.
func claimString(claims jwt.MapClaims, key string) string {
	switch value := claims[key].(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}
