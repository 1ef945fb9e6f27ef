/* JWT helpers for operator sessions and single-use form submission tokens */

package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	PurposeAdmin      = "admin_session"
	PurposeSubmission = "form_submission"

	SubmissionTokenTTL = 30 * time.Minute

	issuer = "AlzheimerRiskPredictor-api"
)

var (
	ErrInvalidPurpose = errors.New("token was issued for a different purpose")
	ErrTokenReused    = errors.New("submission token has already been used")
)

// Claims carries the operator name for admin sessions; submission tokens leave it empty.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type Manager struct {
	key    []byte
	expiry time.Duration
	replay *ReplayGuard
}

// NewManager signs tokens with secret. An empty secret gets a random per-process
// key, so tokens do not survive a restart.
func NewManager(secret string, expiry time.Duration) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("auth.NewManager(): failed to generate signing key: %v", err))
		}
		log.Warn().Msg("auth.NewManager(): JWT_SECRET_KEY is not set, using a random key")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Manager{
		key:    key,
		expiry: expiry,
		replay: NewReplayGuard(SubmissionTokenTTL),
	}
}

// GenerateToken issues an operator session token.
func (m *Manager) GenerateToken(username string) (string, error) {
	return m.sign(username, PurposeAdmin, m.expiry)
}

// ValidateToken parses an operator session token.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	return m.parse(tokenString, PurposeAdmin)
}

// GenerateSubmissionToken issues a token that authorizes one form submission.
func (m *Manager) GenerateSubmissionToken() (string, error) {
	return m.sign("", PurposeSubmission, SubmissionTokenTTL)
}

// ConsumeSubmissionToken validates a submission token and marks it used.
// A second call with the same token returns ErrTokenReused.
func (m *Manager) ConsumeSubmissionToken(tokenString string) error {
	claims, err := m.parse(tokenString, PurposeSubmission)
	if err != nil {
		return err
	}
	if !m.replay.Consume(claims.ID) {
		return ErrTokenReused
	}
	return nil
}

func (m *Manager) sign(username, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   purpose,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

func (m *Manager) parse(tokenString, purpose string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Subject != purpose {
		return nil, ErrInvalidPurpose
	}
	return claims, nil
}
