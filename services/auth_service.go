package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dietSurvivalWeb/internal/types/user"
	"dietSurvivalWeb/internal/validation"
)

var (
	ErrMissingCredentials = errors.New("이메일과 비밀번호를 입력해주세요.")
	ErrInvalidEmail       = errors.New("유효한 이메일 주소를 입력해주세요.")
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다.")
	ErrMissingCode        = errors.New("인증 코드가 없습니다.")
)

type mockAccount struct {
	user         user.SessionUser
	passwordHash []byte
}

var mockAccounts = []mockAccount{
	{
		user:         user.SessionUser{ID: "1", Email: "test@example.com", Name: "테스트 사용자", Role: user.RoleUser},
		passwordHash: mustHash("password123"),
	},
	{
		user:         user.SessionUser{ID: "2", Email: "admin@example.com", Name: "관리자", Role: user.RoleAdmin},
		passwordHash: mustHash("admin1234"),
	},
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("hash mock password: %v", err))
	}
	return hash
}

var kakaoMockUser = user.SessionUser{
	ID:           "mock_kakao_user_id",
	Email:        "kakao@example.com",
	Name:         "카카오 사용자",
	ProfileImage: "https://via.placeholder.com/100x100",
	Provider:     "kakao",
}

type LoginResult struct {
	Session *Session
	Token   string
}

// AuthService signs users in against the fixed mock accounts and keeps
// their sessions.
type AuthService struct {
	store  SessionStore
	tokens *TokenMinter
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(store SessionStore, tokens *TokenMinter, ttl time.Duration) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if !validation.IsEmail(email) {
		return nil, ErrInvalidEmail
	}

	for _, acct := range mockAccounts {
		if acct.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)) == nil {
			return s.startSession(ctx, acct.user)
		}
		break
	}

	log.Printf("Auth: rejected login for %s", email)
	return nil, ErrInvalidCredentials
}

// KakaoLogin accepts any non-empty authorization code; no exchange with
// Kakao takes place.
func (s *AuthService) KakaoLogin(ctx context.Context, code string) (*LoginResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrMissingCode
	}
	return s.startSession(ctx, kakaoMockUser)
}

func (s *AuthService) startSession(ctx context.Context, u user.SessionUser) (*LoginResult, error) {
	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		User:      u,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	token, err := s.tokens.Mint(u, sess.ID, now, sess.ExpiresAt)
	if err != nil {
		return nil, err
	}
	sess.Token = token

	if err := s.store.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("Auth: session started for %s (%s)", u.Email, providerName(u))
	return &LoginResult{Session: sess, Token: token}, nil
}

// Lookup resolves a bearer token to its live session.
func (s *AuthService) Lookup(ctx context.Context, token string) (*Session, error) {
	id, err := s.tokens.SessionID(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Token != token {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Logout ends the session behind token. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	id, err := s.tokens.SessionID(token)
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

func providerName(u user.SessionUser) string {
	if u.Provider == "" {
		return "password"
	}
	return u.Provider
}
