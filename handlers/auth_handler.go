package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"dietSurvivalWeb/internal/types/user"
	"dietSurvivalWeb/internal/validation"
	"dietSurvivalWeb/middleware"
	"dietSurvivalWeb/services"
)

const (
	msgServerError      = "서버 오류가 발생했습니다."
	msgKakaoServerError = "카카오 로그인 처리 중 오류가 발생했습니다."

	msgKakaoDenied    = "카카오 로그인에 실패했습니다."
	msgKakaoNoCode    = "인증 코드를 받지 못했습니다."
	msgKakaoSuccess   = "로그인 성공! 대시보드로 이동합니다."
	msgKakaoPageError = "로그인 처리 중 오류가 발생했습니다."
)

type AuthHandler struct {
	auth     *services.AuthService
	renderer *Renderer
	// secure marks the auth cookie Secure (production only).
	secure   bool
	kakaoURL string
}

func NewAuthHandler(auth *services.AuthService, renderer *Renderer, secure bool, kakaoURL string) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		renderer: renderer,
		secure:   secure,
		kakaoURL: kakaoURL,
	}
}

type loginResponse struct {
	Message string           `json:"message"`
	User    user.SessionUser `json:"user"`
	Token   string           `json:"token"`
}

// loginStatus maps a login failure to its HTTP status. ok is false for
// errors that are not the user's fault.
func loginStatus(err error) (code int, ok bool) {
	switch {
	case errors.Is(err, services.ErrMissingCredentials),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrMissingCode):
		return http.StatusBadRequest, true
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, true
	default:
		return http.StatusInternalServerError, false
	}
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.auth.TTL().Seconds()),
	})
}

func (h *AuthHandler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AuthCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// APILogin is the mock email/password endpoint.
func (h *AuthHandler) APILogin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Login API: invalid request body: %v", err)
		respondWithMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	res, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		code, ok := loginStatus(err)
		if !ok {
			log.Printf("Login API: %v", err)
			respondWithMessage(w, code, msgServerError)
			return
		}
		respondWithMessage(w, code, err.Error())
		return
	}

	h.setAuthCookie(w, res.Token)
	respondWithJSON(w, http.StatusOK, loginResponse{
		Message: "로그인 성공",
		User:    res.Session.User,
		Token:   res.Token,
	})
}

// APIKakaoCallback exchanges an authorization code for a mock kakao session.
func (h *AuthHandler) APIKakaoCallback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Kakao API: invalid request body: %v", err)
		respondWithMessage(w, http.StatusInternalServerError, msgKakaoServerError)
		return
	}

	res, err := h.auth.KakaoLogin(ctx, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrMissingCode) {
			respondWithMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Kakao API: %v", err)
		respondWithMessage(w, http.StatusInternalServerError, msgKakaoServerError)
		return
	}

	h.setAuthCookie(w, res.Token)
	respondWithJSON(w, http.StatusOK, loginResponse{
		Message: "카카오 로그인 성공",
		User:    res.Session.User,
		Token:   res.Token,
	})
}

type LoginPage struct {
	Email   string            `json:"email"`
	Errors  validation.Errors `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, r, http.StatusOK, "login", Page{
		Title: "로그인",
		Data:  LoginPage{},
	})
}

// Login handles the login form. Field errors and login failures re-render
// the form in place; success redirects to the dashboard.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := r.ParseForm(); err != nil {
		h.renderer.Error(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}

	form := validation.LoginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
	page := LoginPage{Email: form.Email}

	if errs := validation.Check(form); errs != nil {
		page.Errors = errs
		h.renderer.Render(w, r, http.StatusUnprocessableEntity, "login", Page{Title: "로그인", Data: page})
		return
	}

	res, err := h.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		code, ok := loginStatus(err)
		page.Message = err.Error()
		if !ok {
			log.Printf("Login: %v", err)
			page.Message = msgServerError
		}
		h.renderer.Render(w, r, code, "login", Page{Title: "로그인", Data: page})
		return
	}

	log.Printf("Login: %s signed in", res.Session.User.Email)
	h.setAuthCookie(w, res.Token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// KakaoStart sends the browser to kakao's authorization page.
func (h *AuthHandler) KakaoStart(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.kakaoURL, http.StatusFound)
}

type KakaoCallbackPage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// KakaoCallback is where kakao redirects back to with ?code or ?error.
func (h *AuthHandler) KakaoCallback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	fail := func(message string) {
		h.renderer.Render(w, r, http.StatusOK, "kakao_callback", Page{
			Title:          "카카오 로그인",
			RefreshURL:     "/login",
			RefreshSeconds: 2,
			Data:           KakaoCallbackPage{Status: "error", Message: message},
		})
	}

	if q.Get("error") != "" {
		log.Printf("Kakao callback: provider returned %q", q.Get("error"))
		fail(msgKakaoDenied)
		return
	}
	code := q.Get("code")
	if code == "" {
		fail(msgKakaoNoCode)
		return
	}

	res, err := h.auth.KakaoLogin(ctx, code)
	if err != nil {
		log.Printf("Kakao callback: %v", err)
		fail(msgKakaoPageError)
		return
	}

	h.setAuthCookie(w, res.Token)
	h.renderer.Render(w, r, http.StatusOK, "kakao_callback", Page{
		Title:          "카카오 로그인",
		RefreshURL:     "/dashboard",
		RefreshSeconds: 1,
		Data:           KakaoCallbackPage{Status: "success", Message: msgKakaoSuccess},
	})
}

// Logout drops the session and the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if token := middleware.TokenFromRequest(r); token != "" {
		if err := h.auth.Logout(ctx, token); err != nil {
			log.Printf("Logout: %v", err)
		}
	}
	h.clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
