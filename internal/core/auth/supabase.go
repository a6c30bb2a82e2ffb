package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aquarium-tank-api/internal/domain"
)

// Identity is an account as the identity provider knows it.
type Identity struct {
	ID       string
	Email    string
	Fullname *string
}

type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// ProviderError carries the provider's own message; it unwraps to one of
// the domain auth sentinels.
type ProviderError struct {
	Status  int
	Message string
	kind    error
}

func (e *ProviderError) Error() string { return e.Message }
func (e *ProviderError) Unwrap() error { return e.kind }

const defaultExpiresIn = 3600

type SupabaseConfig struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

// Supabase talks to the GoTrue REST API under <url>/auth/v1.
type Supabase struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	verifier   TokenVerifier
}

// NewSupabase builds the client. With a nil verifier every token check is a
// remote GET /user.
func NewSupabase(cfg SupabaseConfig, verifier TokenVerifier) *Supabase {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Supabase{
		baseURL:    strings.TrimRight(cfg.URL, "/") + "/auth/v1",
		anonKey:    cfg.AnonKey,
		httpClient: &http.Client{Timeout: timeout},
		verifier:   verifier,
	}
}

type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (u gotrueUser) identity() Identity {
	id := Identity{ID: u.ID, Email: u.Email}
	if v, ok := u.UserMetadata["fullname"].(string); ok && v != "" {
		id.Fullname = &v
	}
	return id
}

type gotrueSession struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int         `json:"expires_in"`
	User         *gotrueUser `json:"user"`
}

func (s gotrueSession) split() (Identity, Session) {
	exp := s.ExpiresIn
	if exp == 0 {
		exp = defaultExpiresIn
	}
	return s.User.identity(), Session{AccessToken: s.AccessToken, RefreshToken: s.RefreshToken, ExpiresIn: exp}
}

// gotrueError covers the error shapes GoTrue has used across versions.
type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e gotrueError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// SignUp creates the account and returns its first session. Projects that
// require email confirmation return no session; that is reported as a failure.
func (s *Supabase) SignUp(ctx context.Context, email, password string, fullname *string) (Identity, Session, error) {
	body := map[string]any{"email": email, "password": password}
	if fullname != nil {
		body["data"] = map[string]any{"fullname": *fullname}
	}
	var out gotrueSession
	if err := s.do(ctx, http.MethodPost, "/signup", body, "", &out, domain.ErrAuthentication, "Registration failed"); err != nil {
		return Identity{}, Session{}, err
	}
	if out.AccessToken == "" || out.User == nil {
		return Identity{}, Session{}, &ProviderError{Status: http.StatusOK, Message: "Registration failed", kind: domain.ErrAuthentication}
	}
	id, sess := out.split()
	return id, sess, nil
}

func (s *Supabase) SignIn(ctx context.Context, email, password string) (Identity, Session, error) {
	body := map[string]any{"email": email, "password": password}
	var out gotrueSession
	if err := s.do(ctx, http.MethodPost, "/token?grant_type=password", body, "", &out, domain.ErrAuthentication, "Invalid credentials"); err != nil {
		return Identity{}, Session{}, err
	}
	if out.AccessToken == "" || out.User == nil {
		return Identity{}, Session{}, &ProviderError{Status: http.StatusOK, Message: "Invalid credentials", kind: domain.ErrAuthentication}
	}
	id, sess := out.split()
	return id, sess, nil
}

// VerifyToken checks the token locally when a verifier is configured and
// otherwise asks the provider who the bearer is.
func (s *Supabase) VerifyToken(ctx context.Context, token string) (Identity, error) {
	if s.verifier != nil {
		c, err := s.verifier.Verify(ctx, token)
		if err != nil {
			return Identity{}, err
		}
		return c.Identity(), nil
	}
	var u gotrueUser
	if err := s.do(ctx, http.MethodGet, "/user", nil, token, &u, domain.ErrUnauthorized, "Invalid token"); err != nil {
		return Identity{}, err
	}
	if u.ID == "" {
		return Identity{}, &ProviderError{Status: http.StatusOK, Message: "Invalid token", kind: domain.ErrUnauthorized}
	}
	return u.identity(), nil
}

func (s *Supabase) do(ctx context.Context, method, path string, body any, bearer string, out any, kind error, fallback string) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if bearer == "" {
		bearer = s.anonKey
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var ge gotrueError
		_ = json.NewDecoder(resp.Body).Decode(&ge)
		msg := ge.text()
		if msg == "" {
			msg = fallback
		}
		if kind == domain.ErrUnauthorized && strings.Contains(strings.ToLower(msg), "expired") {
			return &ProviderError{Status: resp.StatusCode, Message: "Token has expired", kind: domain.ErrTokenExpired}
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("supabase %s %s: status %d: %s", method, path, resp.StatusCode, msg)
		}
		return &ProviderError{Status: resp.StatusCode, Message: msg, kind: kind}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
