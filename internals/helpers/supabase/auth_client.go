// Package supabase adalah client tipis untuk Supabase Auth (GoTrue) REST API.
// Data tetap lewat GORM ke Postgres; yang di sini hanya urusan akun auth.
package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ErrInvalidCredentials: email/password ditolak Supabase Auth.
var ErrInvalidCredentials = errors.New("invalid login credentials")

type User struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata datatypes.JSONMap `json:"user_metadata,omitempty"`
	InvitedAt    *time.Time        `json:"invited_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        User   `json:"user"`
}

// APIError = body error dari GoTrue. Versi lama pakai error/error_description,
// versi baru pakai code/error_code/msg.
type APIError struct {
	Status           int    `json:"-"`
	Code             string `json:"error_code"`
	Err              string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e *APIError) Error() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Err} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fmt.Sprintf("supabase auth: unexpected status %d", e.Status)
}

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewClient: key = service role key (wajib untuk invite & admin delete).
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/auth/v1",
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// SignInWithPassword = grant_type=password.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var out Session
	err := c.do(ctx, fiber.MethodPost, "/token", url.Values{"grant_type": {"password"}}, c.apiKey,
		fiber.Map{"email": email, "password": password}, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Error())
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, fiber.MethodPost, "/logout", nil, accessToken, nil, nil)
}

// VerifyPassword login lalu langsung logout; yang dibutuhkan cuma cek password.
func (c *Client) VerifyPassword(ctx context.Context, email, password string) error {
	session, err := c.SignInWithPassword(ctx, email, password)
	if err != nil {
		return err
	}
	if session.AccessToken != "" {
		// sesi sudah tidak dipakai, gagal logout tidak membatalkan verifikasi
		_ = c.SignOut(ctx, session.AccessToken)
	}
	return nil
}

// InviteUserByEmail mengirim email undangan; metadata ikut tersimpan di user_metadata.
func (c *Client) InviteUserByEmail(ctx context.Context, email string, data datatypes.JSONMap, redirectTo string) (*User, error) {
	var query url.Values
	if redirectTo != "" {
		query = url.Values{"redirect_to": {redirectTo}}
	}

	var out User
	if err := c.do(ctx, fiber.MethodPost, "/invite", query, c.apiKey,
		fiber.Map{"email": email, "data": data}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, errors.New("supabase auth: invite response has no user id")
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, fiber.MethodDelete, "/admin/users/"+url.PathEscape(userID), nil, c.apiKey, nil, nil)
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < c.timeout {
			return left
		}
	}
	return c.timeout
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, bearer string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	a := fiber.AcquireAgent()
	a.JSONEncoder(sonic.Marshal)
	a.JSONDecoder(sonic.Unmarshal)

	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	if body != nil {
		a.JSON(body)
	}
	a.Timeout(c.timeoutFor(ctx))

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("supabase auth: %w", err)
	}

	// Bytes() sekaligus release agent
	status, resp, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("supabase auth: %w", errors.Join(errs...))
	}

	if status < 200 || status >= 300 {
		apiErr := &APIError{Status: status}
		_ = sonic.Unmarshal(resp, apiErr)
		return apiErr
	}

	if out != nil && len(resp) > 0 {
		if err := sonic.Unmarshal(resp, out); err != nil {
			return fmt.Errorf("supabase auth: decode response: %w", err)
		}
	}
	return nil
}
