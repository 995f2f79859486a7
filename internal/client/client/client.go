package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{http: c}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) LoggedIn() bool {
	return c.Token() != ""
}

func (c *Client) request(ctx context.Context, protected bool) (*resty.Request, error) {
	r := c.http.R().SetContext(ctx).SetError(&errorResponse{})
	if protected {
		token := c.Token()
		if token == "" {
			return nil, ErrNotLoggedIn
		}
		r.SetHeader(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}
	return r, nil
}

func (c *Client) do(r *resty.Request, method, path string) error {
	resp, err := r.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode()}
		if e, ok := resp.Error().(*errorResponse); ok {
			apiErr.Message = e.Message
		}
		return apiErr
	}
	return nil
}

// Register creates an account and keeps the returned session token.
func (c *Client) Register(ctx context.Context, fullName, email, password string) (*User, error) {
	var out authResponse
	r, _ := c.request(ctx, false)
	r.SetBody(map[string]string{"fullName": fullName, "email": email, "password": password}).SetResult(&out)

	if err := c.do(r, http.MethodPost, "/api/auth/register"); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out.User, nil
}

// Login authenticates and keeps the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out authResponse
	r, _ := c.request(ctx, false)
	r.SetBody(map[string]string{"email": email, "password": password}).SetResult(&out)

	if err := c.do(r, http.MethodPost, "/api/auth/login"); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out.User, nil
}

// Logout forgets the token locally. The server keeps no sessions.
func (c *Client) Logout() {
	c.SetToken("")
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	r, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	var out userResponse
	r.SetResult(&out)

	if err := c.do(r, http.MethodGet, "/api/auth/profile"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*User, error) {
	r, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	var out userResponse
	r.SetBody(upd).SetResult(&out)

	if err := c.do(r, http.MethodPut, "/api/auth/profile"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// DeleteProfile removes the account and drops the token.
func (c *Client) DeleteProfile(ctx context.Context) error {
	r, err := c.request(ctx, true)
	if err != nil {
		return err
	}
	if err := c.do(r, http.MethodDelete, "/api/auth/profile"); err != nil {
		return err
	}
	c.Logout()
	return nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	r, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	var out Stats
	r.SetResult(&out)

	if err := c.do(r, http.MethodGet, "/api/dashboard/stats"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Activities(ctx context.Context) ([]Activity, error) {
	r, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	var out activityListResponse
	r.SetResult(&out)

	if err := c.do(r, http.MethodGet, "/api/dashboard/activity"); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CreateActivity(ctx context.Context, in ActivityInput) (*Activity, error) {
	r, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	var out activityResponse
	r.SetBody(in).SetResult(&out)

	if err := c.do(r, http.MethodPost, "/api/dashboard/activity"); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateActivity(ctx context.Context, id int64, in ActivityInput) (*Activity, error) {
	r, err := c.request(ctx, true)
	if err != nil {
		return nil, err
	}
	var out activityUpdateResponse
	r.SetBody(in).SetResult(&out)

	if err := c.do(r, http.MethodPut, "/api/dashboard/activity/"+strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}
	return &out.UpdatedData, nil
}

func (c *Client) DeleteActivity(ctx context.Context, id int64) error {
	r, err := c.request(ctx, true)
	if err != nil {
		return err
	}
	return c.do(r, http.MethodDelete, "/api/dashboard/activity/"+strconv.FormatInt(id, 10))
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	r, _ := c.request(ctx, false)
	var out Health
	r.SetResult(&out)

	if err := c.do(r, http.MethodGet, "/api/health"); err != nil {
		return nil, err
	}
	return &out, nil
}
