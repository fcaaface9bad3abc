package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
)

// ListOptions are the standard query parameters for list endpoints
type ListOptions struct {
	Search string
	Limit  int
	Offset int
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	return q
}

// authData is the payload of successful auth responses
type authData struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (c *Client) decodeAuth(raw []byte) (*authData, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}
	var data authData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("decode auth data: %w", err)
		}
	}
	return &data, nil
}

// Login authenticates and replaces the stored session on success
func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	raw, err := c.do(ctx, "POST", "/api/auth/login", nil,
		map[string]string{"email": email, "password": password}, false)
	if err != nil {
		return nil, err
	}

	data, err := c.decodeAuth(raw)
	if err != nil {
		return nil, err
	}
	if data.Token == "" || data.User == nil {
		return nil, fmt.Errorf("login response missing token or user")
	}

	c.store.Login(data.Token, data.User)
	return data.User, nil
}

// Register creates an account. The backend sends a verification code by
// email; the session starts after Verify.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	_, err := c.post(ctx, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": password})
	return err
}

// Verify confirms an emailed verification code and logs in
func (c *Client) Verify(ctx context.Context, email, code string) (*model.User, error) {
	raw, err := c.do(ctx, "POST", "/api/auth/verify", nil,
		map[string]string{"email": email, "code": code}, false)
	if err != nil {
		return nil, err
	}

	data, err := c.decodeAuth(raw)
	if err != nil {
		return nil, err
	}
	if data.Token != "" && data.User != nil {
		c.store.Login(data.Token, data.User)
	}
	return data.User, nil
}

// ForgotPassword starts the password reset flow
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.post(ctx, "/api/auth/password/forgot", map[string]string{"email": email})
	return err
}

// ResetPassword completes the password reset flow
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := c.post(ctx, "/api/auth/password/reset",
		map[string]string{"token": token, "password": newPassword})
	return err
}

// Me fetches the current account and refreshes the stored user
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	raw, err := c.do(ctx, "GET", "/api/auth/me", nil, nil, false)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode me response: %w", err)
	}
	var user model.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}

	c.store.ReplaceUser(user)
	return &user, nil
}

// ExtractProfile asks the backend to extract seller data from a
// marketplace profile URL without scoring it
func (c *Client) ExtractProfile(ctx context.Context, profileURL string) (*normalize.Result, error) {
	v, err := c.post(ctx, "/api/sellers/extract-profile", map[string]string{"url": profileURL})
	if err != nil {
		return nil, err
	}
	return c.registry.NormalizeOne(v)
}

// ScoreProfileURL submits a marketplace profile URL for scoring and
// returns the normalized record. Implements worker.Scorer for batch runs.
func (c *Client) ScoreProfileURL(ctx context.Context, profileURL string) (*normalize.Result, error) {
	v, err := c.post(ctx, "/api/sellers/score-by-url", map[string]string{"url": profileURL})
	if err != nil {
		return nil, err
	}
	return c.registry.NormalizeOne(v)
}

// Lookup finds an already-scored seller by marketplace profile URL
func (c *Client) Lookup(ctx context.Context, profileURL string) (*normalize.Result, error) {
	q := url.Values{}
	q.Set("url", profileURL)
	v, err := c.get(ctx, "/api/sellers/lookup", q, true)
	if err != nil {
		return nil, err
	}
	return c.registry.NormalizeOne(v)
}

// Search searches sellers by name, optionally restricted to one platform
func (c *Client) Search(ctx context.Context, name, platform string, opts ListOptions) ([]normalize.Result, error) {
	q := opts.values()
	q.Set("name", name)
	if platform != "" {
		q.Set("platform", platform)
	}
	v, err := c.get(ctx, "/api/sellers/search", q, true)
	if err != nil {
		return nil, err
	}
	return c.registry.Normalize(v)
}

// TopSellers lists the highest-scored sellers
func (c *Client) TopSellers(ctx context.Context, opts ListOptions) ([]normalize.Result, error) {
	v, err := c.get(ctx, "/api/sellers/top", opts.values(), true)
	if err != nil {
		return nil, err
	}
	return c.registry.Normalize(v)
}

// AllSellers lists every known seller, paged
func (c *Client) AllSellers(ctx context.Context, opts ListOptions) ([]normalize.Result, error) {
	v, err := c.get(ctx, "/api/sellers/all", opts.values(), true)
	if err != nil {
		return nil, err
	}
	return c.registry.Normalize(v)
}

// SellerByID fetches one seller with its trust breakdown
func (c *Client) SellerByID(ctx context.Context, id string) (*normalize.Result, error) {
	v, err := c.get(ctx, "/api/sellers/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}
	return c.registry.NormalizeOne(v)
}

// FlagSeller files negative feedback against a seller
func (c *Client) FlagSeller(ctx context.Context, id, reason string) error {
	_, err := c.post(ctx, "/api/sellers/"+url.PathEscape(id)+"/flag",
		map[string]string{"reason": reason})
	return err
}

// EndorseSeller files positive feedback for a seller
func (c *Client) EndorseSeller(ctx context.Context, id, comment string) error {
	_, err := c.post(ctx, "/api/sellers/"+url.PathEscape(id)+"/endorse",
		map[string]string{"comment": comment})
	return err
}

// SellerAnalytics fetches the activity analytics for one seller
func (c *Client) SellerAnalytics(ctx context.Context, id string) (map[string]any, error) {
	v, err := c.get(ctx, "/api/sellers/"+url.PathEscape(id)+"/analytics", nil, false)
	if err != nil {
		return nil, err
	}
	return asObject(v), nil
}

// BecomeSeller upgrades the current account to the seller role
func (c *Client) BecomeSeller(ctx context.Context) error {
	_, err := c.post(ctx, "/api/sellers/become-seller", nil)
	if err != nil {
		return err
	}
	c.store.UpdateUser(model.User{Role: model.RoleSeller})
	return nil
}

// GenerateVerificationCode requests a code the seller places in their
// marketplace bio to prove profile ownership
func (c *Client) GenerateVerificationCode(ctx context.Context) (string, error) {
	v, err := c.post(ctx, "/api/sellers/generate-verification-code", nil)
	if err != nil {
		return "", err
	}
	if m := asObject(v); m != nil {
		if code, ok := m["code"].(string); ok {
			return code, nil
		}
	}
	return "", fmt.Errorf("verification response missing code")
}

// VerifyProfile asks the backend to confirm the verification code is
// visible on the claimed profile
func (c *Client) VerifyProfile(ctx context.Context, profileURL string) (*normalize.Result, error) {
	v, err := c.post(ctx, "/api/sellers/verify-profile", map[string]string{"url": profileURL})
	if err != nil {
		return nil, err
	}
	return c.registry.NormalizeOne(v)
}

// MyProfile fetches the seller profile linked to the current account
func (c *Client) MyProfile(ctx context.Context) (*normalize.Result, error) {
	v, err := c.get(ctx, "/api/sellers/my-profile", nil, false)
	if err != nil {
		return nil, err
	}
	return c.registry.NormalizeOne(v)
}

// UpdateProfile updates account fields and merges them into the session
func (c *Client) UpdateProfile(ctx context.Context, partial model.User) error {
	body := map[string]string{}
	if partial.Name != "" {
		body["name"] = partial.Name
	}
	if partial.Email != "" {
		body["email"] = partial.Email
	}
	if _, err := c.put(ctx, "/api/users/profile", body); err != nil {
		return err
	}
	c.store.UpdateUser(partial)
	return nil
}

// MyFeedback lists flags and endorsements the current user has filed
func (c *Client) MyFeedback(ctx context.Context, opts ListOptions) ([]map[string]any, error) {
	v, err := c.get(ctx, "/api/users/my-feedback", opts.values(), false)
	if err != nil {
		return nil, err
	}
	return asObjects(v), nil
}

// MyInteractions lists sellers the current user has recently viewed
func (c *Client) MyInteractions(ctx context.Context, opts ListOptions) ([]map[string]any, error) {
	v, err := c.get(ctx, "/api/users/my-interactions", opts.values(), false)
	if err != nil {
		return nil, err
	}
	return asObjects(v), nil
}

// RecentActivity lists recent scoring and feedback events
func (c *Client) RecentActivity(ctx context.Context, opts ListOptions) ([]map[string]any, error) {
	v, err := c.get(ctx, "/api/users/recent-activity", opts.values(), true)
	if err != nil {
		return nil, err
	}
	return asObjects(v), nil
}

// TopThreats lists the lowest-trust sellers buyers should avoid
func (c *Client) TopThreats(ctx context.Context, opts ListOptions) ([]normalize.Result, error) {
	v, err := c.get(ctx, "/api/users/threats/top", opts.values(), true)
	if err != nil {
		return nil, err
	}
	return c.registry.Normalize(v)
}

// MyExtractions lists profile extractions the current user has requested
func (c *Client) MyExtractions(ctx context.Context, opts ListOptions) ([]map[string]any, error) {
	v, err := c.get(ctx, "/api/users/my-extractions", opts.values(), false)
	if err != nil {
		return nil, err
	}
	return asObjects(v), nil
}

// asObject unwraps an envelope-shaped value to its data object
func asObject(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := m["data"].(map[string]any); ok {
		return data
	}
	return m
}

// asObjects unwraps an envelope-shaped value to a list of objects
func asObjects(v any) []map[string]any {
	m, ok := v.(map[string]any)
	var items []any
	if ok {
		switch data := m["data"].(type) {
		case []any:
			items = data
		case map[string]any:
			if results, ok := data["results"].([]any); ok {
				items = results
			}
		}
	} else if arr, ok := v.([]any); ok {
		items = arr
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
