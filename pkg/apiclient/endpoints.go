package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/proveo/clientkit/pkg/sanitizer"
)

// Backend endpoints this client depends on.
const (
	endpointMe                 = "/api/v1/users/me"
	endpointMyCompany          = "/api/v1/companies/user/my-company"
	endpointLogin              = "/api/v1/users/login"
	endpointSignup             = "/api/v1/users/signup"
	endpointLogout             = "/api/v1/users/logout"
	endpointResendVerification = "/api/v1/users/resend-verification"
)

// csrfTokenField is the response field login/signup may carry a token in.
const csrfTokenField = "csrfToken"

// CheckAuthenticated performs the single authentication probe: one GET
// against the current-user endpoint, any non-2xx meaning "not
// authenticated". The observation is reconciled into the persisted
// flag only when it disagrees, so repeated agreeing checks stay
// silent. Transport failures propagate without touching state.
func (c *Client) CheckAuthenticated(ctx context.Context) (bool, error) {
	resp, err := c.Do(ctx, http.MethodGet, endpointMe, nil)
	if err != nil {
		return false, err
	}
	drain(resp)

	observed := is2xx(resp.StatusCode)
	if err := c.state.ReconcileLoggedIn(ctx, observed); err != nil {
		return observed, err
	}
	return observed, nil
}

// CheckCompanyPublished probes whether the current user has a
// published company. A 404 is the backend's way of saying "none yet";
// any non-2xx reads as false. Like the authentication check, the
// persisted flag is reconciled only on disagreement.
func (c *Client) CheckCompanyPublished(ctx context.Context) (bool, error) {
	resp, err := c.Do(ctx, http.MethodGet, endpointMyCompany, nil)
	if err != nil {
		return false, err
	}
	drain(resp)

	observed := is2xx(resp.StatusCode)
	if err := c.state.ReconcileCompanyPublished(ctx, observed); err != nil {
		return observed, err
	}
	return observed, nil
}

// Credentials is the login/signup request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Login authenticates against the backend. On success the CSRF token
// from the response (when present) is stored, the login flag is set,
// and the sanitized response payload is returned. A 403 surfaces as an
// HTTPError for page-specific handling (unverified email) and does not
// change the login state.
func (c *Client) Login(ctx context.Context, creds Credentials) (map[string]any, error) {
	payload, err := c.postAuth(ctx, endpointLogin, creds)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Signup registers a new account. The backend logs the new user in on
// success, so the response is handled exactly like a login response.
func (c *Client) Signup(ctx context.Context, creds Credentials) (map[string]any, error) {
	payload, err := c.postAuth(ctx, endpointSignup, creds)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) postAuth(ctx context.Context, endpoint string, creds Credentials) (map[string]any, error) {
	email := sanitizer.Email(creds.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrInvalidInput)
	}
	creds.Email = email

	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("apiclient: encode credentials: %w", err)
	}

	resp, err := c.Do(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		io.Copy(io.Discard, resp.Body)
		return nil, &HTTPError{Status: resp.StatusCode, Endpoint: endpoint}
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("apiclient: decode %s response: %w", endpoint, err)
	}

	// Capture the CSRF token before sanitization; it is opaque and
	// must not be altered.
	if token, ok := decoded[csrfTokenField].(string); ok && token != "" {
		if err := c.state.SetCSRFToken(ctx, token); err != nil {
			return nil, err
		}
	}
	if err := c.state.SetLoggedIn(ctx, true); err != nil {
		return nil, err
	}

	safe := sanitizer.APIResponse(decoded).(map[string]any)
	delete(safe, csrfTokenField)
	return safe, nil
}

// Logout tells the backend to end the session, then clears the local
// login state, which cascades over the company-published flag and the
// CSRF token. A transport failure propagates without clearing local
// state; a non-2xx response still clears it, since the user's intent
// to log out is not negotiable.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.Do(ctx, http.MethodPost, endpointLogout, nil)
	if err != nil {
		return err
	}
	drain(resp)

	return c.state.SetLoggedIn(ctx, false)
}

// ResendVerification asks the backend to resend the account
// verification email.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	clean := sanitizer.Email(email)
	if clean == "" {
		return fmt.Errorf("%w: email", ErrInvalidInput)
	}

	body, err := json.Marshal(map[string]string{"email": clean})
	if err != nil {
		return fmt.Errorf("apiclient: encode body: %w", err)
	}

	resp, err := c.Do(ctx, http.MethodPost, endpointResendVerification, bytes.NewReader(body))
	if err != nil {
		return err
	}
	drain(resp)

	if !is2xx(resp.StatusCode) {
		return &HTTPError{Status: resp.StatusCode, Endpoint: endpointResendVerification}
	}
	return nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// drain consumes and closes a response body so the underlying
// connection can be reused.
func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
