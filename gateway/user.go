package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// LoginResult is the payload of a login response.
type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Register creates a new account. It has no session side effect.
func (c *Client) Register(email, password string) error {
	_, err := c.do(http.MethodPost, "/api/User/V2/Registration", nil, credentials{email, password})
	return err
}

// Login authenticates against the gateway. On success the credential
// pair is stored in the session, along with the token when the gateway
// returns one. On any failure, including a 2xx response that does not
// carry success=true, the whole session is cleared.
func (c *Client) Login(email, password string) (LoginResult, error) {
	body, err := c.do(http.MethodPost, "/api/User/V2/Login", nil, credentials{email, password})
	if err != nil {
		c.session.Clear()
		return LoginResult{}, err
	}

	var result LoginResult
	if err := json.Unmarshal(body, &result); err != nil {
		c.session.Clear()
		return LoginResult{}, fmt.Errorf("cannot decode login response: %w", err)
	}
	if !result.Success {
		c.session.Clear()
		msg := result.Message
		if msg == "" {
			msg = "login rejected by the gateway"
		}
		return LoginResult{}, errors.New(msg)
	}

	c.session.SetCredentials(email, password)
	if result.Token != "" {
		c.session.SetToken(result.Token)
	}
	return result, nil
}

// Logout is local only: the gateway keeps no server-side session, so
// logging out clears the stored state and always succeeds.
func (c *Client) Logout() {
	c.session.Clear()
}

// UserID resolves the account identifier for the credential pair and
// stores it in the session when present. The platform is inconsistent
// about the wire type of the id, so both numbers and strings are
// accepted.
func (c *Client) UserID(email, password string) (string, error) {
	body, err := c.do(http.MethodPost, "/api/User/V2/UserId", nil, credentials{email, password})
	if err != nil {
		return "", err
	}

	var result struct {
		UserID json.Number `json:"userId"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("cannot decode user id response: %w", err)
	}
	id := result.UserID.String()
	if id != "" {
		c.session.SetUserID(id)
	}
	return id, nil
}

// UpdatePassword changes the account password, and the account email as
// well when newEmail is not empty. On success the stored credentials
// are replaced so that every subsequent credential-based call uses the
// new pair.
func (c *Client) UpdatePassword(email, password, newPassword, newEmail string) error {
	payload := map[string]string{
		"email":       email,
		"password":    password,
		"newPassword": newPassword,
	}
	if newEmail != "" {
		payload["newEmail"] = newEmail
	}
	if _, err := c.do(http.MethodPut, "/api/User/V2/UpdatePassword", nil, payload); err != nil {
		return err
	}

	if newEmail != "" {
		c.session.SetCredentials(newEmail, newPassword)
	} else {
		c.session.SetCredentials(email, newPassword)
	}
	return nil
}

// DeleteUser removes the account identified by the credential pair,
// sent as query parameters on this endpoint. The session is left
// untouched: clearing it afterwards is the caller's responsibility.
func (c *Client) DeleteUser(email, password string) error {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)
	_, err := c.do(http.MethodDelete, "/api/User/V2/DeleteUser", q, nil)
	return err
}
