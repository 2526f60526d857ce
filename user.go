package stockdesk

import (
	"errors"

	"github.com/ebrelin/stockdesk/gateway"
)

// ErrNotLoggedIn is returned by the account-mutating operations when no
// user is logged in. It is raised locally, before any network call.
var ErrNotLoggedIn = errors.New("user not logged in")

// UserModel wraps the gateway's account operations and tracks whether a
// user is currently logged in. Account-mutating operations refuse to
// touch the network while logged out.
type UserModel struct {
	client   *gateway.Client
	loggedIn bool
}

// NewUserModel returns a user model over the given client.
func NewUserModel(client *gateway.Client) *UserModel {
	return &UserModel{client: client}
}

// IsLoggedIn reports the outcome of the last login or logout.
func (u *UserModel) IsLoggedIn() bool { return u.loggedIn }

// Resume marks the model logged in when the session already holds a
// credential pair, for callers that persist the session between runs.
func (u *UserModel) Resume() {
	email, password := u.client.Session().Credentials()
	u.loggedIn = email != "" && password != ""
}

// Register creates a new account.
func (u *UserModel) Register(email, password string) error {
	return u.client.Register(email, password)
}

// Login authenticates against the gateway and records the outcome.
func (u *UserModel) Login(email, password string) (gateway.LoginResult, error) {
	result, err := u.client.Login(email, password)
	u.loggedIn = err == nil
	return result, err
}

// Logout clears the session. It always succeeds: there is nothing
// server-side to tear down.
func (u *UserModel) Logout() {
	u.client.Logout()
	u.loggedIn = false
}

// UpdatePassword changes the password, and the email as well when
// newEmail is not empty, of the logged-in account. The account is
// identified by the session's email.
func (u *UserModel) UpdatePassword(currentPassword, newPassword, newEmail string) error {
	email, _ := u.client.Session().Credentials()
	if !u.loggedIn || email == "" {
		return ErrNotLoggedIn
	}
	return u.client.UpdatePassword(email, currentPassword, newPassword, newEmail)
}

// DeleteAccount removes the logged-in account. The session itself is
// left for the caller to clear.
func (u *UserModel) DeleteAccount(password string) error {
	email, _ := u.client.Session().Credentials()
	if !u.loggedIn || email == "" {
		return ErrNotLoggedIn
	}
	if err := u.client.DeleteUser(email, password); err != nil {
		return err
	}
	u.loggedIn = false
	return nil
}
