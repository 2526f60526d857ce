package cmd

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ebrelin/stockdesk/gateway"
)

const sessionFile = "stockdesk-session"

// sessionPath is the file the session survives in between invocations.
func sessionPath() string {
	return filepath.Join(os.TempDir(), sessionFile)
}

// savedSession is the on-disk shape of the session.
type savedSession struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`
	UserID   string `json:"userId,omitempty"`
}

// loadSession restores a previously saved session. A missing or
// unreadable file just means a fresh session.
func loadSession(s *gateway.Session) {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return
	}
	var saved savedSession
	if err := json.Unmarshal(data, &saved); err != nil {
		return
	}
	if saved.Email != "" && saved.Password != "" {
		s.SetCredentials(saved.Email, saved.Password)
	}
	if saved.Token != "" {
		s.SetToken(saved.Token)
	}
	if saved.UserID != "" {
		s.SetUserID(saved.UserID)
	}
}

// saveSession persists the session for the next invocation.
func saveSession(s *gateway.Session) error {
	email, password := s.Credentials()
	saved := savedSession{
		Email:    email,
		Password: password,
		Token:    s.Token(),
		UserID:   s.UserID(),
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	return os.WriteFile(sessionPath(), data, 0600)
}

// clearSessionFile forgets the saved session.
func clearSessionFile() error {
	err := os.Remove(sessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
