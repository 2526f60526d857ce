package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestLogin_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/User/V2/Login" {
			t.Errorf("path = %q, want /api/User/V2/Login", r.URL.Path)
		}
		w.Write([]byte(`{"success": true, "token": "t1"}`))
	})

	result, err := client.Login("a@x.com", "p1")
	if err != nil {
		t.Fatalf("Login() unexpected error = %v", err)
	}
	if result.Token != "t1" {
		t.Errorf("Token = %q, want t1", result.Token)
	}

	email, password := client.Session().Credentials()
	if email != "a@x.com" || password != "p1" {
		t.Errorf("Credentials() = (%q, %q), want (a@x.com, p1)", email, password)
	}
	if got := client.Session().Token(); got != "t1" {
		t.Errorf("Token() = %q, want t1", got)
	}
}

func TestLogin_SuccessWithoutToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	})

	if _, err := client.Login("a@x.com", "p1"); err != nil {
		t.Fatalf("Login() unexpected error = %v", err)
	}
	// credentials stored even when the gateway returns no token
	if email, _ := client.Session().Credentials(); email != "a@x.com" {
		t.Errorf("email = %q, want a@x.com", email)
	}
	if got := client.Session().Token(); got != "" {
		t.Errorf("Token() = %q, want empty", got)
	}
}

func TestLogin_Rejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "bad creds"}`))
	})
	client.Session().SetCredentials("old@x.com", "old")
	client.Session().SetToken("stale")

	_, err := client.Login("a@x.com", "p1")
	if err == nil {
		t.Fatal("Login() expected an error")
	}
	if got, want := err.Error(), "bad creds"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	assertSessionEmpty(t, client.Session())
}

func TestLogin_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "unauthorized"}`))
	})
	client.Session().SetCredentials("old@x.com", "old")

	if _, err := client.Login("a@x.com", "p1"); err == nil {
		t.Fatal("Login() expected an error")
	}
	assertSessionEmpty(t, client.Session())
}

func TestLogin_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	if _, err := client.Login("a@x.com", "p1"); err == nil {
		t.Fatal("Login() expected an error for an undecodable response")
	}
	assertSessionEmpty(t, client.Session())
}

func TestLogout_AlwaysClears(t *testing.T) {
	// no server: logout is local only
	client := NewClient("http://localhost:1", NewSession())
	client.Session().SetCredentials("a@x.com", "p1")
	client.Session().SetToken("t1")
	client.Session().SetUserID("42")

	client.Logout()
	assertSessionEmpty(t, client.Session())

	// and again from an already empty session
	client.Logout()
	assertSessionEmpty(t, client.Session())
}

func TestUserID_Stored(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"numeric id", `{"userId": 42}`, "42"},
		{"string id", `{"userId": "42"}`, "42"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})

			id, err := client.UserID("a@x.com", "p1")
			if err != nil {
				t.Fatalf("UserID() unexpected error = %v", err)
			}
			if id != tc.want {
				t.Errorf("UserID() = %q, want %q", id, tc.want)
			}
			if got := client.Session().UserID(); got != tc.want {
				t.Errorf("session UserID() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestUpdatePassword_ReplacesCredentials(t *testing.T) {
	var gotBody map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %q, want PUT", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Write([]byte(`{}`))
	})
	client.Session().SetCredentials("a@x.com", "old")

	if err := client.UpdatePassword("a@x.com", "old", "new", ""); err != nil {
		t.Fatalf("UpdatePassword() unexpected error = %v", err)
	}
	if gotBody["newPassword"] != "new" {
		t.Errorf("newPassword = %q, want new", gotBody["newPassword"])
	}
	if _, sent := gotBody["newEmail"]; sent {
		t.Error("newEmail sent although not requested")
	}
	if email, password := client.Session().Credentials(); email != "a@x.com" || password != "new" {
		t.Errorf("Credentials() = (%q, %q), want (a@x.com, new)", email, password)
	}
}

func TestUpdatePassword_NewEmail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	client.Session().SetCredentials("a@x.com", "old")

	if err := client.UpdatePassword("a@x.com", "old", "new", "b@x.com"); err != nil {
		t.Fatalf("UpdatePassword() unexpected error = %v", err)
	}
	if email, password := client.Session().Credentials(); email != "b@x.com" || password != "new" {
		t.Errorf("Credentials() = (%q, %q), want (b@x.com, new)", email, password)
	}
}

func TestUpdatePassword_FailureKeepsCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	client.Session().SetCredentials("a@x.com", "old")

	if err := client.UpdatePassword("a@x.com", "old", "new", ""); err == nil {
		t.Fatal("UpdatePassword() expected an error")
	}
	if _, password := client.Session().Credentials(); password != "old" {
		t.Errorf("password = %q, want the original pair kept on failure", password)
	}
}

func TestDeleteUser_QueryParamsAndSessionKept(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q, want DELETE", r.Method)
		}
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})
	client.Session().SetCredentials("a@x.com", "p1")

	if err := client.DeleteUser("a@x.com", "p1"); err != nil {
		t.Fatalf("DeleteUser() unexpected error = %v", err)
	}
	if got := gotQuery["email"]; len(got) != 1 || got[0] != "a@x.com" {
		t.Errorf("email query = %v, want [a@x.com]", got)
	}
	if got := gotQuery["password"]; len(got) != 1 || got[0] != "p1" {
		t.Errorf("password query = %v, want [p1]", got)
	}
	// clearing the session after deletion is the caller's job
	if email, _ := client.Session().Credentials(); email != "a@x.com" {
		t.Errorf("email = %q, want the session untouched", email)
	}
}

// assertSessionEmpty fails the test unless every session field is
// cleared.
func assertSessionEmpty(t *testing.T, s *Session) {
	t.Helper()
	if email, password := s.Credentials(); email != "" || password != "" {
		t.Errorf("Credentials() = (%q, %q), want empty", email, password)
	}
	if got := s.Token(); got != "" {
		t.Errorf("Token() = %q, want empty", got)
	}
	if got := s.UserID(); got != "" {
		t.Errorf("UserID() = %q, want empty", got)
	}
}
