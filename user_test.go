package stockdesk

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ebrelin/stockdesk/gateway"
)

func TestUserModel_LoginTogglesState(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "token": "t1"}`))
	})

	model := NewUserModel(client)
	if model.IsLoggedIn() {
		t.Fatal("IsLoggedIn() = true before any login")
	}
	if _, err := model.Login("a@x.com", "p1"); err != nil {
		t.Fatalf("Login() unexpected error = %v", err)
	}
	if !model.IsLoggedIn() {
		t.Error("IsLoggedIn() = false after a successful login")
	}

	model.Logout()
	if model.IsLoggedIn() {
		t.Error("IsLoggedIn() = true after logout")
	}
}

func TestUserModel_RejectedLoginStaysLoggedOut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "bad creds"}`))
	})

	model := NewUserModel(client)
	if _, err := model.Login("a@x.com", "p1"); err == nil {
		t.Fatal("Login() expected an error")
	}
	if model.IsLoggedIn() {
		t.Error("IsLoggedIn() = true after a rejected login")
	}
}

func TestUserModel_Resume(t *testing.T) {
	client := gateway.NewClient("http://localhost:1", gateway.NewSession())
	model := NewUserModel(client)

	model.Resume()
	if model.IsLoggedIn() {
		t.Error("Resume() marked an empty session logged in")
	}

	client.Session().SetCredentials("a@x.com", "p1")
	model.Resume()
	if !model.IsLoggedIn() {
		t.Error("Resume() ignored a restored credential pair")
	}
}

func TestUserModel_MutationsRequireLogin(t *testing.T) {
	// no reachable server: the guard must fire before any network call
	client := gateway.NewClient("http://localhost:1", gateway.NewSession())
	model := NewUserModel(client)

	if err := model.UpdatePassword("old", "new", ""); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("UpdatePassword() error = %v, want ErrNotLoggedIn", err)
	}
	if err := model.DeleteAccount("p1"); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("DeleteAccount() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestUserModel_DeleteAccount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/User/V2/Login":
			w.Write([]byte(`{"success": true}`))
		case "/api/User/V2/DeleteUser":
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	model := NewUserModel(client)
	if _, err := model.Login("a@x.com", "p1"); err != nil {
		t.Fatalf("Login() unexpected error = %v", err)
	}
	if err := model.DeleteAccount("p1"); err != nil {
		t.Fatalf("DeleteAccount() unexpected error = %v", err)
	}
	if model.IsLoggedIn() {
		t.Error("IsLoggedIn() = true after account deletion")
	}
	// clearing the session is left to the caller
	if email, _ := client.Session().Credentials(); email != "a@x.com" {
		t.Errorf("email = %q, want the session untouched", email)
	}
}
