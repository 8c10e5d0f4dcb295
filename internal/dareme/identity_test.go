package dareme_test

import (
	"errors"
	"strings"
	"testing"

	"dareme/internal/dareme"
)

func TestService_Register(t *testing.T) {
	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		env := newTestEnv(t)

		id, err := env.svc.Register("alice", "alice@example.com", "s3cret", "hi")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		user, err := env.svc.GetUser(id)
		if err != nil {
			t.Fatalf("GetUser() error = %v", err)
		}
		if !user.PasswordHash.Valid || user.PasswordHash.String == "s3cret" {
			t.Errorf("PasswordHash = %+v, want a hash", user.PasswordHash)
		}
		if !strings.HasPrefix(user.PasswordHash.String, "$2") {
			t.Errorf("PasswordHash = %q, want bcrypt format", user.PasswordHash.String)
		}
		if user.IsPrivate {
			t.Error("new user is private, want public")
		}
	})

	t.Run("duplicate username or email writes nothing", func(t *testing.T) {
		env := newTestEnv(t)
		env.register(t, "alice")

		if _, err := env.svc.Register("alice", "other@example.com", "pw", ""); !errors.Is(err, dareme.ErrDuplicate) {
			t.Errorf("duplicate username error = %v, want ErrDuplicate", err)
		}
		if _, err := env.svc.Register("alice2", "alice@example.com", "pw", ""); !errors.Is(err, dareme.ErrDuplicate) {
			t.Errorf("duplicate email error = %v, want ErrDuplicate", err)
		}

		users, err := env.svc.ListUsers()
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if len(users) != 1 {
			t.Errorf("got %d users, want 1", len(users))
		}
	})

	t.Run("requires username, email and password", func(t *testing.T) {
		env := newTestEnv(t)
		for _, args := range [][3]string{{"", "a@b.c", "pw"}, {"a", " ", "pw"}, {"a", "a@b.c", ""}} {
			if _, err := env.svc.Register(args[0], args[1], args[2], ""); !errors.Is(err, dareme.ErrInvalidArgument) {
				t.Errorf("Register(%q, %q, %q) error = %v, want ErrInvalidArgument", args[0], args[1], args[2], err)
			}
		}
	})

	t.Run("rejects passwords bcrypt cannot hash", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.Register("alice", "alice@example.com", strings.Repeat("x", 73), "")
		if !errors.Is(err, dareme.ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestService_Authenticate(t *testing.T) {
	env := newTestEnv(t)
	id, err := env.svc.Register("alice", "alice@example.com", "s3cret", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := env.svc.RegisterExternal("bob", "bob@example.com", "google", "g-123"); err != nil {
		t.Fatalf("RegisterExternal() error = %v", err)
	}

	t.Run("accepts the right password", func(t *testing.T) {
		got, err := env.svc.Authenticate("alice", "s3cret")
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if got != id {
			t.Errorf("Authenticate() = %d, want %d", got, id)
		}
	})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice", "nope"},
		{"unknown user", "carol", "s3cret"},
		{"external account", "bob", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Authenticate(tt.username, tt.password)
			if !errors.Is(err, dareme.ErrInvalidCredentials) {
				t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestService_SetPrivacy(t *testing.T) {
	env := newTestEnv(t)
	id := env.register(t, "alice")

	for range 2 {
		if err := env.svc.SetPrivacy(id, true); err != nil {
			t.Fatalf("SetPrivacy() error = %v", err)
		}
	}
	user, err := env.svc.GetUser(id)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if !user.IsPrivate {
		t.Error("IsPrivate = false, want true")
	}

	if err := env.svc.SetPrivacy(9999, true); !errors.Is(err, dareme.ErrNotFound) {
		t.Errorf("SetPrivacy(missing) error = %v, want ErrNotFound", err)
	}
}

func TestService_UsernameExists(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	if ok, err := env.svc.UsernameExists("alice"); err != nil || !ok {
		t.Errorf("UsernameExists(alice) = %v, %v; want true, nil", ok, err)
	}
	if ok, err := env.svc.UsernameExists("bob"); err != nil || ok {
		t.Errorf("UsernameExists(bob) = %v, %v; want false, nil", ok, err)
	}
	if _, err := env.svc.GetUserByUsername("bob"); !errors.Is(err, dareme.ErrNotFound) {
		t.Errorf("GetUserByUsername(bob) error = %v, want ErrNotFound", err)
	}
}
