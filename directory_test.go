package fusion

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDirectory_SignUp(t *testing.T) {
	d := NewDirectory()
	for i := 0; i < MaxUsers; i++ {
		if _, err := d.SignUp(fmt.Sprintf("user%d", i), "pw"); err != nil {
			t.Fatalf("sign-up %d: %v", i, err)
		}
	}
	if _, err := d.SignUp("one-too-many", "pw"); !errors.Is(err, ErrDirectoryFull) {
		t.Errorf("over capacity: got %v, want ErrDirectoryFull", err)
	}
	if d.Len() != MaxUsers {
		t.Errorf("Len() = %d, want %d", d.Len(), MaxUsers)
	}
}

func TestDirectory_SignUp_TruncatesCredentials(t *testing.T) {
	d := NewDirectory()
	u, err := d.SignUp(strings.Repeat("n", 40), strings.Repeat("p", 40))
	if err != nil {
		t.Fatal(err)
	}
	if len(u.Name()) != maxUsernameLen {
		t.Errorf("username length = %d, want %d", len(u.Name()), maxUsernameLen)
	}
	if len(u.password) != maxPasswordLen {
		t.Errorf("password length = %d, want %d", len(u.password), maxPasswordLen)
	}
}

func TestDirectory_Login(t *testing.T) {
	d := NewDirectory()
	if _, err := d.SignUp("alice", "pw1"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.SignUp("bob", "pw2"); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "alice", "pw1", nil},
		{"wrong password", "alice", "pw2", ErrInvalidCredentials},
		{"unknown user", "carol", "pw1", ErrInvalidCredentials},
		{"credentials are exact", "Alice", "pw1", ErrInvalidCredentials},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := d.Login(tc.username, tc.password)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
			if err == nil && u.Name() != tc.username {
				t.Errorf("logged in as %q, want %q", u.Name(), tc.username)
			}
		})
	}
}

// Duplicate usernames are allowed at sign-up; login resolves to the first
// match. This mirrors how existing data files behave.
func TestDirectory_Login_FirstMatchWins(t *testing.T) {
	d := NewDirectory()
	first, _ := d.SignUp("dup", "pw")
	if _, err := d.SignUp("dup", "pw"); err != nil {
		t.Fatalf("duplicate sign-up rejected: %v", err)
	}

	u, err := d.Login("dup", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if u != first {
		t.Error("Login did not return the first matching user")
	}
}
