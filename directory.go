package fusion

// MaxUsers is the capacity of the directory.
const MaxUsers = 10

// Directory is the ordered, append-only collection of all users; it is the
// root of everything the codec persists. Order is preserved across
// save/load.
type Directory struct {
	users []*User
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory { return &Directory{} }

// Len returns the number of users.
func (d *Directory) Len() int { return len(d.users) }

// Users returns the users in sign-up order.
func (d *Directory) Users() []*User { return d.users }

// SignUp appends a new user with empty collections. Username and password
// are truncated to their storage limits. It returns ErrDirectoryFull at
// capacity.
//
// There is deliberately no duplicate-username check: two users with the
// same name can exist, and Login resolves to the first match. Rejecting
// duplicates at sign-up would strand existing data files that contain them.
func (d *Directory) SignUp(username, password string) (*User, error) {
	if len(d.users) >= MaxUsers {
		return nil, ErrDirectoryFull
	}
	u := newUser(username, password)
	d.users = append(d.users, u)
	return u, nil
}

// Login returns the first user whose username and password both match
// exactly, or ErrInvalidCredentials. Passwords are stored and compared in
// plain text; hashing, rate limiting and lockout are out of scope.
func (d *Directory) Login(username, password string) (*User, error) {
	for _, u := range d.users {
		if u.name == username && u.password == password {
			return u, nil
		}
	}
	return nil, ErrInvalidCredentials
}
