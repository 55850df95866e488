package store

// User is an account whose name is only reachable through accessors.
//
//merge:generate
type User struct {
	mName    string
	isActive bool
	age      int    `merge:"skip"`
	id       string `merge:"final"`
}

// NewUser creates a user.
func NewUser(id, name string, active bool, age int) *User {
	return &User{mName: name, isActive: active, age: age, id: id}
}

func (u *User) getName() string {
	return u.mName
}

func (u *User) setName(name string) {
	u.mName = name
}

// Name returns the display name.
func (u *User) Name() string { return u.mName }

// Active reports whether the account is enabled.
func (u *User) Active() bool { return u.isActive }

// Age returns the age in years.
func (u *User) Age() int { return u.age }

// ID returns the immutable account id.
func (u *User) ID() string { return u.id }
