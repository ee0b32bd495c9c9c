package identity

// StaticChecker accepts exactly one demo credential pair. Placeholder for a
// real credential store; nothing outside this file knows the pair exists.
type StaticChecker struct{}

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password"
)

func (StaticChecker) Check(email, password string) (*User, bool) {
	if email != demoEmail || password != demoPassword {
		return nil, false
	}
	return &User{
		ID:    1,
		Name:  "احمد محمدی",
		Email: demoEmail,
		Phone: "09123456789",
	}, true
}
