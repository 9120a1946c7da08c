package models

// User roles.
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
)

// User is the sanitized identity attached to a session. It never carries
// a password.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Account is a login credential pair plus the identity it unlocks. Accounts
// exist only as an embedded fixture list; there is no registration flow and
// passwords are compared in plaintext.
type Account struct {
	User
	Password string `json:"-"`
}

// SeedAccounts returns the three embedded demo accounts.
func SeedAccounts() []Account {
	return []Account{
		{User: User{ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah@hospital.com", Role: RoleAdmin}, Password: "admin123"},
		{User: User{ID: "2", Name: "Dr. Michael Chen", Email: "michael@hospital.com", Role: RoleDoctor}, Password: "doctor123"},
		{User: User{ID: "3", Name: "Nurse Lisa Rodriguez", Email: "lisa@hospital.com", Role: RoleNurse}, Password: "nurse123"},
	}
}
