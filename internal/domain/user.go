package domain

type UserID int64

const adminRole = "Admin"

// User is the session user as reported by the backend at login. Read-only
// to this client; role membership gates the mutation commands.
type User struct {
	ID    UserID
	Name  string
	Roles []string
}

func (u User) IsAdmin() bool {
	for _, role := range u.Roles {
		if role == adminRole {
			return true
		}
	}
	return false
}
