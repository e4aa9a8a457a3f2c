package user

// User is a challenge participant as the external API returns it.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Nickname       string `json:"nickname"`
}

// Initial is shown in place of a missing profile picture.
func (u User) Initial() string {
	for _, r := range u.Nickname {
		return string(r)
	}
	return ""
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SessionUser is the signed-in browser user kept in the session store.
type SessionUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Provider     string `json:"provider,omitempty"`
}

func (u *SessionUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Username derives the profile handle from the email local part.
func (u *SessionUser) Username() string {
	if u == nil {
		return ""
	}
	for i, r := range u.Email {
		if r == '@' {
			return u.Email[:i]
		}
	}
	return u.ID
}
