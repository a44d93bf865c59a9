package models

// User is the profile returned by the server. It is passed through
// untouched; the client never derives state from anything but id and email.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	IsActive  bool   `json:"is_active"`
	Timezone  string `json:"timezone"`
	Theme     string `json:"theme"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"` // RFC3339 timestamp
	UpdatedAt string `json:"updated_at,omitempty"` // RFC3339 timestamp
	LastLogin string `json:"last_login,omitempty"` // RFC3339 timestamp
}

// RegisterData is the account-creation payload.
type RegisterData struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"` // client-side check only, never sent
	FullName        string `json:"full_name,omitempty"`
	Username        string `json:"username,omitempty"`
}

// UserUpdate is a partial update for the current user's profile.
// Nil fields are omitted from the request body.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}

// TokenPair is the credential exchange response.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
}
