package model

// AuthUser is the signed-in user as seen by the authentication client
type AuthUser struct {
	UID   UserID
	Email string
}
