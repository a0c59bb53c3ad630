package request

// ResolveRequest is the request body for resolving a login identifier
type ResolveRequest struct {
	Identifier string `json:"identifier"`
}

// LoginRequest is the request body for signing in.
// Identifier may be a username or an email address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}
