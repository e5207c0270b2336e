package dto

// LoginResponse carries the issued bearer token.
// Field names follow the conventional OAuth-ish shape clients expect.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
