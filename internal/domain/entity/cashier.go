package entity

// Cashier is an operator allowed to log in to the register.
type Cashier struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Label        string `json:"label"`
}

// CashierClaims are the identity fields carried in an access token.
type CashierClaims struct {
	Username string `json:"username"`
	Label    string `json:"label"`
}

// TokenPair is the response of a successful login.
type TokenPair struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}
