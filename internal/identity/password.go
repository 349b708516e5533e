package identity

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is lowered by tests
var hashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of a plain password
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash
func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// SetHashCost overrides the bcrypt cost, returning the previous value
func SetHashCost(cost int) int {
	prev := hashCost
	hashCost = cost
	return prev
}
