package utils

import "github.com/matthewhartstonge/argon2"

var hashConfig = argon2.DefaultConfig()

// HashPassword returns the argon2id encoded hash for storage in admin_users.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	return string(encoded), err
}

// VerifyPassword checks a plaintext password against a stored encoded hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
