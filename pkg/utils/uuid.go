package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTempPassword builds a random initial password for users created
// by an admin without one. The user is expected to change it on first login.
func GenerateTempPassword() (string, error) {
	return gonanoid.Generate(characters, 12)
}
