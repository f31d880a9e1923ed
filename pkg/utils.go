package pkg

import "math/rand"

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandString returns a random code of n characters, used for game ids.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
