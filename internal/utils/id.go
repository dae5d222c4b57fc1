package utils

import (
	"crypto/rand"
	"math/big"
)

const idAlphabet = "abcdefghijkmnpqrstuvwxyz23456789" // no 0/O, 1/l

// GenerateID returns a short random public id (post pid, comment cid).
func GenerateID(length int) string {
	b := make([]byte, length)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			b[i] = idAlphabet[0]
			continue
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b)
}
