package token

import (
	"crypto/rand"
)

// alphabet omits characters that are easily confused when a room code
// is read out loud (0/O, 1/I/L)
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// maxByte is the largest multiple of len(alphabet) that fits in a byte;
// bytes at or above it are rejected so every character is equally likely
const maxByte = byte(256 / len(alphabet) * len(alphabet))

// Generate returns a random room code of length n
func Generate(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)

	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}

		for _, b := range buf {
			if b >= maxByte {
				continue
			}

			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}

	return string(out), nil
}
