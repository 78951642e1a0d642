package refcode

import (
	"crypto/rand"
	"fmt"
)

// alphabet omits 0/O/1/I to keep codes readable over the phone.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// New returns a short human-readable reference like Q-7XK2M9.
func New(prefix string) string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return fmt.Sprintf("%s-%s", prefix, string(buf))
}
