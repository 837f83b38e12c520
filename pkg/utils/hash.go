package utils

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// DocumentKey builds a stable cache key for an analysis request from the
// document text plus everything that changes the result: the domain and the
// extraction tunables.
func DocumentKey(text string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(text))
	if len(parts) > 0 {
		h.Write([]byte("\x00" + strings.Join(parts, "\x00")))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
