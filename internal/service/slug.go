package service

import (
	"encoding/binary"
	"slices"

	"github.com/google/uuid"
)

const alphabet = "0123456789qwertyuiopasdfghjklzxcvbnmMNBVCXZLKJHGFDQASWERTYUIOP"

// generateSlug derives a short public code from a random id.
func generateSlug() string {
	id := uuid.New()
	// 40 bits keep codes at seven characters at most
	return base62Encode(int64(binary.BigEndian.Uint64(id[:8]) >> 24))
}

func base62Encode(n int64) string {
	if n == 0 {
		return string(alphabet[0])
	}

	res := make([]byte, 0, 12)

	for n > 0 {
		res = append(res, alphabet[n%62])
		n /= 62
	}
	slices.Reverse(res)
	return string(res)
}
