package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Fingerprint identifies a ManagerConfig for cache reuse. Object keys are
// canonicalized at every depth; array element order is significant.
type Fingerprint string

func FingerprintOf(config ManagerConfig) (Fingerprint, error) {
	// encoding/json writes map keys in sorted order.
	canonical, err := json.Marshal(map[string]any(config))
	if err != nil {
		return "", fmt.Errorf("canonicalize manager config: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return Fingerprint(hex.EncodeToString(sum[:])), nil
}

func (f Fingerprint) Short() string {
	if len(f) <= 12 {
		return string(f)
	}
	return string(f[:12])
}
