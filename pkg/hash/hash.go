// Package hash provides short content digests for informational output.
package hash

import (
	"crypto/sha1"
	"encoding/hex"
)

// ContentDigest returns an 8-character SHA1 digest of content, used in
// the post-download verification report so two runs can be compared at
// a glance.
func ContentDigest(content []byte) string {
	sum := sha1.Sum(content)
	return hex.EncodeToString(sum[:])[:8]
}

// SHA1Sum returns the full SHA1 hash of content.
func SHA1Sum(content []byte) string {
	sum := sha1.Sum(content)
	return hex.EncodeToString(sum[:])
}
