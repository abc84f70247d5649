package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a cache key of the form "scope:hash" by hashing the JSON
// encoding of parts. The scope names the pipeline stage (dataset, layout,
// artifact) and doubles as the shard directory in [FileCache]. The full
// 256-bit digest is kept so distinct datasets and option sets never collide.
func hashKey(scope string, parts ...any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		_ = enc.Encode(p)
	}
	return scope + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 digest of data. The pipeline uses it to
// content-address serialized datasets and layouts, so a layout computed from
// unchanged tools hits the cache no matter where the dataset came from.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
