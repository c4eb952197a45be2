package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/lordvidex/errs"
)

var ErrUnknownAlgorithm = errs.B().Code(errs.InvalidArgument).Msg("unknown hash algorithm").Err()

// Digest matches hex encoded unsalted digests
type Digest struct {
	new func() hash.Hash
}

// Match implements Hasher.
func (d Digest) Match(hashed, candidate string) (bool, error) {
	h := d.new()
	h.Write([]byte(candidate))
	return hex.EncodeToString(h.Sum(nil)) == strings.ToLower(hashed), nil
}

// New returns the Hasher for algo: bcrypt, md5, sha1 or sha256
func New(algo string) (Hasher, error) {
	switch strings.ToLower(algo) {
	case "bcrypt":
		return Bcrypt{}, nil
	case "md5":
		return Digest{new: md5.New}, nil
	case "sha1":
		return Digest{new: sha1.New}, nil
	case "sha256":
		return Digest{new: sha256.New}, nil
	}
	return nil, ErrUnknownAlgorithm
}
