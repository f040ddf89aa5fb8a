// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/Akashi23/anime-quote/internal/domain/service"
	"github.com/Akashi23/anime-quote/internal/errors"
)

// Default argon2id cost parameters, per the RFC 9106 second recommendation.
const (
	defaultTime    uint32 = 3
	defaultMemory  uint32 = 64 * 1024 // KiB
	defaultThreads uint8  = 2
	defaultKeyLen  uint32 = 32

	saltLen = 16 // 128 bits of salt entropy per hash
)

// ErrMalformedHash reports an encoded hash that cannot be decoded. Stored
// hashes are produced by this package, so hitting this on verification means
// the stored value was corrupted.
var ErrMalformedHash = errors.New("malformed encoded password hash")

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id with PHC-encoded output:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64 salt>$<base64 digest>
//
// The encoding is self-describing, so hashes produced with older cost
// parameters keep verifying after the defaults change.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher with default cost
// parameters. It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return NewArgon2HasherWithParams(defaultTime, defaultMemory, defaultThreads, defaultKeyLen)
}

// NewArgon2HasherWithParams constructs a hasher with explicit cost
// parameters. Zero values fall back to the defaults.
func NewArgon2HasherWithParams(time, memory uint32, threads uint8, keyLen uint32) service.PasswordHasher {
	if time == 0 {
		time = defaultTime
	}
	if memory == 0 {
		memory = defaultMemory
	}
	if threads == 0 {
		threads = defaultThreads
	}
	if keyLen == 0 {
		keyLen = defaultKeyLen
	}

	return &argon2Hasher{
		time:    time,
		memory:  memory,
		threads: threads,
		keyLen:  keyLen,
	}
}

// Hash derives an argon2id digest from the password under a fresh random
// salt and returns the PHC-encoded string. A salt read failure is an
// internal error; it must never be reported as an authentication failure.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	digest := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Verify recomputes the digest from the password using the parameters and
// salt embedded in encoded, and compares in constant time. A malformed
// encoded value yields (false, ErrMalformedHash); it is a non-match, but
// callers should log it since it indicates stored-data corruption.
func (h *argon2Hasher) Verify(password, encoded string) (bool, error) {
	params, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(digest, computed) == 1, nil
}

type hashParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

func decodeHash(encoded string) (hashParams, []byte, []byte, error) {
	var params hashParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, errors.Wrap(ErrMalformedHash, "unexpected structure")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Wrap(ErrMalformedHash, "bad version field")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.Wrapf(ErrMalformedHash, "unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, errors.Wrap(ErrMalformedHash, "bad parameter field")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errors.Wrap(ErrMalformedHash, "bad salt encoding")
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, errors.Wrap(ErrMalformedHash, "bad digest encoding")
	}
	if len(digest) == 0 {
		return params, nil, nil, errors.Wrap(ErrMalformedHash, "empty digest")
	}

	return params, salt, digest, nil
}
