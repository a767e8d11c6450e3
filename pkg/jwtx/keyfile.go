package jwtx

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
)

// LoadOrCreateSigner reads a PKCS8 Ed25519 key from path. When the file does
// not exist a key is generated and written with 0600 permissions. An empty
// path yields an ephemeral in-memory key. The returned bool reports whether
// the key is ephemeral.
func LoadOrCreateSigner(path string) (*EdDSASigner, bool, error) {
	if path == "" {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, false, err
		}
		s, err := NewSignerEdDSA(kidFor(pemKey), pemKey)
		return s, true, err
	}

	pemKey, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, false, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, false, fmt.Errorf("jwtx: create key dir: %w", err)
		}
		if err := os.WriteFile(path, pemKey, 0o600); err != nil {
			return nil, false, fmt.Errorf("jwtx: write key: %w", err)
		}
	case err != nil:
		return nil, false, fmt.Errorf("jwtx: read key: %w", err)
	}

	s, err := NewSignerEdDSA(kidFor(pemKey), pemKey)
	return s, false, err
}

// kidFor derives a stable key id from the key material.
func kidFor(pemKey []byte) string {
	sum := sha256.Sum256(pemKey)
	return hex.EncodeToString(sum[:8])
}
