package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/clientportal/pkg/jwtx"
)

// TokenAudience is the aud claim of every access token the portal issues.
const TokenAudience = "client-portal-api"

// SigningKeys bundles the login signer with the key set and verifier the
// HTTP layer checks bearer tokens against.
type SigningKeys struct {
	Signer   *jwtx.EdDSASigner
	KeySet   *jwtx.KeySet
	Verifier *jwtx.EdDSAVerifier
}

// InitSigningKeys loads the Ed25519 key from cfg.SigningKeyFile, creating it
// on first start. Without a file the key lives in memory only and every
// restart invalidates issued tokens.
func InitSigningKeys(cfg Config, logger *slog.Logger) (SigningKeys, error) {
	signer, ephemeral, err := jwtx.LoadOrCreateSigner(cfg.SigningKeyFile)
	if err != nil {
		return SigningKeys{}, fmt.Errorf("failed to load signing key: %w", err)
	}

	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	if ephemeral {
		logger.Warn("using an ephemeral signing key, tokens will not survive a restart", "kid", signer.KID())
	} else {
		logger.Info("signing key loaded", "kid", signer.KID(), "path", cfg.SigningKeyFile)
	}

	return SigningKeys{
		Signer:   signer,
		KeySet:   keys,
		Verifier: jwtx.NewVerifierEdDSA(keys, cfg.Issuer, []string{TokenAudience}),
	}, nil
}
