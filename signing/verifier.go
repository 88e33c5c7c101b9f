package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

type edVerifierOption struct {
	prefix []byte
}

// VerifierOptionFunc to modify verifier.
type VerifierOptionFunc func(*edVerifierOption)

// WithVerifierPrefix sets the prefix used by EdVerifier. This usually is the network name.
func WithVerifierPrefix(prefix []byte) VerifierOptionFunc {
	return func(opts *edVerifierOption) {
		opts.prefix = prefix
	}
}

// EdVerifier verifies signatures produced by EdSigner.
type EdVerifier struct {
	prefix []byte
}

func NewEdVerifier(opts ...VerifierOptionFunc) *EdVerifier {
	cfg := &edVerifierOption{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &EdVerifier{prefix: cfg.prefix}
}

// Verify that sig over m in domain d was made with pub.
func (es *EdVerifier) Verify(d Domain, pub, m, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), signedMessage(es.prefix, d, m), sig)
}
