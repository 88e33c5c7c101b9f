package signing

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

type Domain byte

const (
	GOVOBJECT Domain = 0
	VOTE      Domain = 1
)

// String returns the string representation of a domain.
func (d Domain) String() string {
	switch d {
	case GOVOBJECT:
		return "GOVOBJECT"
	case VOTE:
		return "VOTE"
	default:
		return "UNKNOWN"
	}
}

// SignatureSize is the size of an ed25519 signature.
const SignatureSize = ed25519.SignatureSize

type edSignerOption struct {
	priv   ed25519.PrivateKey
	file   string
	prefix []byte
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// WithPrefix sets the prefix used by EdSigner. This usually is the network name.
func WithPrefix(prefix []byte) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		opt.prefix = prefix
		return nil
	}
}

// ToFile writes the private key to a file after creation.
func ToFile(path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.file != "" {
			return errors.New("invalid option ToFile: file already set")
		}
		opt.file = path
		return nil
	}
}

// FromFile loads the operator key from a hex encoded file.
func FromFile(path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option FromFile: private key already set")
		}
		priv, err := readKey(path)
		if err != nil {
			return err
		}
		opt.priv = priv
		return nil
	}
}

func readKey(path string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read operator key: %w", err)
	}
	key, err := hex.DecodeString(string(bytes.TrimSpace(data)))
	switch {
	case err != nil:
		return nil, fmt.Errorf("decode operator key %s: %w", filepath.Base(path), err)
	case len(key) != ed25519.PrivateKeySize:
		return nil, fmt.Errorf("operator key %s has %d bytes, want %d",
			filepath.Base(path), len(key), ed25519.PrivateKeySize)
	}
	priv := ed25519.PrivateKey(key)
	if !bytes.Equal(ed25519.NewKeyFromSeed(priv.Seed()), priv) {
		return nil, fmt.Errorf("operator key %s: seed does not match public key", filepath.Base(path))
	}
	return priv, nil
}

// writeKey stores priv at path. An existing key is never overwritten.
func writeKey(path string, priv ed25519.PrivateKey) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("save operator key %s: %w", filepath.Base(path), fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat operator key %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(hex.EncodeToString(priv))); err != nil {
		return fmt.Errorf("write operator key: %w", err)
	}
	return os.Chmod(path, 0o600)
}

// WithKeyFromRand sets the private key used by EdSigner using predictable randomness source.
func WithKeyFromRand(rand io.Reader) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		_, priv, err := ed25519.GenerateKey(rand)
		if err != nil {
			return fmt.Errorf("could not generate key pair: %w", err)
		}
		opt.priv = priv
		return nil
	}
}

// EdSigner represents an ED25519 signer.
type EdSigner struct {
	priv   ed25519.PrivateKey
	prefix []byte
}

// NewEdSigner returns an ed signer. Without a key option a fresh key is generated
// and, if ToFile was given, persisted.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.priv != nil {
		return &EdSigner{priv: cfg.priv, prefix: cfg.prefix}, nil
	}
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, fmt.Errorf("could not generate key pair: %w", err)
	}
	cfg.priv = priv
	if cfg.file != "" {
		if err := writeKey(cfg.file, priv); err != nil {
			return nil, err
		}
	}
	return &EdSigner{priv: cfg.priv, prefix: cfg.prefix}, nil
}

// Sign signs the provided message.
func (es *EdSigner) Sign(d Domain, m []byte) []byte {
	return ed25519.Sign(es.priv, signedMessage(es.prefix, d, m))
}

// PublicKey returns the public key of the signer.
func (es *EdSigner) PublicKey() []byte {
	return es.priv.Public().(ed25519.PublicKey)
}

func (es *EdSigner) String() string {
	return hex.EncodeToString(es.PublicKey())[:10]
}

func signedMessage(prefix []byte, d Domain, m []byte) []byte {
	msg := make([]byte, 0, len(prefix)+1+len(m))
	msg = append(msg, prefix...)
	msg = append(msg, byte(d))
	return append(msg, m...)
}
