package signing

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biblepay/go-gsc/common/types"
)

func TestEdSigner_SignVerify(t *testing.T) {
	signer, err := NewEdSigner(WithPrefix([]byte("test")))
	require.NoError(t, err)
	msg := []byte("contract")
	sig := signer.Sign(GOVOBJECT, msg)
	require.Len(t, sig, SignatureSize)

	verifier := NewEdVerifier(WithVerifierPrefix([]byte("test")))
	require.True(t, verifier.Verify(GOVOBJECT, signer.PublicKey(), msg, sig))
	require.False(t, verifier.Verify(VOTE, signer.PublicKey(), msg, sig))
	require.False(t, verifier.Verify(GOVOBJECT, signer.PublicKey(), []byte("other"), sig))

	other := NewEdVerifier(WithVerifierPrefix([]byte("main")))
	require.False(t, other.Verify(GOVOBJECT, signer.PublicKey(), msg, sig))
	require.False(t, verifier.Verify(GOVOBJECT, signer.PublicKey()[:10], msg, sig))
}

func TestEdSigner_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operator.key")
	signer, err := NewEdSigner(ToFile(path))
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := NewEdSigner(FromFile(path))
	require.NoError(t, err)
	require.Equal(t, signer.PublicKey(), loaded.PublicKey())

	_, err = NewEdSigner(ToFile(path))
	require.ErrorIs(t, err, os.ErrExist)

	require.NoError(t, os.WriteFile(path, []byte("abcd"), 0o600))
	_, err = NewEdSigner(FromFile(path))
	require.Error(t, err)
}

func TestEdSigner_FileMismatchedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "operator.key")
	signer, err := NewEdSigner(ToFile(path))
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	key := bytes.Clone(signer.priv)
	key[40] ^= 0xff
	require.NoError(t, os.WriteFile(path, []byte(hex.EncodeToString(key)+"\n"), 0o600))
	_, err = NewEdSigner(FromFile(path))
	require.ErrorContains(t, err, "does not match")
}

func TestEdSigner_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 64)
	a, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	b, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	require.Equal(t, a.PublicKey(), b.PublicKey())
}

func TestOperator(t *testing.T) {
	signer, err := NewEdSigner()
	require.NoError(t, err)
	collateral := types.Outpoint{TxID: types.RandomHash(), Index: 1}
	op := NewOperator(signer, collateral)
	verifier := NewEdVerifier()

	obj := &types.GovernanceObject{Type: types.TriggerObject, Data: []byte("{}"), CreationTime: time.Unix(100, 0)}
	require.NoError(t, op.SignObject(obj))
	require.Equal(t, collateral, obj.Collateral)
	require.True(t, verifier.Verify(GOVOBJECT, signer.PublicKey(), obj.SignedBytes(), obj.Signature))

	vote := &types.Vote{Object: types.RandomHash(), Signal: types.SignalFunding, Outcome: types.OutcomeYes}
	require.NoError(t, op.SignVote(vote))
	require.Equal(t, collateral, vote.Voter)
	require.True(t, verifier.Verify(VOTE, signer.PublicKey(), vote.SignedBytes(), vote.Signature))
}
