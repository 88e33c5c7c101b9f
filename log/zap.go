package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/biblepay/go-gsc/common/types"
)

// ShortString is implemented by values with a compact log representation.
type ShortString interface {
	ShortString() string
}

type shortStringer struct {
	val ShortString
}

func (s shortStringer) String() string { return s.val.ShortString() }

// ZShortStringer logs the short form of val.
func ZShortStringer(key string, val ShortString) zap.Field {
	return zap.Stringer(key, shortStringer{val})
}

// ZHeight logs a block height.
func ZHeight(key string, h types.Height) zap.Field {
	return zap.Uint32(key, h.Uint32())
}

// ZAmount logs an amount in coins.
func ZAmount(key string, a types.Amount) zap.Field {
	return zap.Stringer(key, a)
}

// ZObjects logs a list of object hashes in short form.
func ZObjects(key string, hashes []types.Hash32) zap.Field {
	return zap.Array(key, zapcore.ArrayMarshalerFunc(func(enc zapcore.ArrayEncoder) error {
		for _, h := range hashes {
			enc.AppendString(h.ShortString())
		}
		return nil
	}))
}
