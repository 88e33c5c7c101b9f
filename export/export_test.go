package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/contract"
	"github.com/biblepay/go-gsc/quorum/mocks"
)

func TestExport(t *testing.T) {
	assessor := mocks.NewMockAssessor(gomock.NewController(t))
	dir := filepath.Join(t.TempDir(), "export")
	e := New(assessor,
		WithLogger(zaptest.NewLogger(t)),
		WithConfig(Config{Enabled: true, Dir: dir, Suffix: "testnet"}),
	)
	require.Equal(t, filepath.Join(dir, "dataexport_testnet"), e.Path())

	c := &contract.Contract{}
	c.Set(contract.TagAddresses, "Ba").Set(contract.TagPayments, "1.00")
	assessor.EXPECT().Assess(gomock.Any(), types.Height(410), false).Return(c, nil)
	require.NoError(t, e.Export(context.Background(), 410))
	data, err := os.ReadFile(e.Path())
	require.NoError(t, err)
	require.Equal(t, "<ADDRESSES>Ba</ADDRESSES><PAYMENTS>1.00</PAYMENTS>", string(data))

	// a failed assessment keeps the previous export
	assessor.EXPECT().Assess(gomock.Any(), types.Height(615), false).Return(nil, errors.New("no blocks"))
	require.Error(t, e.Export(context.Background(), 615))
	data, err = os.ReadFile(e.Path())
	require.NoError(t, err)
	require.Equal(t, "<ADDRESSES>Ba</ADDRESSES><PAYMENTS>1.00</PAYMENTS>", string(data))
}

func TestExportDisabled(t *testing.T) {
	assessor := mocks.NewMockAssessor(gomock.NewController(t))
	e := New(assessor, WithConfig(Config{Dir: t.TempDir()}))
	require.NoError(t, e.Export(context.Background(), 410))
	require.NoFileExists(t, e.Path())
}
