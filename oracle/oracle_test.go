package oracle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/biblepay/go-gsc/common/types"
	"github.com/biblepay/go-gsc/system/mocks"
)

func TestCacheTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPriceOracle(ctrl)
	clock := clockwork.NewFakeClock()
	cache := NewCache(src, WithWallclock(clock), WithTTL(time.Hour), WithLogger(zaptest.NewLogger(t)))

	first := types.Quote{Price: 0.0005, BTCPrice: 9000, Phase: 1}
	src.EXPECT().Quote(gomock.Any()).Return(first, nil)
	q, err := cache.Quote(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, q)

	clock.Advance(59 * time.Minute)
	q, err = cache.Quote(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, q)

	second := types.Quote{Price: 0.0006, BTCPrice: 9100}
	clock.Advance(2 * time.Minute)
	src.EXPECT().Quote(gomock.Any()).Return(second, nil)
	q, err = cache.Quote(context.Background())
	require.NoError(t, err)
	require.Equal(t, second, q)
}

func TestCacheStaleOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPriceOracle(ctrl)
	clock := clockwork.NewFakeClock()
	cache := NewCache(src, WithWallclock(clock))

	src.EXPECT().Quote(gomock.Any()).Return(types.Quote{}, errors.New("down"))
	_, err := cache.Quote(context.Background())
	require.ErrorIs(t, err, ErrNoQuote)

	good := types.Quote{Price: 0.0004}
	src.EXPECT().Quote(gomock.Any()).Return(good, nil)
	q, err := cache.Quote(context.Background())
	require.NoError(t, err)
	require.Equal(t, good, q)

	clock.Advance(2 * time.Hour)
	src.EXPECT().Quote(gomock.Any()).Return(types.Quote{}, errors.New("down"))
	q, err = cache.Quote(context.Background())
	require.NoError(t, err)
	require.Equal(t, good, q)
}

func TestCacheNonPositivePriceNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPriceOracle(ctrl)
	cache := NewCache(src, WithWallclock(clockwork.NewFakeClock()))

	src.EXPECT().Quote(gomock.Any()).Return(types.Quote{}, nil).Times(2)
	for range 2 {
		q, err := cache.Quote(context.Background())
		require.NoError(t, err)
		require.Zero(t, q.Price)
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"price": 0.00045, "btc": 10250.5, "phase": 2}`)
	}))
	t.Cleanup(srv.Close)

	q, err := NewHTTPSource(srv.URL, time.Second, 0, time.Millisecond).Quote(context.Background())
	require.NoError(t, err)
	require.Equal(t, types.Quote{Price: 0.00045, BTCPrice: 10250.5, Phase: 2}, q)
}

func TestHTTPSourceBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	t.Cleanup(srv.Close)

	_, err := NewHTTPSource(srv.URL, time.Second, 0, time.Millisecond).Quote(context.Background())
	require.Error(t, err)
}

func TestNewStatic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Price = 0.001
	cfg.BTCPrice = 9000
	q, err := New(cfg).Quote(context.Background())
	require.NoError(t, err)
	require.Equal(t, types.Quote{Price: 0.001, BTCPrice: 9000}, q)
}
