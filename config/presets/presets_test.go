package presets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetsAreValid(t *testing.T) {
	for _, name := range Options() {
		t.Run(name, func(t *testing.T) {
			conf, err := Get(name)
			require.NoError(t, err)
			require.NoError(t, conf.Validate())
		})
	}
}

func TestGet(t *testing.T) {
	require.Equal(t, []string{"mainnet", "testnet"}, Options())

	_, err := Get("fastnet")
	require.ErrorContains(t, err, "not registered")

	conf, err := Get("testnet")
	require.NoError(t, err)
	require.Equal(t, uint32(1435), conf.Watchman.Schedule.Cycle)
	require.Equal(t, byte(140), conf.Watchman.Addresses.PubKeyHash)

	conf.Sporks["mutated"] = 1
	again, err := Get("testnet")
	require.NoError(t, err)
	require.NotContains(t, again.Sporks, "mutated")
}
