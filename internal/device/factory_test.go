package device

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestNewFactory_LineUps verifies which brands each appliance factory manufactures.
func TestNewFactory_LineUps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		brand   string
		light   string
		cam     string
		tv      string
		speaker string
	}{
		{brand: "samsung", light: "Philips", cam: "Samsung", tv: "Samsung", speaker: "Bose"},
		{brand: " Premium", light: "Philips", cam: "Xiaomi", tv: "LG", speaker: "Sonos"},
	}

	for _, tc := range cases {
		f, err := NewFactory(tc.brand, zap.NewNop().Sugar())
		require.NoError(t, err)

		require.Equal(t, tc.light, f.CreateLight().Brand())
		require.Equal(t, tc.cam, f.CreateCamera().Brand())
		require.Equal(t, tc.tv, f.CreateTV().Brand())
		require.Equal(t, tc.speaker, f.CreateSoundSystem().Brand())
		require.Equal(t, KindLight, f.CreateLight().Kind())
	}

	_, err := NewFactory("acme", nil)
	require.ErrorIs(t, err, ErrUnknownBrand)
}

// TestNewDetectorFactory_Pairs verifies both detector factories and their hazards.
func TestNewDetectorFactory_Pairs(t *testing.T) {
	t.Parallel()

	nest, err := NewDetectorFactory("nest", zap.NewNop().Sugar())
	require.NoError(t, err)

	smoke := nest.CreateSmokeDetector()
	require.Equal(t, "Nest", smoke.Brand())
	require.Equal(t, HazardSmoke, smoke.Hazard())
	require.Equal(t, KindSmokeDetector, smoke.Kind())
	require.Equal(t, HazardGas, nest.CreateGasDetector().Hazard())

	budget, err := NewDetectorFactory("budget", zap.NewNop().Sugar())
	require.NoError(t, err)
	require.Equal(t, "First Alert", budget.CreateSmokeDetector().Brand())
	require.Equal(t, "Kidde", budget.CreateGasDetector().Brand())

	_, err = NewDetectorFactory("cheapest", nil)
	require.ErrorIs(t, err, ErrUnknownBrand)
}

// TestSimpleFactory_CreateDevice builds every known type and rejects unknown ones.
func TestSimpleFactory_CreateDevice(t *testing.T) {
	t.Parallel()

	f := SimpleFactory{Log: zap.NewNop().Sugar()}

	for typ, name := range typeNames {
		d, err := f.CreateDevice(typ)
		require.NoError(t, err, name)
		require.NotNil(t, d, name)

		parsed, err := ParseType(name)
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}

	_, err := f.CreateDevice(TypeUnknown)
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = ParseType("toaster")
	require.ErrorIs(t, err, ErrUnknownType)
}

// TestSimpleFactory_CreateDeviceByInput maps console shortcuts and brand choices.
func TestSimpleFactory_CreateDeviceByInput(t *testing.T) {
	t.Parallel()

	f := SimpleFactory{Log: zap.NewNop().Sugar()}

	cases := []struct {
		shortcut rune
		brand    int
		want     string
		kind     Kind
	}{
		{'L', 1, "Philips", KindLight},
		{'l', 2, "IKEA", KindLight},
		{'C', 1, "Samsung", KindCamera},
		{'c', 7, "Xiaomi", KindCamera},
		{'T', 1, "Samsung", KindTelevision},
		{'t', 2, "LG", KindTelevision},
		{'S', 1, "Sonos", KindSoundSystem},
		{'s', 2, "Bose", KindSoundSystem},
		{'D', 1, "Nest", KindSmokeDetector},
		{'d', 2, "First Alert", KindSmokeDetector},
	}

	for _, tc := range cases {
		d, err := f.CreateDeviceByInput(tc.shortcut, tc.brand)
		require.NoError(t, err)
		require.Equal(t, tc.want, d.Brand(), string(tc.shortcut))
		require.Equal(t, tc.kind, d.Kind(), string(tc.shortcut))
	}

	_, err := f.CreateDeviceByInput('X', 1)
	require.ErrorIs(t, err, ErrUnknownInput)
}
