package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want Spacing
	}{
		{"25%", Spacing{25, "%"}},
		{"50", Spacing{50, ""}},
		{"100px", Spacing{100, "px"}},
		{"100EM", Spacing{100, "em"}},
		{" 12.5% ", Spacing{12.5, "%"}},
		{".5rem", Spacing{0.5, "rem"}},
		{"1e2", Spacing{100, ""}},
		{"+10", Spacing{10, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpacing(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpacing_Invalid(t *testing.T) {
	for _, in := range []string{"", "0", "0%", "0px", "-5", "-25%", "twenty-five", "abc", "10 px", "%", "1e999"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSpacing(in)
			assert.ErrorIs(t, err, ErrInvalidFidelity)
		})
	}
}

func TestStopCount(t *testing.T) {
	tests := []struct {
		name    string
		spacing Spacing
		columns int
		want    int
	}{
		{"default fidelity", Spacing{25, "%"}, 1000, 4},
		{"half", Spacing{50, "%"}, 1000, 2},
		{"percent ignores width", Spacing{25, "%"}, 40, 4},
		{"bare pixels", Spacing{100, ""}, 1000, 10},
		{"px", Spacing{100, "px"}, 1000, 10},
		{"em", Spacing{100, "em"}, 1000, 10},
		{"rounds up", Spacing{30, "%"}, 1000, 4},
		{"rounds up pixels", Spacing{300, "px"}, 1000, 4},
		{"at least two", Spacing{100, "%"}, 1000, 2},
		{"spacing wider than image", Spacing{5000, ""}, 1000, 2},
		{"capped at columns", Spacing{1, "%"}, 20, 20},
		{"capped at MaxStops", Spacing{0.01, ""}, 5000, MaxStops},
		{"tiny image", Spacing{10, "%"}, 1, 2},
		{"tiny pixel spacing", Spacing{1e-17, ""}, 1000, 1000},
		{"subnormal pixel spacing", Spacing{1e-300, ""}, 1000, 1000},
		{"tiny percent", Spacing{1e-17, "%"}, 1000, 1000},
		{"subnormal percent", Spacing{1e-310, "%"}, 1000, 1000},
		{"tiny spacing wide image", Spacing{1e-300, "px"}, 5000, MaxStops},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StopCount(tt.spacing, tt.columns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStopCount_UnitInvariance(t *testing.T) {
	var counts []int
	for _, unit := range []string{"", "px", "em", "rem", "vw", "pt"} {
		n, err := StopCount(Spacing{100, unit}, 1000)
		require.NoError(t, err)
		counts = append(counts, n)
	}
	for _, n := range counts {
		assert.Equal(t, counts[0], n)
	}
}

func TestStopCount_Monotonic(t *testing.T) {
	prev := 0
	for _, raw := range []string{"500", "100", "1", "0.001", "1e-15", "1e-17", "1e-300"} {
		sp, err := ParseSpacing(raw)
		require.NoError(t, err)
		n, err := StopCount(sp, 1000)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prev, "spacing %s", raw)
		prev = n
	}
	assert.Equal(t, 1000, prev)
}

func TestStopCount_Invalid(t *testing.T) {
	_, err := StopCount(Spacing{0, "%"}, 100)
	assert.ErrorIs(t, err, ErrInvalidFidelity)

	_, err = StopCount(Spacing{-1, ""}, 100)
	assert.ErrorIs(t, err, ErrInvalidFidelity)
}

func TestEffective(t *testing.T) {
	sp, err := Effective("", DefaultFidelity)
	require.NoError(t, err)
	assert.Equal(t, Spacing{25, "%"}, sp)

	sp, err = Effective("  ", DefaultFidelity)
	require.NoError(t, err)
	assert.Equal(t, Spacing{25, "%"}, sp, "blank inline spacing counts as absent")

	sp, err = Effective("50%", DefaultFidelity)
	require.NoError(t, err)
	assert.Equal(t, Spacing{50, "%"}, sp, "inline spacing overrides fidelity")

	inline, err := Effective("100", DefaultFidelity)
	require.NoError(t, err)
	configured, err := Effective("", "100")
	require.NoError(t, err)
	assert.Equal(t, inline, configured)

	n, err := StopCount(inline, 1000)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
}

func TestEffective_Invalid(t *testing.T) {
	_, err := Effective("0", DefaultFidelity)
	assert.ErrorIs(t, err, ErrInvalidFidelity)

	_, err = Effective("", "0")
	assert.ErrorIs(t, err, ErrInvalidFidelity)

	_, err = Effective("twenty-five", DefaultFidelity)
	assert.ErrorIs(t, err, ErrInvalidFidelity)

	// Only the value in effect is validated here; configured fidelity is
	// checked separately when a transformer is built.
	sp, err := Effective("50%", "0")
	require.NoError(t, err)
	assert.Equal(t, Spacing{50, "%"}, sp)
}

func TestSpacing_String(t *testing.T) {
	assert.Equal(t, "12.5%", Spacing{12.5, "%"}.String())
	assert.Equal(t, "100px", Spacing{100, "px"}.String())
}
