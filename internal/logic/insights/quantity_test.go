package insights_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alpha-hack-program/cluster-insights/internal/logic/insights"
)

const quantityDelta = 1e-9

type parseCoresCase struct {
	name string
	give string
	want float64
}

func TestParseCores(t *testing.T) {
	t.Parallel()

	tests := []parseCoresCase{
		{
			name: "empty string is zero",
			give: "",
			want: 0,
		},
		{
			name: "millicores",
			give: "500m",
			want: 0.5,
		},
		{
			name: "small millicores",
			give: "100m",
			want: 0.1,
		},
		{
			name: "whole cores",
			give: "2",
			want: 2,
		},
		{
			name: "fractional cores",
			give: "0.5",
			want: 0.5,
		},
		{
			name: "large millicores exceed one core",
			give: "2500m",
			want: 2.5,
		},
		{
			name: "garbage is zero",
			give: "abc",
			want: 0,
		},
		{
			name: "garbage with milli suffix is zero",
			give: "abcm",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.InDelta(t, tt.want, insights.ParseCores(tt.give), quantityDelta)
		})
	}
}

type parseGiBCase struct {
	name string
	give string
	want float64
}

func TestParseGiB(t *testing.T) {
	t.Parallel()

	tests := []parseGiBCase{
		{
			name: "empty string is zero",
			give: "",
			want: 0,
		},
		{
			name: "mebibytes",
			give: "512Mi",
			want: 0.5,
		},
		{
			name: "gibibytes",
			give: "1Gi",
			want: 1,
		},
		{
			name: "kibibytes",
			give: "1024Ki",
			want: 1.0 / 1024.0,
		},
		{
			name: "tebibytes",
			give: "1Ti",
			want: 1024,
		},
		{
			name: "decimal gigabytes are smaller than gibibytes",
			give: "1G",
			want: 1e9 / float64(1<<30),
		},
		{
			name: "decimal megabytes",
			give: "100M",
			want: 1e8 / float64(1<<30),
		},
		{
			name: "decimal kilobytes",
			give: "1K",
			want: 1e3 / float64(1<<30),
		},
		{
			name: "decimal terabytes",
			give: "1T",
			want: 1e12 / float64(1<<30),
		},
		{
			name: "bare number is bytes",
			give: "1073741824",
			want: 1,
		},
		{
			name: "fractional gibibytes",
			give: "1.5Gi",
			want: 1.5,
		},
		{
			name: "garbage is zero",
			give: "lots",
			want: 0,
		},
		{
			name: "garbage with unit suffix is zero",
			give: "xGi",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.InDelta(t, tt.want, insights.ParseGiB(tt.give), quantityDelta)
		})
	}
}

func TestSubUnitConversions(t *testing.T) {
	t.Parallel()

	t.Run("half a core is 500 millicores", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, int64(500), insights.ToMillicores(0.5))
	})

	t.Run("half a GiB is 512 MiB", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, int64(512), insights.ToMebibytes(0.5))
	})

	t.Run("zero stays zero", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, int64(0), insights.ToMillicores(0))
		require.Equal(t, int64(0), insights.ToMebibytes(0))
	})
}
