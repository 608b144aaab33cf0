package insights

import (
	"strconv"
	"strings"
)

// All quantity normalization lives in this file. Parsing never fails:
// a malformed encoding contributes 0 so a single bad field cannot abort
// aggregation of an otherwise valid inventory. Swap the policy here if a
// strict mode is ever needed.

const (
	bytesPerGiB  = 1024.0 * 1024.0 * 1024.0
	mibPerGiB    = 1024.0
	milliPerCore = 1000.0
)

// memory suffix table, two-character binary suffixes checked before the
// one-character decimal ones.
var memoryUnits = []struct {
	suffix     string
	multiplier float64
}{
	{"Ki", 1024.0},
	{"Mi", 1024.0 * 1024.0},
	{"Gi", 1024.0 * 1024.0 * 1024.0},
	{"Ti", 1024.0 * 1024.0 * 1024.0 * 1024.0},
	{"K", 1000.0},
	{"M", 1000.0 * 1000.0},
	{"G", 1000.0 * 1000.0 * 1000.0},
	{"T", 1000.0 * 1000.0 * 1000.0 * 1000.0},
}

// ParseCores converts a CPU quantity encoding to cores.
// "500m" is millicores, "2" or "0.5" is whole cores.
// Empty or unparseable input yields 0.
func ParseCores(raw string) float64 {
	if raw == "" {
		return 0
	}

	if strings.HasSuffix(raw, "m") {
		millicores, err := strconv.ParseFloat(raw[:len(raw)-1], 64)
		if err == nil {
			return millicores / milliPerCore
		}
	}

	cores, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return cores
}

// ParseGiB converts a memory quantity encoding to gibibytes.
// Binary suffixes (Ki, Mi, Gi, Ti) and decimal ones (K, M, G, T) are both
// accepted; a bare number is raw bytes. The result is always in GiB no
// matter which unit family the source used.
// Empty or unparseable input yields 0.
func ParseGiB(raw string) float64 {
	if raw == "" {
		return 0
	}

	multiplier := 1.0
	numeric := raw

	for _, unit := range memoryUnits {
		if strings.HasSuffix(raw, unit.suffix) {
			multiplier = unit.multiplier
			numeric = raw[:len(raw)-len(unit.suffix)]

			break
		}
	}

	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0
	}

	return value * multiplier / bytesPerGiB
}

// ToMillicores converts cores to whole millicores, truncating toward zero.
func ToMillicores(cores float64) int64 {
	return int64(cores * milliPerCore)
}

// ToMebibytes converts gibibytes to whole mebibytes, truncating toward zero.
func ToMebibytes(gib float64) int64 {
	return int64(gib * mibPerGiB)
}
