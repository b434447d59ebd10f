// Package safe converts node RPC integers into the unsigned widths used by
// headers, rejecting values that do not fit.
package safe

import (
	"fmt"
	"math"
)

// Uint32 converts a header version or nonce to uint32.
func Uint32[T ~int32 | ~uint32 | ~uint64](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts a signed height or block count to uint64.
func Uint64[T ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts a height to the int64 the node RPC expects.
func Int64[T ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}
