// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package database

import (
	"fmt"
	"math/big"

	"github.com/duckdb/duckdb-go/v2"
)

// normalizeValue converts driver-native values into plain JSON-friendly Go
// values. Integers become int64, decimals float64, blobs string. Lists,
// structs and maps are normalized recursively; time.Time is kept.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if x <= 1<<63-1 {
			return int64(x)
		}
		return float64(x)
	case float32:
		return float64(x)
	case *big.Int:
		return bigIntValue(x)
	case duckdb.Decimal:
		return x.Float64()
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = normalizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = normalizeValue(item)
		}
		return out
	case duckdb.Map:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[fmt.Sprint(normalizeValue(k))] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// bigIntValue returns HUGEINT values as int64 when they fit, float64 otherwise.
func bigIntValue(x *big.Int) any {
	if x == nil {
		return nil
	}
	if x.IsInt64() {
		return x.Int64()
	}
	f, _ := new(big.Float).SetInt(x).Float64()
	return f
}
