// GameSphere - Game and Teammate Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamesphere

package recommend

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// CacheKeyPrefix namespaces recommendation cache keys.
const CacheKeyPrefix = "ai:recommend:"

// CacheKey returns "ai:recommend:{userID}:{sha256(StableStringify(payload))}".
//
// payload is any JSON-encodable value; it is round-tripped through JSON so
// that struct field order and Go types do not affect the key.
func CacheKey(userID string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal cache payload: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return "", fmt.Errorf("unmarshal cache payload: %w", err)
	}

	sum := sha256.Sum256([]byte(StableStringify(generic)))
	return CacheKeyPrefix + userID + ":" + hex.EncodeToString(sum[:]), nil
}

// StableStringify renders a decoded JSON value with object keys sorted.
// Objects render as {k:v,...}, arrays as [a,b], null as the empty string and
// scalars in their plain text form.
func StableStringify(value any) string {
	var b strings.Builder
	writeStable(&b, value)
	return b.String()
}

func writeStable(b *strings.Builder, value any) {
	switch v := value.(type) {
	case nil:
	case []any:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeStable(b, item)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte(':')
			writeStable(b, v[k])
		}
		b.WriteByte('}')
	case string:
		b.WriteString(v)
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	case json.Number:
		b.WriteString(v.String())
	default:
		fmt.Fprint(b, v)
	}
}
