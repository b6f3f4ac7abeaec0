// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package mapst

import (
	"cmp"
	"slices"
)

// Filter

func Filter[K comparable, V any, M ~map[K]V](m M, fn func(K, V) bool) M {
	result, _ := Filterx(m, func(k K, v V) (bool, error) {
		return fn(k, v), nil
	})
	return result
}

func Filterx[K comparable, V any, M ~map[K]V](m M, fn func(K, V) (bool, error)) (M, error) {
	result := make(M)
	for k, v := range m {
		ok, err := fn(k, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		result[k] = v
	}
	return result, nil
}

// Keys

func Keys[K comparable, V any, M ~map[K]V](m M) []K {
	result := make([]K, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any, M ~map[K]V](m M) []K {
	result := Keys(m)
	slices.Sort(result)
	return result
}
