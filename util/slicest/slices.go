// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

// Map

func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

// MapX maps slice S to []U and stops at the first error.
func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	return MapXI(s, func(_ int, t T) (U, error) {
		return fn(t)
	})
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Unique

// Unique returns the elements of s without duplicates, keeping the first
// occurrence of each value in its original position.
func Unique[T comparable, S ~[]T](s S) S {
	seen := make(map[T]struct{}, len(s))
	result := make(S, 0, len(s))
	for _, t := range s {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

// Chunk

// Chunk splits s into consecutive sub-slices of at most size elements.
// The last chunk holds the remainder. A size below one yields no chunks.
func Chunk[T any, S ~[]T](s S, size int) []S {
	if size < 1 {
		return nil
	}
	result := make([]S, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		result = append(result, s[start:min(start+size, len(s))])
	}
	return result
}
