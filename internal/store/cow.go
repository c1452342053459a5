package store

import "github.com/samber/lo"

// Helpers that always return freshly allocated collections so committed states are never aliased.

func replaceAt[T any](list []T, i int, v T) []T {
	out := make([]T, len(list))
	copy(out, list)
	out[i] = v
	return out
}

func appendTo[T any](list []T, v ...T) []T {
	out := make([]T, 0, len(list)+len(v))
	out = append(out, list...)
	return append(out, v...)
}

func withKey[V any](m map[string]V, key string, v V) map[string]V {
	return lo.Assign(m, map[string]V{key: v})
}

func keepKeys[V any](m map[string]V, keep func(string) bool) map[string]V {
	return lo.PickBy(m, func(k string, _ V) bool { return keep(k) })
}

func toggle(set []string, id string) ([]string, bool) {
	if lo.Contains(set, id) {
		return lo.Without(set, id), false
	}
	return appendTo(set, id), true
}
