package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Contains reports whether item is in slice.
func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}
