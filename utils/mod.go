package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// Remove deletes the first occurrence of item, keeping the order of the rest.
// The input slice is not modified.
func Remove[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	result := make([]T, 0, len(slice)-1)
	result = append(result, slice[:i]...)
	return append(result, slice[i+1:]...), true
}
