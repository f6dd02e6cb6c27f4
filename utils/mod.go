package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Remove returns a new slice without the first occurrence of item.
func Remove[T comparable](slice []T, item T) ([]T, bool) {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice, false
	}
	rest := make([]T, 0, len(slice)-1)
	rest = append(rest, slice[:i]...)
	return append(rest, slice[i+1:]...), true
}
