package views

import "strconv"

func itoa(i int) string {
	return strconv.Itoa(i)
}

func atoi(s string, fallback int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 {
		return fallback
	}
	return i
}
