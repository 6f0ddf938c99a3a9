package model

import "strconv"

// FormatAmount formats the given value as a price with two decimals
// and a comma as the thousands separator.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}
	whole := s[:len(s)-3]
	decimals := s[len(s)-3:]
	grouped := make([]byte, 0, len(whole)+len(whole)/3)
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, whole[i])
	}
	return sign + string(grouped) + decimals
}
