package crypto

const alphabetSize = 26

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

func toUpper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

// Sanitize drops every byte that is not an ASCII letter and upper-cases the rest.
func Sanitize(text string) string {
	result := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if isLetter(text[i]) {
			result = append(result, toUpper(text[i]))
		}
	}
	return string(result)
}
