package crypto

// normalizeShift folds any integer into [0,26).
func normalizeShift(shift int) int {
	shift %= alphabetSize
	if shift < 0 {
		shift += alphabetSize
	}
	return shift
}

// shiftLetter moves a letter forward by shift positions, keeping its case.
// shift must already be in [0,26).
func shiftLetter(c byte, shift int) byte {
	base := byte('a')
	if isUpper(c) {
		base = 'A'
	}
	return byte((int(c-base)+shift)%alphabetSize) + base
}

func CaesarEncrypt(plaintext string, shift int) string {
	shift = normalizeShift(shift)
	ciphertext := make([]byte, len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		c := plaintext[i]
		if isLetter(c) {
			ciphertext[i] = shiftLetter(c, shift)
		} else {
			ciphertext[i] = c
		}
	}
	return string(ciphertext)
}

func CaesarDecrypt(ciphertext string, shift int) string {
	return CaesarEncrypt(ciphertext, alphabetSize-normalizeShift(shift))
}
