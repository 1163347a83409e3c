package validators

// Pesos do dígito verificador do PESEL.
var peselWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// IsPeselValid confere formato e checksum do PESEL (11 dígitos).
func IsPeselValid(pesel string) bool {
	if len(pesel) != 11 {
		return false
	}

	digits := make([]int, 11)
	for i, r := range pesel {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	sum := 0
	for i, w := range peselWeights {
		sum += digits[i] * w
	}

	check := (10 - sum%10) % 10
	return check == digits[10]
}
