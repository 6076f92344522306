package validation

import "strings"

// commonPasswords is a blocklist of frequently used passwords, drawn from
// the top of published breach corpora. Comparison is case-insensitive.
var commonPasswords = map[string]struct{}{}

func init() {
	for _, p := range []string{
		"123456", "123456789", "12345678", "12345", "1234567", "123123",
		"1234567890", "000000", "111111", "121212", "123321", "654321",
		"666666", "696969", "112233", "11111111", "87654321", "7777777",
		"555555", "222222", "1q2w3e4r", "1qaz2wsx", "qwerty", "qwerty123",
		"qwertyuiop", "asdfgh", "asdfghjkl", "asdfasdf", "asdf1234",
		"zxcvbnm", "qazwsx", "abc123", "abcd1234", "password", "password1",
		"password123", "passw0rd", "p@ssw0rd", "letmein", "welcome",
		"welcome1", "admin", "administrator", "root", "toor", "test",
		"test123", "testing", "guest", "changeme", "default", "secret",
		"dragon", "monkey", "shadow", "master", "superman", "batman",
		"trustno1", "iloveyou", "lovely", "sunshine", "princess", "flower",
		"hottie", "freedom", "whatever", "nicole", "jessica", "michael",
		"ashley", "daniel", "charlie", "jordan", "michelle", "andrew",
		"hunter", "joshua", "matthew", "tigger", "pepper", "ginger",
		"buster", "soccer", "hockey", "football", "baseball", "basketball",
		"jennifer", "thomas", "robert", "george", "harley", "ranger",
		"summer", "winter", "cookie", "chocolate", "cheese", "banana",
		"computer", "internet", "samsung", "pokemon", "starwars", "naruto",
		"maggie", "mustang", "corvette", "ferrari", "yamaha", "mercedes",
		"killer", "pussy", "fuckyou", "fuckme", "biteme", "access",
		"login", "pass", "hello", "hello123", "aaaaaa", "abcdef", "abcdefg",
		"1234", "0987654321", "zaq12wsx", "q1w2e3r4", "159753", "131313",
	} {
		commonPasswords[p] = struct{}{}
	}
}

// isCommonPassword reports whether the password appears on the blocklist.
func isCommonPassword(password string) bool {
	_, ok := commonPasswords[strings.ToLower(strings.TrimSpace(password))]
	return ok
}
