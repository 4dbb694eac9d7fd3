package keygen

import (
	"crypto/rand"
	"math/big"
)

const lowerAlphaNumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// SnippetUIDLength is the length of public snippet identifiers
const SnippetUIDLength = 12

// GenerateSnippetUID generates a random public identifier for a snippet.
// The uid is what appears in URLs, never the database key.
func GenerateSnippetUID() (string, error) {
	return randomString(SnippetUIDLength, lowerAlphaNumeric)
}

// randomString generates a random string of given length from the given charset
func randomString(length int, charset string) (string, error) {
	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = charset[num.Int64()]
	}

	return string(result), nil
}
