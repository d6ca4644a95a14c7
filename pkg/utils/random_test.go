package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomInt(t *testing.T) {
	// Test with min and max as 0
	min := int64(0)
	max := int64(0)
	randomValue := RandomInt(min, max)
	require.Equal(t, int64(0), randomValue, "Random value should be 0 when min and max are both 0")

	// Test with a positive range
	min = int64(10)
	max = int64(20)
	randomValue = RandomInt(min, max)
	require.True(t, min <= randomValue && randomValue <= max)

	// Test with a negative range
	min = int64(-100)
	max = int64(-50)
	randomValue = RandomInt(min, max)
	require.True(t, min <= randomValue && randomValue <= max)
}

func TestRandomString(t *testing.T) {
	// Test with n = 0
	n := 0
	randomString := RandomString(n)
	require.Equal(t, "", randomString, "RandomString should return an empty string when n is 0")

	// Test with n = 10
	n = 10
	randomString = RandomString(n)
	require.Equal(t, n, len(randomString))

	// Test with the alphabet characters
	randomString = RandomString(1000)
	require.True(t, isStringInAlphabet(randomString), "RandomString should only contain characters from the alphabet")
}

func TestRandomElement(t *testing.T) {
	values := []string{"one", "two", "three"}
	for i := 0; i < 10; i++ {
		require.Contains(t, values, RandomElement(values))
	}
}

func TestGenerateRoles(t *testing.T) {
	developers := GenerateDeveloperRoles()
	engineers := GenerateEngineerRoles()

	require.Len(t, developers, len(qualifiers)*len(languages))
	require.Len(t, engineers, len(qualifiers)*len(languages))
	require.Contains(t, developers, "Senior Go Developer")
	require.Contains(t, engineers, "Junior Java Engineer")
}

// Helper function to check if a string consists only of characters from the alphabet
func isStringInAlphabet(randomString string) bool {
	for _, char := range randomString {
		if !strings.ContainsRune(alphabet, char) {
			return false
		}
	}
	return true
}
