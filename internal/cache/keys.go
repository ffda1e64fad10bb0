package cache

import "strings"

const (
	GlobalKeyPrefix = "quizrunner"
)

// GenerateCacheKey builds "quizrunner:<service>:<objectType>:<identifier>".
func GenerateCacheKey(serviceName, objectType, identifier string) string {
	return strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
}

// ResultKey is the key of one finished quiz attempt.
func ResultKey(resultID string) string {
	return GenerateCacheKey("quiz", "result", resultID)
}
