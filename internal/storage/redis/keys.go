package redis

import "fmt"

// Key prefix for all lexicon data
const keyPrefix = "scrabble"

// lexiconKey returns the Redis key for the SET of words in a lexicon
func lexiconKey(name string) string {
	return fmt.Sprintf("%s:lexicon:%s", keyPrefix, name)
}

// lexiconIndexKey returns the Redis key for the SET of known lexicon names
func lexiconIndexKey() string {
	return fmt.Sprintf("%s:idx:lexicons", keyPrefix)
}
