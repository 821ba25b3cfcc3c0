package redis

import "fmt"

// Key prefix for all league data
const keyPrefix = "hooplog"

// playerKey returns the Redis key for a roster row
func playerKey(name string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, name)
}

// rosterIndexKey returns the Redis key for the SET of registered player names
func rosterIndexKey() string {
	return fmt.Sprintf("%s:idx:roster", keyPrefix)
}

// statsKey returns the Redis key for the LIST of a player's stat entries
func statsKey(name string) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, name)
}

// statOwnersIndexKey returns the Redis key for the SET of names with stat rows
func statOwnersIndexKey() string {
	return fmt.Sprintf("%s:idx:stat_owners", keyPrefix)
}
