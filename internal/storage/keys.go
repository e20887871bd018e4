package storage

import "fmt"

// SchemaVersion is part of every key. Bump it whenever a stored shape
// changes so older snapshots are ignored instead of decoded.
//
// Version 4 stores the primary user as an empty payerId; earlier versions
// used the magic id "1".
const SchemaVersion = 4

// Collection names one stored entity collection.
type Collection string

const (
	CollectionRoommates Collection = "roommates"
	CollectionExpenses  Collection = "expenses"
	CollectionUtilities Collection = "utilities"
)

// Key returns the versioned store key for a collection.
func Key(c Collection) string {
	return fmt.Sprintf("roomease/v%d/%s", SchemaVersion, c)
}
