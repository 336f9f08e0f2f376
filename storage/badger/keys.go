package badger

import "fmt"

// Key prefixes for different data types
const (
	candidateRecordPrefix = "canrec"
)

// makeCandidateKey generates a key for a candidate record by ID.
func makeCandidateKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", candidateRecordPrefix, id))
}
