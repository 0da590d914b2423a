package ports

// KV is the persistence facade: a durable key-value service that stores each
// named collection as one serialized blob. Writes are whole-collection
// overwrites, best effort, not retried. A missing key is not an error; Load
// reports it through ok=false.
//
// Any adapter (SQLite file, in-memory for tests) implements this contract;
// the state container only knows this interface.
type KV interface {
	// Load returns the serialized collection stored under key, with ok=false
	// when the key has never been written.
	Load(key string) (data []byte, ok bool, err error)

	// Save overwrites the collection stored under key.
	Save(key string, data []byte) error
}
