// Package store persists the meal planner document. Stores are dumb byte
// sinks: the whole serialized document is read and written in one piece,
// which keeps every save a last-writer-wins overwrite.
package store

// DocumentStore reads and writes the serialized document as a whole.
type DocumentStore interface {
	// Read returns the stored document bytes. The bool is false when no
	// document has been stored yet.
	Read() ([]byte, bool, error)
	// Write replaces the stored document.
	Write(data []byte) error
}
