package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/prospekt/leadrank/core"
)

// Key prefixes for different data types
const (
	recordPrefix       = "ldrec"
	recordRecentPrefix = "ldrecd"
	recordSourcePrefix = "ldrecs"
	recordIDSeq        = "ldrecseq"
)

// makeRecordKey generates a key for a record by ID.
func makeRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", recordPrefix, id))
}

// makeRecentKey generates a composite key for the recency index.
// Format: prefix:timestamp:id
func makeRecentKey(timestamp time.Time, id core.ID) []byte {
	prefix := recordRecentPrefix + ":"
	buf := make([]byte, len(prefix)+16) // 8 bytes timestamp + 8 bytes ID
	offset := copy(buf, prefix)
	// BigEndian so lexicographic sort matches chronological order
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialRecentKey generates a partial recency key for range seeks.
func makePartialRecentKey(timestamp time.Time) []byte {
	prefix := recordRecentPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeSourceKey generates a composite key for the source-document index.
// Format: prefix:source\x00id
func makeSourceKey(sourceDocumentId string, id core.ID) []byte {
	prefix := recordSourcePrefix + ":" + sourceDocumentId + "\x00"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialSourceKey generates the prefix covering one source document.
func makePartialSourceKey(sourceDocumentId string) []byte {
	return []byte(recordSourcePrefix + ":" + sourceDocumentId + "\x00")
}
