package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EmbeddedRecord is one embedded row from an uploaded document.
// The Fields mapping is schema-less: every upload brings its own column
// names, so canonical attributes are resolved by alias lookup (see the
// extract package). Records are created at ingestion and never mutated
// by the ranking pipeline.
type EmbeddedRecord struct {
	Id               ID
	SourceDocumentId string
	Fields           map[string]string // raw column name -> value, varies per upload
	Content          string            // flattened text used for embedding
	Vector           []float32         // embedding vector for semantic search
	CreatedAt        time.Time         // when the source row was ingested
	InsertedAt       time.Time         // when the record was inserted into the store
}

// SearchCriteria describes what the caller is looking for.
// Product and Industry are required; Region and Keywords are optional.
type SearchCriteria struct {
	Product  string
	Industry string
	Region   string
	Keywords []string
	Limit    int     // maximum number of leads to return
	MinScore float64 // minimum final score (0-100) for a qualified lead
}

// SubScores holds the seven weighted components of a lead's relevance
// score. Each component is in [0,1].
type SubScores struct {
	Region       float64
	Industry     float64
	Completeness float64
	Activity     float64
	Export       float64
	Engagement   float64
	Freshness    float64
}

// ScoredCandidate pairs a record with its similarity score, duplicate
// fingerprints, and relevance scoring. Request-scoped and ephemeral.
type ScoredCandidate struct {
	Record       *EmbeddedRecord
	Similarity   float64  // remapped cosine similarity in [0,1]
	Fingerprints []string // identity fingerprints, "<strategy>:<normalized value>"
	Sub          SubScores
	FinalScore   float64 // weighted total in [0,100]
}

// SimilarityMatch is a record matched by vector similarity search.
type SimilarityMatch struct {
	Record *EmbeddedRecord
	Score  float64
}

// Lead is the externally visible shape of a scored, deduplicated candidate.
type Lead struct {
	CompanyName    string
	Region         string
	Industry       string
	Email          string
	Phone          string
	Website        string
	ContactPerson  string
	FinalScore     int                // 0-100
	Priority       string             // "High", "Medium" or "Low"
	ScoreBreakdown map[string]float64 // per-criterion point contribution
	Fields         map[string]string
}

// LeadSearchResult is the response of a lead search.
// A zero qualified count is a normal terminal state, not an error: when
// candidates exist but none qualify, Leads carries a relaxed-threshold
// fallback list and Warning explains the degradation.
type LeadSearchResult struct {
	Leads          []*Lead
	TotalMatches   int    // candidates seen before threshold filtering
	QualifiedCount int    // candidates at or above MinScore
	Warning        string // non-empty when the fallback list is in use
}
