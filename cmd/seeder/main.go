package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/prospekt/leadrank"
	"github.com/prospekt/leadrank/ingest"
)

// Built-in sample records for local development.
var samples = []ingest.RawRecord{
	{
		SourceDocumentId: "samples",
		Fields: map[string]string{
			"company":  "Mumbai Textiles Ltd",
			"city":     "Mumbai",
			"country":  "India",
			"industry": "Textiles",
			"email":    "sales@mumbaitextiles.example",
			"phone":    "+91 22 4000 1234",
			"website":  "https://mumbaitextiles.example",
			"contact":  "Priya Shah",
		},
		Content: "Mumbai Textiles Ltd is a verified exporter of sari, women garments and cotton fabrics across India and overseas markets.",
	},
	{
		SourceDocumentId: "samples",
		Fields: map[string]string{
			"company":  "Chennai Garments Co",
			"city":     "Chennai",
			"country":  "India",
			"industry": "Apparel",
			"email":    "hello@chennaigarments.example",
			"phone":    "+91 44 2600 7890",
			"contact":  "Arun Mehta",
		},
		Content: "Chennai Garments Co manufactures ready-made women garments and supplies wholesale buyers internationally.",
	},
	{
		SourceDocumentId: "samples",
		Fields: map[string]string{
			"company":  "Dhaka Knitwear Mills",
			"city":     "Dhaka",
			"country":  "Bangladesh",
			"industry": "Textiles",
			"email":    "export@dhakaknitwear.example",
			"phone":    "+880 2 5566 7788",
		},
		Content: "Dhaka Knitwear Mills is a large knitwear factory with active export trade in knitted garments.",
	},
	{
		SourceDocumentId: "samples",
		Fields: map[string]string{
			"company":  "Hanoi Silk Trading",
			"city":     "Hanoi",
			"country":  "Vietnam",
			"industry": "Silk",
			"email":    "contact@hanoisilk.example",
		},
		Content: "Hanoi Silk Trading deals in premium silk fabrics and traditional garments for global distributors.",
	},
	{
		SourceDocumentId: "samples",
		Fields: map[string]string{
			"company": "Nordic Auto Parts AS",
			"city":    "Oslo",
			"country": "Norway",
		},
		Content: "Nordic Auto Parts AS distributes automotive spare parts in Scandinavia.",
	},
	{
		SourceDocumentId: "samples",
		Fields: map[string]string{
			"company":  "Karachi Cotton House",
			"city":     "Karachi",
			"country":  "Pakistan",
			"industry": "Textiles",
			"phone":    "+92 21 3456 7890",
			"contact":  "Sana Iqbal",
		},
		Content: "Karachi Cotton House trades raw cotton and woven fabrics with importers in the Middle East.",
	},
}

var (
	dbPath       = flag.String("db", "./leads_db", "path to BadgerDB database directory")
	seedFileName = flag.String("src", "", "JSON Lines file of records to seed")
	batchSize    = flag.Int("batch-size", 25, "records per ingestion batch")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// recordsFromFile returns an iterator over records in a JSON Lines file.
// Malformed lines are logged and skipped.
func recordsFromFile(filename string) (iter.Seq[ingest.RawRecord], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(ingest.RawRecord) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}

			var record struct {
				SourceDocumentId string            `json:"source_document_id"`
				Fields           map[string]string `json:"fields"`
				Content          string            `json:"content"`
				Vector           any               `json:"vector"`
			}
			if err := json.Unmarshal(line, &record); err != nil {
				slog.Warn("skipping malformed line", "error", err)
				continue
			}

			if !yield(ingest.RawRecord{
				SourceDocumentId: record.SourceDocumentId,
				Fields:           record.Fields,
				Content:          record.Content,
				Vector:           record.Vector,
			}) {
				return
			}
		}
	}, nil
}

func recordsFromSlice(records []ingest.RawRecord) iter.Seq[ingest.RawRecord] {
	return func(yield func(ingest.RawRecord) bool) {
		for _, record := range records {
			if !yield(record) {
				return
			}
		}
	}
}

// ingestBatched reads from a source iterator and ingests records in batches.
func ingestBatched(ctx context.Context, pipeline *ingest.Pipeline, source iter.Seq[ingest.RawRecord], batchSize int) (ingest.Stats, error) {
	var total ingest.Stats

	batch := make([]ingest.RawRecord, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		stats, err := pipeline.Ingest(ctx, batch...)
		total.Stored += stats.Stored
		total.Embedded += stats.Embedded
		total.Skipped += stats.Skipped
		batch = batch[:0]
		return err
	}

	for record := range source {
		batch = append(batch, record)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	return total, flush()
}

func main() {
	db, err := leadrank.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestPipeline()
	if err != nil {
		panic(err)
	}

	var source iter.Seq[ingest.RawRecord]
	if *seedFileName != "" {
		source, err = recordsFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = recordsFromSlice(samples)
	}

	stats, err := ingestBatched(context.Background(), pipeline, source, *batchSize)
	if err != nil {
		panic(err)
	}

	slog.Info("seeding complete",
		"stored", stats.Stored, "embedded", stats.Embedded, "skipped", stats.Skipped)
}
