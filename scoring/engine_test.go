package scoring

import (
	"testing"
	"time"

	"github.com/prospekt/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	return e
}

func recordWith(fields map[string]string, content string) *core.EmbeddedRecord {
	return &core.EmbeddedRecord{Fields: fields, Content: content}
}

func TestScoreRegion(t *testing.T) {
	t.Run("exact city match", func(t *testing.T) {
		r := recordWith(map[string]string{"City": "Mumbai"}, "")
		assert.Equal(t, 1.0, scoreRegion(r, "Mumbai"))
	})

	t.Run("city substring match", func(t *testing.T) {
		r := recordWith(map[string]string{"City": "Navi Mumbai East"}, "")
		assert.Equal(t, 1.0, scoreRegion(r, "mumbai"))
	})

	t.Run("no region supplied is neutral", func(t *testing.T) {
		r := recordWith(map[string]string{"City": "Mumbai"}, "anything")
		assert.Equal(t, 0.5, scoreRegion(r, ""))
		assert.Equal(t, 0.5, scoreRegion(recordWith(nil, ""), "  "))
	})

	t.Run("address field match", func(t *testing.T) {
		r := recordWith(map[string]string{"Address": "12 Link Rd, Mumbai 400001"}, "")
		assert.Equal(t, 0.95, scoreRegion(r, "mumbai"))
	})

	t.Run("free text outranks structured country field", func(t *testing.T) {
		r := recordWith(
			map[string]string{"Country": "India"},
			"leading exporter based in india",
		)
		assert.Equal(t, 0.92, scoreRegion(r, "india"))
	})

	t.Run("country field match", func(t *testing.T) {
		r := recordWith(map[string]string{"Country": "Republic of Turkey"}, "carpet weaving workshop")
		assert.Equal(t, 0.85, scoreRegion(r, "turkey"))
	})

	t.Run("known city alias", func(t *testing.T) {
		r := recordWith(map[string]string{"City": "Bengaluru"}, "")
		assert.Equal(t, 0.88, scoreRegion(r, "bangalore"))
	})

	t.Run("dialing code", func(t *testing.T) {
		r := recordWith(map[string]string{"Phone": "+91 98200 12345"}, "garment factory")
		assert.Equal(t, 0.75, scoreRegion(r, "india"))
	})

	t.Run("state alias", func(t *testing.T) {
		r := recordWith(nil, "mills across maharashtra")
		assert.Equal(t, 0.65, scoreRegion(r, "india"))
	})

	t.Run("fuzzy prefix", func(t *testing.T) {
		r := recordWith(map[string]string{"City": "Mum"}, "")
		assert.Equal(t, 0.3, scoreRegion(r, "mumbai"))
	})

	t.Run("no match", func(t *testing.T) {
		r := recordWith(map[string]string{"City": "Lagos"}, "cocoa exporter")
		assert.Equal(t, 0.05, scoreRegion(r, "germany"))
	})
}

func TestScoreIndustry(t *testing.T) {
	t.Run("direct field match", func(t *testing.T) {
		r := recordWith(map[string]string{"Industry": "Textiles"}, "")
		score := scoreIndustry(r, "textiles", nil)
		assert.GreaterOrEqual(t, score, 0.8)
	})

	t.Run("accumulated evidence clamps to one", func(t *testing.T) {
		r := recordWith(
			map[string]string{"Industry": "Textiles & Garments"},
			"textiles garments apparel fabric clothing yarn sari cotton silk",
		)
		score := scoreIndustry(r, "textiles", []string{"sari"})
		assert.Equal(t, 1.0, score)
	})

	t.Run("keyword fraction", func(t *testing.T) {
		r := recordWith(nil, "exporter of sari and lehenga")
		score := scoreIndustry(r, "unrelated-industry", []string{"sari", "kurta"})
		assert.InDelta(t, 0.25, score, 1e-9) // 1 of 2 keywords * 0.5
	})

	t.Run("empty industry", func(t *testing.T) {
		assert.Equal(t, 0.0, scoreIndustry(recordWith(nil, "anything"), "", nil))
	})
}

func TestScoreCompleteness(t *testing.T) {
	t.Run("all channels verified", func(t *testing.T) {
		r := recordWith(map[string]string{
			"Company": "Acme Exports",
			"Email":   "sales@acme.example",
			"Phone":   "+91 98200 12345",
			"Website": "www.acme.example",
			"Address": "12 Link Rd, Mumbai",
		}, "")
		assert.InDelta(t, 1.0, scoreCompleteness(r), 1e-9)
	})

	t.Run("invalid attributes add nothing", func(t *testing.T) {
		r := recordWith(map[string]string{
			"Company": "n/a",
			"Email":   "not-an-email",
			"Phone":   "12345",
		}, "")
		assert.Equal(t, 0.0, scoreCompleteness(r))
	})

	t.Run("partial", func(t *testing.T) {
		r := recordWith(map[string]string{"Company": "Acme", "Email": "a@x.com"}, "")
		assert.InDelta(t, 0.50, scoreCompleteness(r), 1e-9)
	})
}

func TestScoreActivity(t *testing.T) {
	assert.Equal(t, 1.0, scoreActivity(recordWith(map[string]string{"Company Size": "Large Enterprise"}, "")))
	assert.Equal(t, 0.7, scoreActivity(recordWith(map[string]string{"Size": "medium"}, "")))
	assert.Equal(t, 0.8, scoreActivity(recordWith(map[string]string{"Tier": "gold"}, "")))
	assert.Equal(t, 1.0, scoreActivity(recordWith(map[string]string{"Employees": "500+"}, "")))
	assert.Equal(t, 0.5, scoreActivity(recordWith(nil, "no size hints at all")))
}

func TestScoreExport(t *testing.T) {
	t.Run("no terms keeps the base", func(t *testing.T) {
		assert.InDelta(t, 0.3, scoreExport(recordWith(nil, "nothing relevant")), 1e-9)
	})

	t.Run("export and business terms accumulate", func(t *testing.T) {
		r := recordWith(nil, "export import international manufacturer wholesaler")
		// 3 export terms capped at +0.6, 2 business terms capped at +0.4.
		assert.InDelta(t, 1.0, scoreExport(r), 1e-9)
	})

	t.Run("contributions are capped", func(t *testing.T) {
		r := recordWith(nil, "export exports exporter import importer overseas global shipping freight")
		score := scoreExport(r)
		assert.LessOrEqual(t, score, 1.0)
		assert.InDelta(t, 0.9, score, 1e-9) // base + capped export boost, no business terms
	})
}

func TestScoreEngagement(t *testing.T) {
	assert.Equal(t, 1.0, scoreEngagement(recordWith(map[string]string{"Status": "Active"}, "")))
	assert.Equal(t, 0.6, scoreEngagement(recordWith(map[string]string{"Engagement": "regular"}, "")))
	assert.Equal(t, 0.2, scoreEngagement(recordWith(map[string]string{"Status": "inactive"}, "")))
	// "inactive" contains "active"; the low tier must still win.
	assert.Equal(t, 0.2, scoreEngagement(recordWith(nil, "inactive since last quarter")))
	assert.Equal(t, 0.2, scoreEngagement(recordWith(map[string]string{"Engagement": "low, was active in 2023"}, "")))
	assert.Equal(t, 0.5, scoreEngagement(recordWith(nil, "nothing")))
}

func TestScoreFreshness(t *testing.T) {
	now := time.Now().UTC()

	t.Run("recent verified rich record", func(t *testing.T) {
		r := recordWith(map[string]string{
			"a": "1", "b": "2", "c": "3", "d": "4", "e": "5",
			"f": "6", "g": "7", "h": "8", "i": "9", "j": "10",
		}, "iso certified supplier")
		r.CreatedAt = now.Add(-24 * time.Hour)
		assert.Equal(t, 1.0, scoreFreshness(r, now))
	})

	t.Run("bare stale record", func(t *testing.T) {
		r := recordWith(nil, "plain")
		r.CreatedAt = now.Add(-2 * 365 * 24 * time.Hour)
		assert.InDelta(t, 0.5, scoreFreshness(r, now), 1e-9)
	})

	t.Run("missing timestamp", func(t *testing.T) {
		r := recordWith(nil, "plain")
		assert.InDelta(t, 0.5, scoreFreshness(r, now), 1e-9)
	})
}

func TestEngineScore(t *testing.T) {
	engine := newEngine(t)

	criteria := &core.SearchCriteria{
		Product:  "Women garments",
		Industry: "Textiles",
		Region:   "India",
		Keywords: []string{"Sari"},
	}

	candidate := &core.ScoredCandidate{
		Record: recordWith(map[string]string{
			"Company": "Acme Textiles Pvt Ltd",
			"Email":   "sales@acme.example",
			"Phone":   "+91 98200 12345",
			"City":    "Mumbai",
		}, "verified exporter of sari and women garments from india"),
	}

	engine.Score(candidate, criteria)

	// "india" only appears in the flattened text, so the 0.92 text tier
	// applies; the city field is Mumbai and cannot hit the 1.0 tier.
	assert.InDelta(t, 0.92, candidate.Sub.Region, 1e-9)
	assert.GreaterOrEqual(t, candidate.FinalScore, 0.0)
	assert.LessOrEqual(t, candidate.FinalScore, 100.0)
	assert.Greater(t, candidate.FinalScore, 60.0)
	assert.InDelta(t, candidate.FinalScore, sum(Breakdown(candidate.Sub)), 1e-9)
}

func TestFinal_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Final(core.SubScores{}))
	assert.InDelta(t, 100.0, Final(core.SubScores{
		Region: 1, Industry: 1, Completeness: 1, Activity: 1,
		Export: 1, Engagement: 1, Freshness: 1,
	}), 1e-9)
}

func TestScoreAll_AnomalyFallback(t *testing.T) {
	engine := newEngine(t)

	candidates := []*core.ScoredCandidate{
		{Record: recordWith(map[string]string{"City": "Mumbai"}, "fine record")},
		nil, // skipped, must not panic
	}

	// A nil criteria makes Score panic; ScoreAll must capture it per
	// candidate and assign the floor score.
	engine.ScoreAll(candidates, nil)
	assert.Equal(t, fallbackFinalScore, candidates[0].FinalScore)
}

func sum(points map[string]float64) float64 {
	var total float64
	for _, v := range points {
		total += v
	}
	return total
}
