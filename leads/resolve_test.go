package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospekt/leadrank/core"
)

func candidateWithScore(company string, score float64) *core.ScoredCandidate {
	return &core.ScoredCandidate{
		Record: &core.EmbeddedRecord{
			Fields: map[string]string{"company": company},
		},
		FinalScore: score,
	}
}

func TestResolveIdentitiesKeepsHighestScore(t *testing.T) {
	candidates := []*core.ScoredCandidate{
		candidateWithScore("Acme Exports Ltd", 40),
		candidateWithScore("Acme Exports", 85),
		candidateWithScore("Other Traders", 60),
	}

	resolved := resolveIdentities(candidates)

	require.Len(t, resolved, 2)
	assert.Equal(t, 85.0, resolved[0].FinalScore)
	assert.Equal(t, "Acme Exports", resolved[0].Record.Fields["company"])
	assert.Equal(t, 60.0, resolved[1].FinalScore)
}

func TestResolveIdentitiesSortsDescending(t *testing.T) {
	candidates := []*core.ScoredCandidate{
		candidateWithScore("Low Corp", 20),
		candidateWithScore("High Corp", 90),
		candidateWithScore("Mid Corp", 55),
	}

	resolved := resolveIdentities(candidates)

	require.Len(t, resolved, 3)
	assert.Equal(t, 90.0, resolved[0].FinalScore)
	assert.Equal(t, 55.0, resolved[1].FinalScore)
	assert.Equal(t, 20.0, resolved[2].FinalScore)
}

func TestResolveIdentitiesUnknownCompaniesStaySeparate(t *testing.T) {
	a := &core.ScoredCandidate{
		Record: &core.EmbeddedRecord{
			Id:     1,
			Fields: map[string]string{"contact": "Asha"},
		},
		FinalScore: 50,
	}
	b := &core.ScoredCandidate{
		Record: &core.EmbeddedRecord{
			Id:     2,
			Fields: map[string]string{"contact": "Bilal"},
		},
		FinalScore: 45,
	}

	resolved := resolveIdentities([]*core.ScoredCandidate{a, b})
	assert.Len(t, resolved, 2)
}

func TestResolveIdentitiesEmpty(t *testing.T) {
	assert.Empty(t, resolveIdentities(nil))
}
