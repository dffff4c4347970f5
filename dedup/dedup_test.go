package dedup

import (
	"testing"

	"github.com/prospekt/leadrank/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id core.ID, fields map[string]string) *core.ScoredCandidate {
	return &core.ScoredCandidate{
		Record: &core.EmbeddedRecord{Id: id, Fields: fields},
	}
}

func TestNormalizeCompany(t *testing.T) {
	assert.Equal(t, "acme", NormalizeCompany("Acme Pvt Ltd"))
	assert.Equal(t, "acme", NormalizeCompany("ACME"))
	assert.Equal(t, "acme", NormalizeCompany("  Acme, Inc.  "))
	assert.Equal(t, "acme exports", NormalizeCompany("Acme Exports Private Limited"))
	assert.Equal(t, "", NormalizeCompany(""))
	assert.Equal(t, "", NormalizeCompany("Ltd"))
}

func TestFingerprints(t *testing.T) {
	t.Run("full identity yields six fingerprints", func(t *testing.T) {
		c := candidate(1, map[string]string{
			"Company":        "Acme Pvt Ltd",
			"Contact Person": "R. Sharma",
			"Email":          "Sales@Acme.com",
			"Phone":          "+91 98200 12345",
		})
		fps := Fingerprints(c.Record)
		assert.Len(t, fps, 6)
		assert.Contains(t, fps, "email:sales@acme.com")
		assert.Contains(t, fps, "phone:919820012345")
		assert.Contains(t, fps, "company-email:acme|sales@acme.com")
	})

	t.Run("invalid email is not identity", func(t *testing.T) {
		c := candidate(2, map[string]string{"Company": "Acme", "Email": "not-an-email"})
		for _, fp := range Fingerprints(c.Record) {
			assert.NotContains(t, fp, "email")
		}
	})

	t.Run("short phone is not standalone identity", func(t *testing.T) {
		c := candidate(3, map[string]string{"Company": "Acme", "Phone": "98200123"})
		fps := Fingerprints(c.Record)
		assert.Contains(t, fps, "company-phone:acme|98200123")
		assert.NotContains(t, fps, "phone:98200123")
	})

	t.Run("no attributes yields no fingerprints", func(t *testing.T) {
		c := candidate(4, map[string]string{"Notes": "nothing useful"})
		assert.Empty(t, Fingerprints(c.Record))
	})
}

func TestDeduplicate(t *testing.T) {
	newDeduper := func(t *testing.T) *Deduper {
		d, err := New()
		require.NoError(t, err)
		return d
	}

	t.Run("shared email with differing company spelling collapses", func(t *testing.T) {
		a := candidate(1, map[string]string{"Company": "Acme Pvt Ltd", "Email": "a@x.com"})
		b := candidate(2, map[string]string{"Company": "ACME", "Email": "a@x.com"})

		out := newDeduper(t).Deduplicate([]*core.ScoredCandidate{a, b})
		require.Len(t, out, 1)
		assert.Equal(t, core.ID(1), out[0].Record.Id) // first-seen wins
	})

	t.Run("distinct companies survive", func(t *testing.T) {
		a := candidate(1, map[string]string{"Company": "Acme", "Email": "a@x.com"})
		b := candidate(2, map[string]string{"Company": "Globex", "Email": "b@y.com"})

		out := newDeduper(t).Deduplicate([]*core.ScoredCandidate{a, b})
		assert.Len(t, out, 2)
	})

	t.Run("backstop collapses same company with disjoint details", func(t *testing.T) {
		a := candidate(1, map[string]string{"Company": "Acme Pvt Ltd", "Email": "a@x.com"})
		b := candidate(2, map[string]string{"Company": "Acme Limited", "Phone": "+91 98200 12345"})

		out := newDeduper(t).Deduplicate([]*core.ScoredCandidate{a, b})
		require.Len(t, out, 1)
		assert.Equal(t, core.ID(1), out[0].Record.Id)
	})

	t.Run("unknown companies are not merged together", func(t *testing.T) {
		a := candidate(1, map[string]string{"Contact Person": "R. Sharma"})
		b := candidate(2, map[string]string{"Contact Person": "P. Mehta"})

		out := newDeduper(t).Deduplicate([]*core.ScoredCandidate{a, b})
		assert.Len(t, out, 2)
	})

	t.Run("records with no identity all survive", func(t *testing.T) {
		a := candidate(1, map[string]string{"Notes": "x"})
		b := candidate(2, map[string]string{"Notes": "y"})

		out := newDeduper(t).Deduplicate([]*core.ScoredCandidate{a, b})
		assert.Len(t, out, 2)
	})

	t.Run("idempotent", func(t *testing.T) {
		input := []*core.ScoredCandidate{
			candidate(1, map[string]string{"Company": "Acme Pvt Ltd", "Email": "a@x.com"}),
			candidate(2, map[string]string{"Company": "ACME", "Email": "a@x.com"}),
			candidate(3, map[string]string{"Company": "Globex", "Phone": "+1 415 555 0100"}),
		}

		d := newDeduper(t)
		once := d.Deduplicate(input)
		twice := d.Deduplicate(once)
		assert.Equal(t, once, twice)
	})

	t.Run("nil and empty input", func(t *testing.T) {
		d := newDeduper(t)
		assert.Empty(t, d.Deduplicate(nil))
		out := d.Deduplicate([]*core.ScoredCandidate{nil, candidate(1, map[string]string{"Company": "Acme"})})
		assert.Len(t, out, 1)
	})
}
