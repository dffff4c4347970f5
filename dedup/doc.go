// Package dedup collapses near-duplicate candidates into unique entities.
//
// Identity is established by multi-key fingerprinting over normalized
// company, contact, email and phone attributes, with a company-name
// backstop pass for spelling variants the fingerprints miss. The pass is
// deliberately first-seen-wins and score-blind; score-aware resolution is
// a separate pass after scoring.
package dedup
