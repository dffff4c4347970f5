// Package scoring turns candidates into ranked leads via a weighted
// multi-criteria relevance score.
//
// Seven sub-scores, each in [0,1], combine into a 0-100 final score:
// region (0.40), industry (0.25), completeness (0.20), activity (0.08),
// export-readiness (0.05), engagement (0.01) and freshness (0.01).
// Region and industry matching are tiered against curated lookup tables
// kept in tables.go, separate from the algorithms, so vocabularies extend
// independently.
package scoring
