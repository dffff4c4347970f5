// Package extract resolves canonical attributes (company, email, phone,
// website, industry, region, contact person) from schema-less uploaded
// records via ordered alias lookup, and validates the attribute formats
// that feed scoring and deduplication.
//
// Upload schemas vary per document: one spreadsheet says "Company Name",
// the next says "Exporter". Each canonical attribute therefore has an
// ordered alias list tried case-insensitively, exact match before
// substring containment. Absence of a field is an empty string, never an
// error; a single malformed record must not abort a batch.
package extract
