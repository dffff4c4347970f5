// Package mock provides deterministic ai test doubles: identical text
// always embeds to the identical vector, so similarity assertions are
// reproducible without a live provider.
package mock
