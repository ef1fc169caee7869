// Package registry owns the state of every active match.
//
// A Registry keeps matches in an arena addressed by match ID and indexes each
// one under both participant names. Lookups by either name resolve to the
// same arena slot, and all mutation goes through the ID, so the two names can
// never observe different scores.
//
// Every operation takes the registry's single lock for its full duration.
// Nothing under the lock blocks on I/O.
//
// A Registry is built with New, optionally seeded once with Seed, and only
// then handed to its consumers.
package registry
