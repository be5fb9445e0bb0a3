// Package cache provides a file-based cache for LLM review responses.
//
// Cache entries are keyed by a SHA-256 hash of the provider name, model,
// language and submitted code. Each entry is a msgpack document holding the
// raw LLM response with a creation timestamp and a TTL (in seconds). Entries
// are written to a temp file and renamed into place. Expired or corrupt
// entries are treated as misses and removed on read.
//
// The default cache directory is $XDG_CACHE_HOME/critic (or the OS-appropriate
// equivalent). Code stored in the cache key has already been through secret
// redaction.
package cache
