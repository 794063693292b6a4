// Package digest folds a running stream of VIC-II frames or SID samples
// into a SHA-1 fingerprint, so a test can assert "this run produced the same
// output as last time" with one string comparison instead of diffing a
// whole pixel buffer or audio stream. Used as the basis for the fuzz-class
// determinism property spec.md §8 names.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
