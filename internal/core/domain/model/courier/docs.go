// Package courier provides the Courier aggregate used by the courier assignment protocol.
//
// A courier is either available or bound to exactly one active delivery. The flag is
// flipped only through Reserve and Release, each producing a new versioned snapshot that
// repositories persist with a compare-and-swap on the previous version.
package courier
