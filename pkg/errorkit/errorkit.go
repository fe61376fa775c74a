// Package errorkit collects small helpers around error values:
// constant sentinel errors, merging and panic recovery.
package errorkit

import "fmt"

// Finish is a helper function that can be used from a deferred context.
//
// Usage:
//
//	defer errorkit.Finish(&returnError, rows.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// RecoverWith will recover a panic and pass the recovered value to the blk function.
// It must be called directly from a deferred statement.
//
//	defer errorkit.RecoverWith(func(r any) { err = fmt.Errorf("%v", r) })
func RecoverWith(blk func(r any)) {
	if r := recover(); r != nil {
		blk(r)
	}
}

// Recover turns a recovered panic value into an error.
func Recover(r any) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return fmt.Errorf("%v", v)
	}
}
