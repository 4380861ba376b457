package traverse

import "golang.org/x/sync/errgroup"

// walkFn is the signature shared by Walk30 and Walk31.
type walkFn func(v *Visitor) error

// WalkConcurrent runs several independent visitors over the same document
// concurrently and returns the first error encountered, cancelling the
// others' further work is not possible (visitors are plain callbacks, not
// goroutines we control mid-flight) but the group still waits for every walk
// to finish before returning. Since AST objects are immutable after
// construction, running multiple Walk30/Walk31 calls against the same root
// concurrently is always safe; this only exists to make that safety usable
// without callers hand-rolling their own WaitGroup/error-collection boilerplate.
func WalkConcurrent(walk walkFn, visitors ...*Visitor) error {
	var g errgroup.Group
	for _, v := range visitors {
		v := v
		g.Go(func() error {
			return walk(v)
		})
	}
	return g.Wait()
}
