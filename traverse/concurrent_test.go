package traverse

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestWalkConcurrent_RunsEveryVisitorAndCollectsCounts(t *testing.T) {
	walk := func(v *Visitor) error {
		_, err := walkTree(newRootPath(buildSample(), "tree"), buildSample(), v)
		return err
	}

	var total int64
	visitors := make([]*Visitor, 5)
	for i := range visitors {
		v := NewVisitor()
		v.On("tree", func(p *NodePath, node any) (Action, error) {
			atomic.AddInt64(&total, 1)
			return Continue, nil
		})
		visitors[i] = v
	}

	if err := WalkConcurrent(walk, visitors...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// buildSample has 6 nodes; 5 independent visitors should each see all 6.
	if total != 30 {
		t.Fatalf("total visits = %d, want 30", total)
	}
}

func TestWalkConcurrent_PropagatesFirstError(t *testing.T) {
	sentinelErr := errors.New("boom")
	walk := func(v *Visitor) error {
		_, err := walkTree(newRootPath(buildSample(), "tree"), buildSample(), v)
		return err
	}
	bad := NewVisitor()
	bad.On("tree", func(p *NodePath, node any) (Action, error) {
		return Break, sentinelErr
	})
	good := NewVisitor()

	if err := WalkConcurrent(walk, good, bad); err == nil {
		t.Fatalf("expected an error from the failing visitor")
	}
}
