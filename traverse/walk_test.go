package traverse

import (
	"testing"

	"github.com/oasgraph/oasast/ast30"
	"github.com/oasgraph/oasast/astbuilder"
	"github.com/oasgraph/oasast/node"
)

const callbackDoc30 = `
openapi: 3.0.3
info:
  title: Callback demo
  version: 1.0.0
paths:
  /users:
    post:
      operationId: createUser
      callbacks:
        statusUpdate:
          '{$request.body#/callbackUrl}':
            post:
              operationId: statusUpdateCallback
              responses:
                '200':
                  description: ack
      responses:
        '201':
          description: created
`

func TestWalk30_CallbackAndPathsAreTransparentWrappers(t *testing.T) {
	n, err := node.Parse([]byte(callbackDoc30), "test.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc := astbuilder.Build30(n)
	if doc.Invalid != nil {
		t.Fatalf("build produced Invalid root: %+v", doc.Invalid)
	}

	var sawCallbackPathItem string
	v := NewVisitor()
	v.On("PathItem", func(p *NodePath, node any) (Action, error) {
		parts := p.ToParts()
		if len(parts) > 0 && parts[len(parts)-1].Key == "{$request.body#/callbackUrl}" {
			sawCallbackPathItem = p.FormatPath(JSONPointer)
		}
		return Continue, nil
	})

	if err := Walk30(doc, v); err != nil {
		t.Fatalf("Walk30 error: %v", err)
	}

	want := "/paths/~1users/post/callbacks/statusUpdate/{$request.body#~1callbackUrl}"
	if sawCallbackPathItem != want {
		t.Fatalf("callback PathItem path = %q, want %q", sawCallbackPathItem, want)
	}
}

func TestWalk30_VisitsEveryOperationExactlyOnce(t *testing.T) {
	n, err := node.Parse([]byte(callbackDoc30), "test.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc := astbuilder.Build30(n)

	var ids []string
	v := NewVisitor()
	v.On("Operation", func(p *NodePath, node any) (Action, error) {
		ids = append(ids, node.(*ast30.Operation).OperationID.Value)
		return Continue, nil
	})

	if err := Walk30(doc, v); err != nil {
		t.Fatalf("Walk30 error: %v", err)
	}

	want := map[string]bool{"createUser": false, "statusUpdateCallback": false}
	if len(ids) != len(want) {
		t.Fatalf("visited %d operations, want %d: %v", len(ids), len(want), ids)
	}
	for _, id := range ids {
		if _, ok := want[id]; !ok {
			t.Fatalf("unexpected operation id %q", id)
		}
		want[id] = true
	}
	for id, seen := range want {
		if !seen {
			t.Fatalf("operation %q was never visited", id)
		}
	}
}

func TestWalk30_BreakInfoStopsWholeTraversal(t *testing.T) {
	n, err := node.Parse([]byte(callbackDoc30), "test.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	doc := astbuilder.Build30(n)

	var visitedInfo bool
	v := NewVisitor()
	v.On("Info", func(p *NodePath, node any) (Action, error) {
		visitedInfo = true
		return Break, nil
	})
	var visitedPathItem bool
	v.On("PathItem", func(p *NodePath, node any) (Action, error) {
		visitedPathItem = true
		return Continue, nil
	})

	if err := Walk30(doc, v); err != nil {
		t.Fatalf("Walk30 error: %v", err)
	}
	if !visitedInfo {
		t.Fatalf("expected Info to be visited before Break")
	}
	if visitedPathItem {
		t.Fatalf("PathItem should never be visited: Info comes first and Break stopped the whole traversal")
	}
}
