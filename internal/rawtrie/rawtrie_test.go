// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rawtrie

import (
	"bytes"
	"testing"
)

func keys(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestBuildSingleKey(t *testing.T) {
	root := Build(keys("abc"))
	if root.SubtreeSize != 1 {
		t.Errorf("SubtreeSize = %d, want 1", root.SubtreeSize)
	}
	if !root.ToLeaf {
		t.Error("a 3-char unbranching chain should be tail-eligible at every node")
	}
	if got := ResidualSuffix(root); !bytes.Equal(got, []byte("abc")) {
		t.Errorf("ResidualSuffix(root) = %q, want %q", got, "abc")
	}
}

func TestBuildPrefixKeyOrdersLeafFirst(t *testing.T) {
	// "a" is a prefix of "ab": the node at depth 1 must carry a
	// LeafLabel edge before its 'b' edge.
	root := Build(keys("a", "ab"))
	if len(root.Edges) != 1 {
		t.Fatalf("len(root.Edges) = %d, want 1", len(root.Edges))
	}
	if root.Edges[0].Label != 'a' {
		t.Errorf("root.Edges[0].Label = %c, want 'a'", root.Edges[0].Label)
	}

	aNode := root.Edges[0].Child
	if len(aNode.Edges) != 2 {
		t.Fatalf("len(aNode.Edges) = %d, want 2", len(aNode.Edges))
	}
	if aNode.Edges[0].Label != LeafLabel {
		t.Errorf("aNode.Edges[0].Label = %d, want LeafLabel", aNode.Edges[0].Label)
	}
	if aNode.Edges[1].Label != 'b' {
		t.Errorf("aNode.Edges[1].Label = %c, want 'b'", aNode.Edges[1].Label)
	}
	if aNode.ToLeaf {
		t.Error("aNode has two edges out, should not be ToLeaf")
	}
}

func TestBuildBranchingRootIsNotToLeaf(t *testing.T) {
	root := Build(keys("car", "cat", "dog"))
	if len(root.Edges) != 2 {
		t.Fatalf("len(root.Edges) = %d, want 2", len(root.Edges))
	}
	if root.Edges[0].Label != 'c' {
		t.Errorf("root.Edges[0].Label = %c, want 'c'", root.Edges[0].Label)
	}
	if root.Edges[1].Label != 'd' {
		t.Errorf("root.Edges[1].Label = %c, want 'd'", root.Edges[1].Label)
	}
	if root.ToLeaf {
		t.Error("branching root should not be ToLeaf")
	}

	cNode := root.Edges[0].Child
	if len(cNode.Edges) != 1 {
		t.Fatalf("len(cNode.Edges) = %d, want 1", len(cNode.Edges))
	}
	if cNode.Edges[0].Label != 'a' {
		t.Errorf("cNode.Edges[0].Label = %c, want 'a'", cNode.Edges[0].Label)
	}

	caNode := cNode.Edges[0].Child
	if len(caNode.Edges) != 2 {
		t.Fatalf("len(caNode.Edges) = %d, want 2", len(caNode.Edges))
	}
	if caNode.ToLeaf {
		t.Error("'r' and 't' branch at caNode, should not be ToLeaf")
	}
}

func TestSubtreeSizeCountsKeys(t *testing.T) {
	root := Build(keys("abcd", "xycd", "pqcd"))
	if root.SubtreeSize != 3 {
		t.Errorf("SubtreeSize = %d, want 3", root.SubtreeSize)
	}
}

func TestResidualSuffixPanicsOnNonChain(t *testing.T) {
	root := Build(keys("car", "cat"))

	defer func() {
		if recover() == nil {
			t.Error("ResidualSuffix on a branching node did not panic")
		}
	}()
	ResidualSuffix(root)
}
