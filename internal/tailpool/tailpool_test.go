// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tailpool

import "testing"

func TestEmptyPool(t *testing.T) {
	p := New()
	p.Build()
	if got := p.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestSingleSuffix(t *testing.T) {
	p := New()
	id := p.Push([]byte("cd"))
	p.Build()

	if !p.MatchSuffix(p.Offset(id), []byte("cd")) {
		t.Error("MatchSuffix(offset, \"cd\") = false, want true")
	}
	if p.MatchSuffix(p.Offset(id), []byte("c")) {
		t.Error("MatchSuffix(offset, \"c\") = true, want false")
	}
	if p.MatchSuffix(p.Offset(id), []byte("cde")) {
		t.Error("MatchSuffix(offset, \"cde\") = true, want false")
	}
}

func TestMergesSharedTail(t *testing.T) {
	p := New()
	idAbcd := p.Push([]byte("abcd"))
	idXycd := p.Push([]byte("xycd"))
	idCd := p.Push([]byte("cd"))
	p.Build()

	if !p.MatchSuffix(p.Offset(idAbcd), []byte("abcd")) {
		t.Error("MatchSuffix(idAbcd, \"abcd\") = false, want true")
	}
	if !p.MatchSuffix(p.Offset(idXycd), []byte("xycd")) {
		t.Error("MatchSuffix(idXycd, \"xycd\") = false, want true")
	}
	if !p.MatchSuffix(p.Offset(idCd), []byte("cd")) {
		t.Error("MatchSuffix(idCd, \"cd\") = false, want true")
	}

	// "cd" is the tail of "abcd", so it shares abcd's bytes and the pool
	// must be smaller than storing each suffix plus terminator
	// separately: 1 (leading sentinel) + len("abcd")+1 + len("xycd")+1
	// + len("cd")+1 would be 14 if nothing were shared; with "cd"
	// merged into "abcd" it is 11.
	if got, want := p.Len(), 1+5+5+3; got >= want {
		t.Errorf("Len() = %d, want < %d", got, want)
	}
}

func TestPushAfterBuildPanics(t *testing.T) {
	p := New()
	p.Push([]byte("a"))
	p.Build()

	defer func() {
		if recover() == nil {
			t.Error("Push after Build did not panic")
		}
	}()
	p.Push([]byte("b"))
}

func TestDisjointSuffixesDoNotMerge(t *testing.T) {
	p := New()
	idApple := p.Push([]byte("apple"))
	idBanana := p.Push([]byte("banana"))
	p.Build()

	if !p.MatchSuffix(p.Offset(idApple), []byte("apple")) {
		t.Error("MatchSuffix(idApple, \"apple\") = false, want true")
	}
	if !p.MatchSuffix(p.Offset(idBanana), []byte("banana")) {
		t.Error("MatchSuffix(idBanana, \"banana\") = false, want true")
	}
}

func TestReverseLess(t *testing.T) {
	if !reverseLess([]byte("cd"), []byte("abcd")) {
		t.Error("reverseLess(\"cd\", \"abcd\") = false, want true: shorter tail-sharing suffix sorts first")
	}
	if reverseLess([]byte("bcd"), []byte("acd")) {
		t.Error("reverseLess(\"bcd\", \"acd\") = true, want false: compares by last byte first, d==d, c==c, b>a")
	}
	if reverseLess([]byte("abcd"), []byte("abcd")) {
		t.Error("reverseLess(\"abcd\", \"abcd\") = true, want false")
	}
}
