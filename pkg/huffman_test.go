package pkg

import (
	"strings"
	"testing"
)

func TestCodesArePrefixFree(t *testing.T) {
	texts := []string{
		"ab",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("a", 50) + strings.Repeat("b", 20) + "cdefg",
	}

	for _, text := range texts {
		r := Encode(text)
		for s1, c1 := range r.Codes {
			for s2, c2 := range r.Codes {
				if s1 == s2 {
					continue
				}
				if strings.HasPrefix(c2, c1) {
					t.Errorf("%q: code %q (%q) is a prefix of %q (%q)", text, c1, s1, c2, s2)
				}
			}
		}
	}
}

func TestTreeWeightConservation(t *testing.T) {
	texts := []string{"a", "ab", "abracadabra", "mississippi river"}

	for _, text := range texts {
		freqs, order := countFrequencies(text)
		root := buildTree(freqs, order)
		if root == nil {
			t.Fatalf("%q: nil root", text)
		}
		if want := len([]rune(text)); root.weight != want {
			t.Errorf("%q: root weight %d, want %d", text, root.weight, want)
		}
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	freqs, order := countFrequencies("")
	if root := buildTree(freqs, order); root != nil {
		t.Errorf("expected nil root for empty table, got weight %d", root.weight)
	}
}

func TestSingleSymbolTreeShape(t *testing.T) {
	freqs, order := countFrequencies("zzz")
	root := buildTree(freqs, order)

	if root == nil || root.leaf {
		t.Fatal("expected an internal wrapper node at the root")
	}
	if root.right != nil {
		t.Error("wrapper node should have no right child")
	}
	if root.left == nil || !root.left.leaf || root.left.symbol != 'z' {
		t.Error("wrapper node's left child should be the 'z' leaf")
	}
	if root.weight != 3 || root.left.weight != 3 {
		t.Errorf("expected weight 3 on wrapper and leaf, got %d and %d", root.weight, root.left.weight)
	}
}

func TestInternalNodesHaveTwoChildren(t *testing.T) {
	freqs, order := countFrequencies("abracadabra")
	root := buildTree(freqs, order)

	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.leaf {
			if n.left != nil || n.right != nil {
				t.Error("leaf with children")
			}
			continue
		}
		if n.left == nil || n.right == nil {
			t.Errorf("internal node of weight %d missing a child", n.weight)
			continue
		}
		if n.weight != n.left.weight+n.right.weight {
			t.Errorf("internal weight %d != %d + %d", n.weight, n.left.weight, n.right.weight)
		}
		stack = append(stack, n.left, n.right)
	}
}

// A symbol with strictly higher frequency never gets a strictly longer code.
func TestCodeLengthMonotonicity(t *testing.T) {
	text := strings.Repeat("a", 40) + strings.Repeat("b", 20) +
		strings.Repeat("c", 10) + strings.Repeat("d", 5) +
		strings.Repeat("e", 2) + "f"
	r := Encode(text)

	for s1, c1 := range r.Codes {
		for s2, c2 := range r.Codes {
			if r.Frequencies[s1] > r.Frequencies[s2] && len(c1) > len(c2) {
				t.Errorf("%q (freq %d) has longer code %q than %q (freq %d, code %q)",
					s1, r.Frequencies[s1], c1, s2, r.Frequencies[s2], c2)
			}
		}
	}
}

func TestCountFrequenciesOrder(t *testing.T) {
	freqs, order := countFrequencies("banana")

	if len(order) != 3 {
		t.Fatalf("expected 3 distinct symbols, got %d", len(order))
	}
	want := []rune{'b', 'a', 'n'}
	for i, r := range want {
		if order[i] != r {
			t.Errorf("order[%d] = %q, want %q", i, order[i], r)
		}
	}
	if freqs['a'] != 3 || freqs['n'] != 2 || freqs['b'] != 1 {
		t.Errorf("unexpected counts: %v", freqs)
	}
}
