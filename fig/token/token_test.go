package token

import "testing"

func TestLine(t *testing.T) {
	f := NewFile("test.fig", "hello there\nmy name is bob\n")

	// row: expect
	cases := map[int]string{
		0: "hello there",
		1: "my name is bob",
	}

	for k, v := range cases {
		if s := f.Line(k); s != v {
			t.Errorf("expected line=%q, got %q, for row=%d", v, s, k)
		}
	}
}

func TestKeywordLookup(t *testing.T) {
	if Keywords["int"] != TYPE {
		t.Error("expected 'int' to be a TYPE keyword")
	}
	if Keywords["float"] != TYPE {
		t.Error("expected 'float' to be a TYPE keyword")
	}
	if _, ok := Keywords["foo"]; ok {
		t.Error("expected 'foo' to not be a keyword")
	}
}
