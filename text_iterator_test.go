package showtxt

import "testing"

func TestTextIterator(t *testing.T) {
	var iter textIterator
	var codes []rune
	text := "a\tb\x00\nc\u00e9"
	for {
		code := iter.Next(text)
		if code == -1 { break }
		codes = append(codes, code)
	}
	expected := []rune{ 'a', 'b', '\n', 'c', '\u00e9' }
	if string(codes) != string(expected) {
		t.Fatalf("expected %q, got %q", string(expected), string(codes))
	}
}

func TestNormalizeText(t *testing.T) {
	decomposed := "e\u0301"
	if normalizeText(decomposed, false) != decomposed { t.Fatal("unexpected normalization") }
	if normalizeText(decomposed, true) != "\u00e9" {
		t.Fatalf("expected %q, got %q", "\u00e9", normalizeText(decomposed, true))
	}
}
