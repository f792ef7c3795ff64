package keys

import "testing"

func TestHashIsDeterministic(t *testing.T) {
	if Hash("hello") != Hash("hello") {
		t.Fatalf("Hash should be deterministic for the same input")
	}
}

func TestHashNormalizesUnicode(t *testing.T) {
	// "e" + combining acute accent (NFD) vs precomposed "é" (NFC): both
	// normalize to the same NFC form and so must hash identically.
	decomposed := "é"
	precomposed := "é"
	if Hash(decomposed) != Hash(precomposed) {
		t.Fatalf("Hash(%q) != Hash(%q), want equal after NFC normalization", decomposed, precomposed)
	}
}

func TestHashDistinguishesDifferentStrings(t *testing.T) {
	if Hash("alpha") == Hash("bravo") {
		t.Fatalf("distinct strings unluckily collided; acceptable but suspicious for this test pair")
	}
}

func TestHashUint64MatchesHash(t *testing.T) {
	if HashUint64("zulu") != uint64(Hash("zulu")) {
		t.Fatalf("HashUint64 should widen Hash without changing its value")
	}
}
