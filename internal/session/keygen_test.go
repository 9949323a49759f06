package session

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGenerateGameKeyShape(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 0))

	for i := 0; i < 100; i++ {
		key := generateGameKey(r)
		if len(key) != keyLength {
			t.Fatalf("key %q length = %d, want %d", key, len(key), keyLength)
		}
		for _, c := range key {
			if !strings.ContainsRune(keyAlphabet, c) {
				t.Fatalf("key %q contains %q, outside the alphabet", key, c)
			}
		}
	}
}

func TestKeyAlphabetExcludesAmbiguousGlyphs(t *testing.T) {
	for _, c := range "0O1IL" {
		if strings.ContainsRune(keyAlphabet, c) {
			t.Fatalf("alphabet contains ambiguous glyph %q", c)
		}
	}
}
