package referral

import (
	"testing"
)

const testSalt = "souq-test"

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, id := range []int64{1, 42, 999999} {
		code, err := Encode(testSalt, id)
		if err != nil {
			t.Fatalf("encode %d: %v", id, err)
		}
		if len(code) < codeLength {
			t.Fatalf("code %q shorter than %d", code, codeLength)
		}
		got, err := Decode(testSalt, code)
		if err != nil {
			t.Fatalf("decode %q: %v", code, err)
		}
		if got != id {
			t.Fatalf("round trip: want %d got %d", id, got)
		}
	}
}

func TestEncode_Unique(t *testing.T) {
	seen := make(map[string]int64)
	for id := int64(1); id <= 5000; id++ {
		code, err := Encode(testSalt, id)
		if err != nil {
			t.Fatal(err)
		}
		if other, ok := seen[code]; ok {
			t.Fatalf("collision: %d and %d both map to %s", id, other, code)
		}
		seen[code] = id
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(testSalt, "not a code!"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestEncode_RejectsNonPositive(t *testing.T) {
	if _, err := Encode(testSalt, 0); err == nil {
		t.Fatal("expected error for id 0")
	}
}
