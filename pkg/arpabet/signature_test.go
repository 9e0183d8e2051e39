package arpabet

import (
	"errors"
	"testing"
)

func TestSignaturePrimaryStressTier(t *testing.T) {
	cases := []struct {
		name string
		in   Pronunciation
		want string
	}{
		{
			name: "stops at last primary stress",
			in:   Pronunciation{"IH0", "N", "S", "IH1", "ZH", "AH0", "N"},
			want: "IH ZH AH N",
		},
		{
			name: "primary stress on final vowel",
			in:   Pronunciation{"K", "AE1", "T"},
			want: "AE T",
		},
		{
			name: "primary wins over later secondary",
			in:   Pronunciation{"R", "IY1", "T", "EY2", "K"},
			want: "IY T EY K",
		},
		{
			name: "last of several primaries",
			in:   Pronunciation{"F", "AO1", "R", "S", "IY1", "T"},
			want: "IY T",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := Signature(tc.in)
			if err != nil {
				t.Fatalf("Signature(%v) returned error: %v", tc.in, err)
			}
			if got := Key(sig); got != tc.want {
				t.Fatalf("Signature(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSignatureSecondaryStressTier(t *testing.T) {
	// No digit 1 anywhere: the scan restarts from scratch and stops at
	// the last secondary stress instead.
	in := Pronunciation{"B", "AE2", "T", "ER0", "D"}
	sig, err := Signature(in)
	if err != nil {
		t.Fatalf("Signature(%v) returned error: %v", in, err)
	}
	if got, want := Key(sig), "AE T ER D"; got != want {
		t.Fatalf("Signature(%v) = %q, want %q", in, got, want)
	}
}

func TestSignatureUnstressedTier(t *testing.T) {
	// Only 0-stress vowels: the signature is the final vowel-bearing
	// unit plus the trailing consonants.
	in := Pronunciation{"DH", "AH0", "N", "AH0", "V"}
	sig, err := Signature(in)
	if err != nil {
		t.Fatalf("Signature(%v) returned error: %v", in, err)
	}
	if got, want := Key(sig), "AH V"; got != want {
		t.Fatalf("Signature(%v) = %q, want %q", in, got, want)
	}

	// A lone unstressed vowel still yields at minimum that symbol.
	single := Pronunciation{"AH0"}
	sig, err = Signature(single)
	if err != nil {
		t.Fatalf("Signature(%v) returned error: %v", single, err)
	}
	if got, want := Key(sig), "AH"; got != want {
		t.Fatalf("Signature(%v) = %q, want %q", single, got, want)
	}
}

func TestSignatureKeyIgnoresStressLevel(t *testing.T) {
	// Identical suffixes after digit stripping must collide regardless
	// of the original stress digits.
	a := Pronunciation{"T", "IY1", "CH", "ER1", "Z"}
	b := Pronunciation{"M", "EY0", "JH", "ER2", "Z"}

	sigA, err := Signature(a)
	if err != nil {
		t.Fatalf("Signature(%v) returned error: %v", a, err)
	}
	sigB, err := Signature(b)
	if err != nil {
		t.Fatalf("Signature(%v) returned error: %v", b, err)
	}
	if Key(sigA) != Key(sigB) {
		t.Fatalf("keys differ across stress digits: %q vs %q", Key(sigA), Key(sigB))
	}
	if got, want := Key(sigA), "ER Z"; got != want {
		t.Fatalf("Key = %q, want %q", got, want)
	}
}

func TestSignatureNoStressDigitFails(t *testing.T) {
	in := Pronunciation{"K", "T", "S"}
	if _, err := Signature(in); !errors.Is(err, ErrNoStress) {
		t.Fatalf("Signature(%v) error = %v, want ErrNoStress", in, err)
	}
}

func TestSignatureKeyFromRaw(t *testing.T) {
	got, err := SignatureKey("HH AE1 T")
	if err != nil {
		t.Fatalf("SignatureKey returned error: %v", err)
	}
	if want := "AE T"; got != want {
		t.Fatalf("SignatureKey = %q, want %q", got, want)
	}
}

func TestStressHelpers(t *testing.T) {
	if d, ok := Stress("AE1"); !ok || d != 1 {
		t.Fatalf("Stress(AE1) = %d,%v, want 1,true", d, ok)
	}
	if _, ok := Stress("K"); ok {
		t.Fatalf("Stress(K) reported a digit for a consonant")
	}
	if got := StripStress("AH0"); got != "AH" {
		t.Fatalf("StripStress(AH0) = %q, want AH", got)
	}
	if got := StripStress("ZH"); got != "ZH" {
		t.Fatalf("StripStress(ZH) = %q, want ZH", got)
	}
}
