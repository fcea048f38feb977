package match

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Leonardo  DA-VINCI!  ", "leonardo da vinci"},
		{"Mona Lisa", "mona lisa"},
		{"#hash-tag_(test)", "hash tag test"},
		{"", ""},
		{"...", ""},
		{"a\tb\n c", "a b c"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  Leonardo  DA-VINCI!  ",
		"Mona,Lisa", "plain text", "", "#!$", "Ünïcode  Tëst",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	daVinciAliases := []string{"Leonardo", "da Vinci", "Leonardo di ser Piero da Vinci"}

	cases := []struct {
		name      string
		candidate string
		correct   string
		aliases   []string
		want      bool
	}{
		{"exact", "Leonardo da Vinci", "Leonardo da Vinci", nil, true},
		{"case and punctuation invariant", "Leonardo  DA-VINCI!", "leonardo da vinci", nil, true},
		{"alias", "leonardo", "Leonardo da Vinci", daVinciAliases, true},
		{"alias normalized", "DA  VINCI", "Leonardo da Vinci", daVinciAliases, true},
		{"containment", "lisa", "Mona Lisa", nil, true},
		{"containment too short", "da", "Leonardo da Vinci", nil, false},
		{"token subset", "leonardo vinci", "Leonardo da Vinci", nil, true},
		{"token prefix", "leo", "Leonardo da Vinci", nil, true},
		{"token too short", "le", "Leonardo da Vinci", nil, false},
		{"unrelated token", "michelangelo", "Leonardo da Vinci", nil, false},
		{"empty candidate", "", "Leonardo da Vinci", nil, false},
		{"whitespace candidate", "   ", "Leonardo da Vinci", nil, false},
		{"punctuation-only candidate", "!!!!", "Leonardo da Vinci", nil, false},
		{"both empty", "", "", nil, true},
		{"wrong answer", "Raphael", "Leonardo da Vinci", daVinciAliases, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsCorrect(tc.candidate, tc.correct, tc.aliases); got != tc.want {
				t.Fatalf("IsCorrect(%q, %q, %v) = %v, want %v",
					tc.candidate, tc.correct, tc.aliases, got, tc.want)
			}
		})
	}
}

func TestIsCorrectSelfMatch(t *testing.T) {
	for _, s := range []string{"x", "Paris", "The Great Wall of China", "42"} {
		if !IsCorrect(s, s, nil) {
			t.Fatalf("expected %q to match itself", s)
		}
	}
}
