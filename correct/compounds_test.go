package correct

import (
	"testing"

	"github.com/grammatek/GreynirCorrect/dictionary"
	"github.com/grammatek/GreynirCorrect/tokenizer"
)

// wordTokens builds a word-token stream for the given surface forms.
func wordTokens(texts ...string) []*Token {
	toks := make([]*Token, len(texts))
	for i, txt := range texts {
		toks[i] = Word(txt, nil)
	}
	return toks
}

func texts(toks []*Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func codes(toks []*Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.ErrorCode()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// TestFixCompounds
// ---------------------------------------------------------------------------

func TestFixCompounds(t *testing.T) {
	t.Parallel()

	dicts := dictionary.Default()

	tests := []struct {
		name      string
		input     []string
		wantTexts []string
		wantCodes []string
	}{
		{
			name:      "no patterns pass through",
			input:     []string{"hann", "fór", "heim"},
			wantTexts: []string{"hann", "fór", "heim"},
			wantCodes: []string{"", "", ""},
		},
		{
			name:      "duplicated word removed",
			input:     []string{"og", "og", "fór"},
			wantTexts: []string{"og", "fór"},
			wantCodes: []string{"C001", ""},
		},
		{
			name:      "duplicate match is case-insensitive",
			input:     []string{"Hann", "hann", "fór"},
			wantTexts: []string{"Hann", "fór"},
			wantCodes: []string{"C001", ""},
		},
		{
			name:      "triple duplication collapses to one",
			input:     []string{"mjög", "mjög", "mjög", "gott"},
			wantTexts: []string{"mjög", "gott"},
			wantCodes: []string{"C001", ""},
		},
		{
			name:      "allowed multiple is kept",
			input:     []string{"hann", "settist", "við", "við", "borðið"},
			wantTexts: []string{"hann", "settist", "við", "við", "borðið"},
			wantCodes: []string{"", "", "", "", ""},
		},
		{
			name:      "wrongly compounded word split up",
			input:     []string{"afhverju", "fór", "hann"},
			wantTexts: []string{"af", "hverju", "fór", "hann"},
			wantCodes: []string{"C002", "C002", "", ""},
		},
		{
			name:      "split preserves capitalization on the first part",
			input:     []string{"Afhverju", "fór", "hann"},
			wantTexts: []string{"Af", "hverju", "fór", "hann"},
			wantCodes: []string{"C002", "C002", "", ""},
		},
		{
			name:      "wrongly compounded word split at end of stream",
			input:     []string{"hann", "spurði", "afhverju"},
			wantTexts: []string{"hann", "spurði", "af", "hverju"},
			wantCodes: []string{"", "", "C002", "C002"},
		},
		{
			name:      "wrongly split compound united",
			input:     []string{"hann", "fór", "í", "mennta", "skóli"},
			wantTexts: []string{"hann", "fór", "í", "menntaskóli"},
			wantCodes: []string{"", "", "", "C003"},
		},
		{
			name:      "united compound at end of stream",
			input:     []string{"lands", "lið"},
			wantTexts: []string{"landslið"},
			wantCodes: []string{"C003"},
		},
		{
			name:      "single token stream",
			input:     []string{"hestur"},
			wantTexts: []string{"hestur"},
			wantCodes: []string{""},
		},
		{
			name:      "empty stream",
			input:     nil,
			wantTexts: nil,
			wantCodes: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Collect(FixCompounds(NewStream(wordTokens(tt.input...)), dicts))
			if !equalStrings(texts(got), tt.wantTexts) {
				t.Errorf("texts = %q, want %q", texts(got), tt.wantTexts)
			}
			if !equalStrings(codes(got), tt.wantCodes) {
				t.Errorf("codes = %q, want %q", codes(got), tt.wantCodes)
			}

			// Running the phase on its own output must change nothing.
			again := Collect(FixCompounds(NewStream(got), dicts))
			if !equalStrings(texts(again), tt.wantTexts) {
				t.Errorf("not idempotent: second pass texts = %q, want %q",
					texts(again), tt.wantTexts)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFixCompoundsNonWordTokens
// ---------------------------------------------------------------------------

func TestFixCompoundsNonWordTokens(t *testing.T) {
	t.Parallel()

	dicts := dictionary.Default()

	// Punctuation between two identical words blocks the duplicate rule,
	// and punctuation itself never duplicates away.
	toks := []*Token{
		Word("fór", nil),
		{Kind: tokenizer.Punctuation, Text: ","},
		{Kind: tokenizer.Punctuation, Text: ","},
		Word("fór", nil),
	}
	got := Collect(FixCompounds(NewStream(toks), dicts))
	want := []string{"fór", ",", ",", "fór"}
	if !equalStrings(texts(got), want) {
		t.Errorf("texts = %q, want %q", texts(got), want)
	}
	for i, tok := range got {
		if tok.Err() != nil {
			t.Errorf("token %d carries unexpected error %v", i, tok.Err())
		}
	}
}

// ---------------------------------------------------------------------------
// TestFixCompoundsDescriptions
// ---------------------------------------------------------------------------

func TestFixCompoundsDescriptions(t *testing.T) {
	t.Parallel()

	dicts := dictionary.Default()

	got := Collect(FixCompounds(NewStream(wordTokens("og", "og")), dicts))
	if len(got) != 1 {
		t.Fatalf("got %d tokens, want 1", len(got))
	}
	if want := "Endurtekið orð ('og') var fellt burt"; got[0].ErrorDescription() != want {
		t.Errorf("description = %q, want %q", got[0].ErrorDescription(), want)
	}

	got = Collect(FixCompounds(NewStream(wordTokens("hinsvegar")), dicts))
	if len(got) != 2 {
		t.Fatalf("got %d tokens, want 2", len(got))
	}
	if want := "Orðinu 'hinsvegar' var skipt upp"; got[0].ErrorDescription() != want {
		t.Errorf("description = %q, want %q", got[0].ErrorDescription(), want)
	}

	got = Collect(FixCompounds(NewStream(wordTokens("mennta", "skóli")), dicts))
	if len(got) != 1 {
		t.Fatalf("got %d tokens, want 1", len(got))
	}
	if want := "Orðin 'mennta skóli' voru sameinuð í eitt"; got[0].ErrorDescription() != want {
		t.Errorf("description = %q, want %q", got[0].ErrorDescription(), want)
	}
}
