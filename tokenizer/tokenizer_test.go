package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestWordTokens
// ---------------------------------------------------------------------------

func TestWordTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "single word",
			input: "hestur",
			want: []Token{
				{Text: "hestur", Start: 0, End: 6, Type: Word},
			},
		},
		{
			name:  "words and punctuation",
			input: "Hann fór.",
			want: []Token{
				{Text: "Hann", Start: 0, End: 4, Type: Word},
				{Text: " ", Start: 4, End: 5, Type: Space},
				{Text: "fór", Start: 5, End: 9, Type: Word},
				{Text: ".", Start: 9, End: 10, Type: Punctuation},
			},
		},
		{
			name:  "hyphenated compound stays together",
			input: "Vestur-Þýskaland",
			want: []Token{
				{Text: "Vestur-Þýskaland", Start: 0, End: 18, Type: Word},
			},
		},
		{
			name:  "double hyphen splits",
			input: "a--b",
			want: []Token{
				{Text: "a", Start: 0, End: 1, Type: Word},
				{Text: "--", Start: 1, End: 3, Type: Punctuation},
				{Text: "b", Start: 3, End: 4, Type: Word},
			},
		},
		{
			name:  "number with decimal comma",
			input: "3,14",
			want: []Token{
				{Text: "3,14", Start: 0, End: 4, Type: Number},
			},
		},
		{
			name:  "number with thousand separators",
			input: "1.234.567",
			want: []Token{
				{Text: "1.234.567", Start: 0, End: 9, Type: Number},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := WordTokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordTokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordTokensReconstruction(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hún las bókina í gær.",
		"Árið 1944 var lýðveldið stofnað — 17. júní.",
		"Þetta   hefur\tmarga  bila.",
		"a-b-c 1.000 kr.!!!",
	}

	for _, input := range inputs {
		var sb strings.Builder
		for _, tok := range WordTokens(input) {
			if input[tok.Start:tok.End] != tok.Text {
				t.Errorf("offset invariant broken for %q: [%d:%d]=%q, Text=%q",
					input, tok.Start, tok.End, input[tok.Start:tok.End], tok.Text)
			}
			sb.WriteString(tok.Text)
		}
		if sb.String() != input {
			t.Errorf("reconstruction failed: got %q, want %q", sb.String(), input)
		}
	}
}

// ---------------------------------------------------------------------------
// TestSentences
// ---------------------------------------------------------------------------

func TestSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "single sentence",
			input: "Hann fór heim.",
			want:  []string{"Hann fór heim."},
		},
		{
			name:  "two sentences",
			input: "Hann fór heim. Hún var úti.",
			want:  []string{"Hann fór heim.", "Hún var úti."},
		},
		{
			name:  "abbreviation does not break",
			input: "Hann á t.d. hest. Hún ekki.",
			want:  []string{"Hann á t.d. hest.", "Hún ekki."},
		},
		{
			name:  "multi part abbreviation",
			input: "Þar voru hestar, kindur o.s.frv. Síðan fórum við heim.",
			want:  []string{"Þar voru hestar, kindur o.s.frv.", "Síðan fórum við heim."},
		},
		{
			name:  "question and exclamation",
			input: "Hvar er hann? Þarna! Allt í lagi.",
			want:  []string{"Hvar er hann?", "Þarna!", "Allt í lagi."},
		},
		{
			name:  "date with internal dots",
			input: "Hann kom 17.6.2020 og fór daginn eftir.",
			want:  []string{"Hann kom 17.6.2020 og fór daginn eftir."},
		},
		{
			name:  "no break before lowercase",
			input: "Hann kom kl. fjögur og fór.",
			want:  []string{"Hann kom kl. fjögur og fór."},
		},
		{
			name:  "blank line forces break",
			input: "Fyrsta málsgrein án punkts\n\nönnur málsgrein.",
			want:  []string{"Fyrsta málsgrein án punkts", "önnur málsgrein."},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Sentences(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSentenceTokensReconstruction(t *testing.T) {
	t.Parallel()

	input := "Hann fór heim. Hún var úti! Var það t.d. satt? Já."
	var sb strings.Builder
	for _, tok := range SentenceTokens(input) {
		sb.WriteString(tok.Text)
	}
	if sb.String() != input {
		t.Errorf("reconstruction failed: got %q, want %q", sb.String(), input)
	}
}

// ---------------------------------------------------------------------------
// TestParagraphs
// ---------------------------------------------------------------------------

func TestParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single paragraph",
			input: "Ein málsgrein. Önnur setning.",
			want:  []string{"Ein málsgrein. Önnur setning."},
		},
		{
			name:  "two paragraphs",
			input: "Fyrsta efnisgrein.\n\nÖnnur efnisgrein.",
			want:  []string{"Fyrsta efnisgrein.", "Önnur efnisgrein."},
		},
		{
			name:  "extra blank lines dropped",
			input: "A.\n\n\n\nB.\n\n",
			want:  []string{"A.", "B."},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Paragraphs(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Paragraphs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNormalize
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	// NFD "ó" (o + combining acute) composes to NFC "ó".
	input := "fo\u0301r"
	if got := Normalize(input); got != "fór" {
		t.Errorf("Normalize(%q) = %q, want %q", input, got, "fór")
	}
	// Already-NFC input is returned unchanged.
	if got := Normalize("fór"); got != "fór" {
		t.Errorf("Normalize(%q) = %q, want unchanged", "fór", got)
	}
}
