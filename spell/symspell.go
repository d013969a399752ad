package spell

import (
	"bytes"
	_ "embed"
	"hash/fnv"
	"strconv"
	"unicode/utf8"
)

const (
	maxEditDistance = 2   // maximum pre-computed edit distance
	prefixLength    = 7   // prefix length for delete generation
	maxWordBytes    = 256 // maximum word length in bytes
	minWordRunes    = 2   // minimum runes for a word to be spell-checked
	deletesPerWord  = 4   // estimated delete variants per word for initial map capacity
)

//go:embed freq.txt
var freqRaw []byte

// SymSpell index (populated in init, read-only after).
var (
	words      map[string]int64    // word -> frequency
	deletes    map[uint32][]uint32 // hash(delete variant) -> indices into wordList
	wordList   []string            // indexed word list
	maxWordLen int                 // longest dictionary word, in runes
)

func init() {
	lines := bytes.Split(freqRaw, []byte("\n"))
	words = make(map[string]int64, len(lines))
	wordList = make([]string, 0, len(lines))
	deletes = make(map[uint32][]uint32, len(lines)*deletesPerWord)

	// Each line is "<word> <frequency>".
	for _, line := range lines {
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		sp := bytes.LastIndexByte(line, ' ')
		if sp <= 0 {
			continue
		}
		word := string(line[:sp])
		freq, err := strconv.ParseInt(string(bytes.TrimSpace(line[sp+1:])), 10, 64)
		if err != nil || freq < 0 {
			continue
		}

		words[word] = freq
		idx := uint32(len(wordList))
		wordList = append(wordList, word)

		if n := utf8.RuneCountInString(word); n > maxWordLen {
			maxWordLen = n
		}

		prefix := truncateToRunes(word, prefixLength)
		for _, del := range generateDeletes(prefix, maxEditDistance) {
			h := fnvHash(del)
			deletes[h] = append(deletes[h], idx)
		}
	}
}

// lookup finds correction candidates for input (lowercase) within
// maxDist edit distance, sorted by distance ascending then frequency
// descending. An exact dictionary hit returns only that word.
func lookup(input string, maxDist int) []Suggestion {
	if input == "" {
		return nil
	}
	if maxDist > maxEditDistance {
		maxDist = maxEditDistance
	}
	if maxDist < 0 {
		return nil
	}

	if freq, ok := words[input]; ok {
		return []Suggestion{{Term: input, Distance: 0, Frequency: freq}}
	}

	inputLen := utf8.RuneCountInString(input)
	if inputLen-maxDist > maxWordLen {
		return nil
	}

	var results []Suggestion
	seen := make(map[string]struct{})

	// Delete variants of the input prefix, plus the prefix itself so
	// that distance-0 prefix collisions are detected.
	inputPrefix := truncateToRunes(input, prefixLength)
	inputDeletes := generateDeletes(inputPrefix, maxDist)
	inputDeletes = append(inputDeletes, inputPrefix)

	for _, del := range inputDeletes {
		for _, idx := range deletes[fnvHash(del)] {
			candidate := wordList[idx]
			if _, already := seen[candidate]; already {
				continue
			}
			seen[candidate] = struct{}{}

			// Length filter before the expensive distance computation.
			lenDiff := inputLen - utf8.RuneCountInString(candidate)
			if lenDiff < 0 {
				lenDiff = -lenDiff
			}
			if lenDiff > maxDist {
				continue
			}

			if dist := damerauLevenshtein(input, candidate); dist <= maxDist {
				results = append(results, Suggestion{
					Term:      candidate,
					Distance:  dist,
					Frequency: words[candidate],
				})
			}
		}
	}

	sortSuggestions(results)
	return results
}

// truncateToRunes returns s truncated to at most n runes.
func truncateToRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// fnvHash returns the FNV-1a 32-bit hash of s.
func fnvHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

// generateDeletes returns all unique strings obtainable by deleting 1 to
// dist runes from s. The original string itself is not included.
func generateDeletes(s string, dist int) []string {
	if dist == 0 || s == "" {
		return nil
	}

	type item struct {
		word  string
		depth int
	}

	seen := make(map[string]struct{})
	var results []string
	queue := []item{{s, 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		r := []rune(current.word)
		for i := range r {
			del := string(r[:i]) + string(r[i+1:])
			if _, exists := seen[del]; exists {
				continue
			}
			seen[del] = struct{}{}
			results = append(results, del)
			if current.depth+1 < dist && del != "" {
				queue = append(queue, item{del, current.depth + 1})
			}
		}
	}

	return results
}

// sortSuggestions sorts candidates by distance ascending, then frequency
// descending. Insertion sort: result sets are small (typically < 20).
func sortSuggestions(s []Suggestion) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && suggestionLess(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

func suggestionLess(a, b Suggestion) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Frequency > b.Frequency
}

// damerauLevenshtein computes the optimal string alignment distance
// between a and b: edits plus transpositions of adjacent runes, where no
// substring is edited more than once.
func damerauLevenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	la := len(ra)
	lb := len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)

	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			best := prev[j] + 1 // deletion
			if ins := curr[j-1] + 1; ins < best {
				best = ins
			}
			if sub := prev[j-1] + cost; sub < best {
				best = sub
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if trans := prev2[j-2] + cost; trans < best {
					best = trans
				}
			}

			curr[j] = best
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[lb]
}
