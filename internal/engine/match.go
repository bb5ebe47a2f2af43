package engine

// Match is one occurrence of a pattern: text[Start:Start+Length].
type Match struct {
	Start  int
	Length int
}

// Pattern is a primer sequence with its precomputed failure function
// (longest proper prefix that is also a suffix, per prefix length).
type Pattern struct {
	pat  string
	fail []int
}

// Compile prepares pat for repeated scans.
func Compile(pat string) *Pattern {
	return &Pattern{pat: pat, fail: failure(pat)}
}

func failure(pat string) []int {
	fail := make([]int, len(pat))
	k := 0
	for i := 1; i < len(pat); i++ {
		for k > 0 && pat[i] != pat[k] {
			k = fail[k-1]
		}
		if pat[i] == pat[k] {
			k++
		}
		fail[i] = k
	}
	return fail
}

// FindAll scans text left to right and returns every non-overlapping
// occurrence. After a match ending at e the scan resumes at e, so a later
// occurrence is reported only if it starts at or after e.
// An empty pattern matches nothing.
func (p *Pattern) FindAll(text string) []Match {
	m := len(p.pat)
	if m == 0 || len(text) < m {
		return nil
	}
	var out []Match
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != p.pat[j] {
			j = p.fail[j-1]
		}
		if text[i] == p.pat[j] {
			j++
		}
		if j == m {
			out = append(out, Match{Start: i - m + 1, Length: m})
			j = 0
		}
	}
	return out
}

// FindMatches is Compile(pat).FindAll(text).
func FindMatches(pat, text string) []Match {
	return Compile(pat).FindAll(text)
}
