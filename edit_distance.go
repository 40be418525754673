package main

// EditDistance returns the Levenshtein distance between s1 and s2. Without
// allowReplacements a substitution costs a deletion plus an insertion. When
// maxEditDistance is non-zero the search stops early and returns
// maxEditDistance+1 once every candidate exceeds it.
func EditDistance(s1 string, s2 string, allowReplacements bool, maxEditDistance int) int {
	m := len(s1)
	n := len(s2)

	row := make([]int, n+1)
	for i := 1; i <= n; i++ {
		row[i] = i
	}

	for y := 1; y <= m; y++ {
		row[0] = y
		bestThisRow := row[0]

		previous := y - 1
		for x := 1; x <= n; x++ {
			oldRow := row[x]
			if s1[y-1] == s2[x-1] {
				row[x] = previous
			} else if allowReplacements {
				row[x] = min(previous, row[x-1], row[x]) + 1
			} else {
				row[x] = min(row[x-1], row[x]) + 1
			}
			previous = oldRow
			bestThisRow = min(bestThisRow, row[x])
		}

		if maxEditDistance != 0 && bestThisRow > maxEditDistance {
			return maxEditDistance + 1
		}
	}

	return row[n]
}

// SpellcheckString returns the word closest to text, or "" when none is
// within a small edit distance.
func SpellcheckString(text string, words ...string) string {
	const kAllowReplacements = true
	const kMaxValidEditDistance = 3

	minDistance := kMaxValidEditDistance + 1
	result := ""
	for _, word := range words {
		distance := EditDistance(word, text, kAllowReplacements, kMaxValidEditDistance)
		if distance < minDistance {
			minDistance = distance
			result = word
		}
	}
	return result
}
