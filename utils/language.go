// utils/language.go
package utils

// StrDistance computes the Damerau-Levenshtein distance between two strings
// (insert/delete/substitute cost 1, adjacent transposition cost 1). While
// filling the matrix, if the diagonal cell exceeds 4 the strings are treated
// as far apart and the longer length is returned, skipping the rest of the
// work.
func StrDistance(s, t string) int {
	a := []rune(s)
	b := []rune(t)
	n := len(a)
	m := len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	longer := n
	if m > n {
		longer = m
	}

	d := make([][]int, n+1)
	for i := 0; i <= n; i++ {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			mi := d[i-1][j] + 1
			if ins := d[i][j-1] + 1; ins < mi {
				mi = ins
			}
			if sub := d[i-1][j-1] + cost; sub < mi {
				mi = sub
			}
			d[i][j] = mi

			// Damerau transposition
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if tr := d[i-2][j-2] + cost; tr < d[i][j] {
					d[i][j] = tr
				}
			}

			if i == j && d[i][j] > 4 {
				return longer
			}
		}
	}

	return d[n][m]
}
