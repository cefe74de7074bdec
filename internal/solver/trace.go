package solver

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trace finds one path of cell indices spelling word on the current grid,
// with no cell used twice. It ignores the dictionary and its exhaustion
// state, and leaves every cell released.
func (s *Solver) Trace(word string) ([]int, bool) {
	letters := []rune(cases.Lower(language.Und).String(word))
	if len(letters) == 0 {
		return nil, false
	}

	path := make([]int, 0, len(letters))
	for i := 0; i < s.grid.Len(); i++ {
		if s.grid.Cell(i).Letter != letters[0] || s.grid.InUse(i) {
			continue
		}
		if s.tracePath(i, letters, &path) {
			return path, true
		}
	}
	return nil, false
}

func (s *Solver) tracePath(cell int, letters []rune, path *[]int) bool {
	s.grid.Claim(cell)
	defer s.grid.Release(cell)
	*path = append(*path, cell)

	if len(letters) == 1 {
		return true
	}
	for _, n := range s.grid.Neighbors(cell) {
		if s.grid.InUse(n) || s.grid.Cell(n).Letter != letters[1] {
			continue
		}
		if s.tracePath(n, letters[1:], path) {
			return true
		}
	}
	*path = (*path)[:len(*path)-1]
	return false
}
