package store

import "github.com/roach88/wordgrid/internal/score"

// Solve is one recorded solve of a board against a dictionary.
type Solve struct {
	ID             string            `json:"id"`
	Seq            int64             `json:"seq"`
	Grid           string            `json:"grid"` // CSV form, see grid.Grid.String
	Rows           int               `json:"rows"`
	Cols           int               `json:"cols"`
	DictionaryHash string            `json:"dictionary_hash"`
	TotalScore     int               `json:"total_score"`
	WordCount      int               `json:"word_count"`
	Words          []score.FoundWord `json:"words,omitempty"`
}

// Run records the parameters of one optimizer run.
type Run struct {
	ID         string `json:"id"`
	Seq        int64  `json:"seq"`
	Seed       int64  `json:"seed"`
	Population int    `json:"population"`
	Mutation   int    `json:"mutation"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
}

// Generation records the extremes of one optimizer generation.
// Boards are flat row-major letter strings.
type Generation struct {
	RunID      string `json:"run_id"`
	Number     int    `json:"generation"`
	Seq        int64  `json:"seq"`
	BestBoard  string `json:"best_board"`
	BestScore  int    `json:"best_score"`
	WorstBoard string `json:"worst_board"`
	WorstScore int    `json:"worst_score"`
}
