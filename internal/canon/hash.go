package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Domain prefixes for content-addressed identity.
// The version suffix allows the encoding to change without collisions.
const (
	DomainGrid       = "wordgrid/grid/v1"
	DomainDictionary = "wordgrid/dictionary/v1"
	DomainSolve      = "wordgrid/solve/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// GridHash identifies a board by its rows of letters.
func GridHash(rows [][]rune) (string, error) {
	arr := make([]any, len(rows))
	for i, row := range rows {
		arr[i] = string(row)
	}
	data, err := Marshal(arr)
	if err != nil {
		return "", fmt.Errorf("GridHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainGrid, data), nil
}

// DictionaryHash identifies a word list independent of its order.
func DictionaryHash(words []string) (string, error) {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	data, err := Marshal(sorted)
	if err != nil {
		return "", fmt.Errorf("DictionaryHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDictionary, data), nil
}

// SolveID identifies one solve of a board against a dictionary. Solving the
// same board with the same dictionary always yields the same ID, so records
// keyed by it are idempotent.
func SolveID(gridHash, dictionaryHash string) (string, error) {
	data, err := Marshal(map[string]any{
		"grid":       gridHash,
		"dictionary": dictionaryHash,
	})
	if err != nil {
		return "", fmt.Errorf("SolveID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSolve, data), nil
}
