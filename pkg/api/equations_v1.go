// pkg/api/equations_v1.go
package api

// EquationV1 is the stable JSONL schema for one generated or filtered word.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type EquationV1 struct {
	Word       string `json:"word"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// PairV1 is the stable JSONL schema for two words with no shared character.
type PairV1 struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// CountV1 is written instead of items when only a total is requested.
type CountV1 struct {
	Count int `json:"count"`
}
