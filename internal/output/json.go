// # internal/output/json.go
package output

import (
	"encoding/json"

	"importsearch/internal/core/errors"
	"importsearch/internal/graph"
	"importsearch/internal/search"
)

// Payload is the serializable surface of a run: the ordered flat summary
// plus the sorted visited list.
type Payload struct {
	Summary *graph.Summary `json:"summary"`
	Visited []string       `json:"visited"`
}

func NewPayload(result *search.Result) Payload {
	visited := result.Visited
	if visited == nil {
		visited = []string{}
	}
	return Payload{Summary: result.Summary, Visited: visited}
}

// JSON renders the payload with two-space indentation. Summary keys keep
// graph insertion order.
func JSON(result *search.Result) (string, error) {
	data, err := json.MarshalIndent(NewPayload(result), "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "encoding summary payload")
	}
	return string(data), nil
}
