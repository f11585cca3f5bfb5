package bank

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the serialization format of a bank document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks a Format from the file extension. Defaults to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadResult holds the outcome of parsing a bank document.
type LoadResult struct {
	// Roles maps role name to its ordered valid questions.
	Roles map[string][]Question

	// Skipped lists records that failed the question invariant and were
	// dropped. Order follows sorted role name, then record index.
	Skipped []*ErrInvalidQuestion

	// DroppedRoles lists roles removed because no valid question remained.
	DroppedRoles []string
}

// Parse decodes and validates a bank document.
//
// The top-level structure must be a mapping from role name to a list of
// records (ErrMalformedBank otherwise). Records that fail the question
// invariant are skipped, not fatal; a role left with zero valid records is
// dropped. Parse fails with ErrEmptyBank only when no role survives.
func Parse(data []byte, format Format) (*LoadResult, error) {
	var doc any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &ErrMalformedBank{Err: err}
	}

	schema, err := compiledDocumentSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &ErrMalformedBank{Err: err}
	}

	mapping, ok := doc.(map[string]any)
	if !ok {
		return nil, &ErrMalformedBank{Err: fmt.Errorf("top level is %T, want mapping", doc)}
	}

	roleNames := make([]string, 0, len(mapping))
	for role := range mapping {
		roleNames = append(roleNames, role)
	}
	sort.Strings(roleNames)

	result := &LoadResult{Roles: make(map[string][]Question, len(mapping))}
	for _, role := range roleNames {
		records, ok := mapping[role].([]any)
		if !ok {
			return nil, &ErrMalformedBank{Err: fmt.Errorf("role %q: value is %T, want list", role, mapping[role])}
		}

		var valid []Question
		for i, record := range records {
			q, err := decodeQuestion(record)
			if err == nil {
				err = q.Validate()
			}
			if err != nil {
				result.Skipped = append(result.Skipped, &ErrInvalidQuestion{Role: role, Index: i, Err: err})
				continue
			}
			valid = append(valid, q)
		}

		if len(valid) == 0 {
			result.DroppedRoles = append(result.DroppedRoles, role)
			continue
		}
		result.Roles[role] = valid
	}

	if len(result.Roles) == 0 {
		return nil, &ErrEmptyBank{}
	}
	return result, nil
}

// decodeQuestion converts a loosely-typed record into a Question.
// A JSON round trip handles both json- and yaml-decoded values.
func decodeQuestion(record any) (Question, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return Question{}, fmt.Errorf("encode record: %w", err)
	}
	var q Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return Question{}, fmt.Errorf("decode record: %w", err)
	}
	return q, nil
}
