package bubblegum

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

// Result is the decoded payload of a confirmed operation. Keys are in
// canonical snake_case form; values are decoded JSON passed through
// unchanged. Guaranteed fields:
//
//	CreateTreeConfig: "tree_pubkey", "signature"
//	MintToCollection: "signature"
//	Transfer:         "signature"
type Result map[string]any

// normalize decodes a submitter success payload into a Result. Only JSON
// well-formedness is checked here; the payload's business meaning is not.
func normalize(raw string) (Result, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	if payload == nil {
		return nil, &ParseError{Raw: raw, Err: errors.New("payload is not a JSON object")}
	}

	out := make(Result, len(payload))
	for k, v := range payload {
		out[canonicalKey(k)] = v
	}
	return out, nil
}

// canonicalKey lowers a JSON key to snake_case identifier form
// ("treePubkey" -> "tree_pubkey"). Total over all strings; keys already in
// canonical form pass through unchanged.
func canonicalKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 2)
	prevLower := false
	for _, r := range key {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	return b.String()
}
