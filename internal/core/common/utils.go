package common

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// ParseJSON cleans and unmarshals a JSON string into a type T.
// It handles common LLM quirks like surrounding markdown or extra text:
// a fenced ```json block is preferred, otherwise the substring between the
// first '{' and the last '}' is used. Untagged fences get no special
// treatment so stray code blocks cannot shadow a JSON object elsewhere in
// the reply.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	jsonStr, ok := extractFenced(response)
	if !ok {
		var err error
		jsonStr, err = extractBraced(response)
		if err != nil {
			return zero, err
		}
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, jsonStr)
	}

	return result, nil
}

func extractFenced(response string) (string, bool) {
	m := fencedJSONRe.FindStringSubmatch(response)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func extractBraced(response string) (string, error) {
	start := -1
	end := -1

	for i, c := range response {
		if c == '{' {
			start = i
			break
		}
	}
	for i := len(response) - 1; i >= 0; i-- {
		if c := response[i]; c == '}' {
			end = i + 1
			break
		}
	}

	if start == -1 || end == -1 || start >= end {
		return "", fmt.Errorf("no JSON object found in response (missing '{')")
	}
	return response[start:end], nil
}
