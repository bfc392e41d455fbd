package inference

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrDecodeFailure means the model text could not be read as an answer.
var ErrDecodeFailure = errors.New("could not parse JSON response")

var fencePattern = regexp.MustCompile("(?m)^```(?:json)?\\s*\\n|\\n```$")

// Answer is the structured result decoded from the model's text.
// Fields keep the model's values as-is; accessors apply defaults.
type Answer struct {
	fields map[string]json.RawMessage
	keys   []string
}

// DecodeAnswer reads raw model text as a JSON object.
// It tries the text as-is first, then once more with markdown code fences removed.
func DecodeAnswer(raw string) (Answer, bool) {
	candidates := []string{
		raw,
		fencePattern.ReplaceAllString(strings.TrimSpace(raw), ""),
	}
	for _, candidate := range candidates {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
			continue
		}
		// "null" decodes into a nil map without an error
		if fields == nil {
			continue
		}
		return Answer{fields: fields, keys: objectKeys(candidate)}, true
	}
	return Answer{}, false
}

// Command returns the suggested shell command, or an empty string when absent.
func (answer Answer) Command() string {
	return answer.stringField("cmd")
}

// Explanation returns what the command does, or an empty string when absent.
func (answer Answer) Explanation() string {
	return answer.stringField("explanation")
}

// Dangerous reports whether the model flagged the command with the JSON literal true.
// Any other value, including the string "true", is false.
func (answer Answer) Dangerous() bool {
	raw, ok := answer.fields["dangerous"]
	if !ok {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(raw), []byte("true"))
}

// Fields returns a copy of every decoded key with its raw JSON value.
func (answer Answer) Fields() map[string]json.RawMessage {
	fields := make(map[string]json.RawMessage, len(answer.fields))
	for key, value := range answer.fields {
		fields[key] = value
	}
	return fields
}

// Keys returns the top-level keys in the order the model wrote them.
// A repeated key is listed once, at its first position.
func (answer Answer) Keys() []string {
	return append([]string(nil), answer.keys...)
}

func objectKeys(data string) []string {
	decoder := json.NewDecoder(strings.NewReader(data))
	if _, err := decoder.Token(); err != nil {
		return nil
	}

	var keys []string
	seen := make(map[string]bool)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return keys
		}
		key, _ := token.(string)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return keys
		}
	}
	return keys
}

func (answer Answer) stringField(key string) string {
	raw, ok := answer.fields[key]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err == nil {
		return value
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return ""
	}
	return string(raw)
}
