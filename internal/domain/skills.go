package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Skills is a skill list decoded from a column that may hold either an array or a scalar.
type Skills []string

// UnmarshalJSON accepts an array (elements rendered as strings), a scalar, or null.
func (s *Skills) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || isNull(data) {
		*s = nil
		return nil
	}

	if data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode skills array: %w", err)
		}
		out := make(Skills, 0, len(items))
		for _, item := range items {
			if isNull(item) {
				continue
			}
			out = append(out, scalarString(item))
		}
		*s = out
		return nil
	}

	if v := scalarString(data); v != "" {
		*s = Skills{v}
		return nil
	}
	*s = nil
	return nil
}

// MarshalJSON renders a nil list as [].
func (s Skills) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Text joins the skills with single spaces.
func (s Skills) Text() string {
	return strings.Join(s, " ")
}

func scalarString(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return string(bytes.TrimSpace(raw))
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// ParseSkills decodes a JSON skills column; nil or empty input yields no skills.
func ParseSkills(raw []byte) (Skills, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s Skills
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse skills: %w", err)
	}
	return s, nil
}
