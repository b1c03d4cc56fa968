package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AnswerKind discriminates the JSON type of a submitted answer value.
type AnswerKind int

const (
	AnswerAbsent AnswerKind = iota
	AnswerNumber
	AnswerString
)

// AnswerValue is a tagged union over the two answer value shapes the API
// accepts: JSON numbers (likert ratings) and JSON strings (choice keys,
// free text). The zero value means no answer was supplied.
type AnswerValue struct {
	Kind   AnswerKind
	Number float64
	Text   string
}

func NumberAnswer(n float64) AnswerValue {
	return AnswerValue{Kind: AnswerNumber, Number: n}
}

func StringAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerString, Text: s}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	b := bytes.TrimSpace(data)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = StringAnswer(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("answer must be a number or a string")
	}
	*v = NumberAnswer(n)
	return nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerNumber:
		return json.Marshal(v.Number)
	case AnswerString:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

// Answer is one recorded submission for a question.
type Answer struct {
	Value       AnswerValue
	SubmittedAt time.Time
}
