package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type AnswerKind int

const (
	AnswerKindString AnswerKind = iota
	AnswerKindInt
	AnswerKindBool
)

// Answer is a single exercise answer value. The LLM and clients send answers
// as JSON strings, integers, or booleans; the source type is preserved so
// scoring compares without coercion ("1" and 1 are not equal).
type Answer struct {
	kind AnswerKind
	str  string
	num  int
	flag bool
}

func StringAnswer(s string) Answer {
	return Answer{kind: AnswerKindString, str: s}
}

func IntAnswer(n int) Answer {
	return Answer{kind: AnswerKindInt, num: n}
}

func BoolAnswer(b bool) Answer {
	return Answer{kind: AnswerKindBool, flag: b}
}

func (a Answer) Kind() AnswerKind {
	return a.kind
}

// Str returns the string value and whether the answer is a string.
func (a Answer) Str() (string, bool) {
	return a.str, a.kind == AnswerKindString
}

// Int returns the integer value and whether the answer is an integer.
func (a Answer) Int() (int, bool) {
	return a.num, a.kind == AnswerKindInt
}

// Bool returns the boolean value and whether the answer is a boolean.
func (a Answer) Bool() (bool, bool) {
	return a.flag, a.kind == AnswerKindBool
}

// Equal reports strict equality: same kind and same value.
func (a Answer) Equal(other Answer) bool {
	return a == other
}

func (a Answer) String() string {
	switch a.kind {
	case AnswerKindInt:
		return strconv.Itoa(a.num)
	case AnswerKindBool:
		return strconv.FormatBool(a.flag)
	default:
		return a.str
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerKindInt:
		return json.Marshal(a.num)
	case AnswerKindBool:
		return json.Marshal(a.flag)
	default:
		return json.Marshal(a.str)
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case bool:
		*a = BoolAnswer(t)
	case string:
		*a = StringAnswer(t)
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err != nil {
			// Non-integer numbers are rare; keep them as their literal text.
			*a = StringAnswer(t.String())
			return nil
		}
		*a = IntAnswer(n)
	default:
		return fmt.Errorf("unsupported answer type %T", v)
	}

	return nil
}
