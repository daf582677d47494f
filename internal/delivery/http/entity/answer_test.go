package entity

import (
	"encoding/json"
	"testing"
)

func TestAnswer_UnmarshalPreservesType(t *testing.T) {
	var answers []Answer
	if err := json.Unmarshal([]byte(`[1, true, "Paris", 0, false]`), &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []Answer{
		IntAnswer(1),
		BoolAnswer(true),
		StringAnswer("Paris"),
		IntAnswer(0),
		BoolAnswer(false),
	}
	if len(answers) != len(want) {
		t.Fatalf("got %d answers, want %d", len(answers), len(want))
	}
	for i := range want {
		if !answers[i].Equal(want[i]) {
			t.Errorf("answer %d: got %v (kind %d), want %v", i, answers[i], answers[i].Kind(), want[i])
		}
	}
}

func TestAnswer_MarshalKeepsJSONType(t *testing.T) {
	data, err := json.Marshal([]Answer{IntAnswer(2), BoolAnswer(true), StringAnswer("oui")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(data); got != `[2,true,"oui"]` {
		t.Errorf("got %s", got)
	}
}

func TestAnswer_EqualIsStrict(t *testing.T) {
	tests := []struct {
		name string
		a, b Answer
		want bool
	}{
		{"same int", IntAnswer(1), IntAnswer(1), true},
		{"different int", IntAnswer(1), IntAnswer(2), false},
		{"string vs int never coerced", StringAnswer("1"), IntAnswer(1), false},
		{"bool vs int never coerced", BoolAnswer(true), IntAnswer(1), false},
		{"same string", StringAnswer("Paris"), StringAnswer("Paris"), true},
		{"case sensitive", StringAnswer("paris"), StringAnswer("Paris"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAnswer_UnmarshalNonIntegerNumber(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`1.5`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s, ok := a.Str(); !ok || s != "1.5" {
		t.Errorf("non-integer number should keep its literal text, got %v", a)
	}
}

func TestAnswer_UnmarshalRejectsObjects(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"value": 1}`), &a); err == nil {
		t.Error("expected an error for object answers")
	}
}
