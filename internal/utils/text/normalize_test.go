package text

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{name: "spaces become hyphens", tag: "Data Science", want: "data-science"},
		{name: "uppercase lowered", tag: "GoLang", want: "golang"},
		{name: "already normalized", tag: "machine-learning", want: "machine-learning"},
		{name: "multiple spaces", tag: "a b c", want: "a-b-c"},
		{name: "empty passthrough", tag: "", want: ""},
		{name: "whitespace not trimmed", tag: " ai ", want: "-ai-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.tag))
		})
	}
}

func TestNormalizeTagIdempotent(t *testing.T) {
	for _, tag := range []string{"Data Science", "golang", "Top Of The Pops"} {
		once := NormalizeTag(tag)
		assert.Equal(t, once, NormalizeTag(once))
	}
}

type stubHandle struct {
	handle string
}

func (s stubHandle) Handle() string { return s.handle }

func TestStringify(t *testing.T) {
	var nilPtr *int

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "empty string", value: "", want: ""},
		{name: "string", value: "hello", want: "hello"},
		{name: "handle bearer", value: stubHandle{handle: "kenny"}, want: "kenny"},
		{name: "handle bearer with empty handle", value: stubHandle{}, want: ""},
		{name: "timestamp", value: time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC), want: "2024-01-15T10:30:45"},
		{name: "zero int", value: 0, want: ""},
		{name: "false", value: false, want: ""},
		{name: "empty slice", value: []string{}, want: ""},
		{name: "empty map", value: map[string]int{}, want: ""},
		{name: "nil pointer", value: nilPtr, want: ""},
		{name: "int", value: 42, want: "42"},
		{name: "true", value: true, want: "true"},
		{name: "float", value: 1.5, want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.value))
		})
	}
}
