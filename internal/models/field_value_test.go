package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    FieldValue
		expected string
	}{
		{name: "string value", value: StringValue("Dr. Smith"), expected: `"Dr. Smith"`},
		{name: "empty string is not null", value: StringValue(""), expected: `""`},
		{name: "int value", value: IntValue(4), expected: `4`},
		{name: "absent value", value: AbsentValue(), expected: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestFieldValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected FieldValue
	}{
		{name: "string", input: `"hello"`, expected: StringValue("hello")},
		{name: "number", input: `42`, expected: IntValue(42)},
		{name: "null", input: `null`, expected: AbsentValue()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v FieldValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestFieldValue_Equal(t *testing.T) {
	assert.True(t, StringValue("a").Equal(StringValue("a")))
	assert.False(t, StringValue("a").Equal(StringValue("b")))
	assert.True(t, IntValue(1).Equal(IntValue(1)))
	assert.False(t, IntValue(1).Equal(IntValue(2)))
	assert.True(t, AbsentValue().Equal(AbsentValue()))

	// Absent, empty string, and zero are three distinct values.
	assert.False(t, AbsentValue().Equal(StringValue("")))
	assert.False(t, AbsentValue().Equal(IntValue(0)))
	assert.False(t, StringValue("1").Equal(IntValue(1)))
}

func TestOptionalStringValue(t *testing.T) {
	s := "text"
	assert.Equal(t, StringValue("text"), OptionalStringValue(&s))
	assert.Equal(t, AbsentValue(), OptionalStringValue(nil))
}

func TestFieldValue_String(t *testing.T) {
	assert.Equal(t, "title", StringValue("title").String())
	assert.Equal(t, "7", IntValue(7).String())
	assert.Equal(t, "<absent>", AbsentValue().String())
}

func TestSlide_Text(t *testing.T) {
	slide := Slide{
		Shapes: []Shape{
			{Name: "Title", Type: "title", Text: "Methods"},
			{Name: "Empty", Type: "body", Text: ""},
			{Name: "Body", Type: "body", Text: "Participants: 50"},
		},
	}
	assert.Equal(t, "Methods\nParticipants: 50", slide.Text())

	assert.Equal(t, "", Slide{}.Text())
}
