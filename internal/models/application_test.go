package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshal(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   []string
		joined string
	}{
		{"array input", `["bci","ai"]`, []string{"bci", "ai"}, "bci,ai"},
		{"joined string input", `"bci,ai"`, []string{"bci", "ai"}, "bci,ai"},
		{"single value string", `"python"`, []string{"python"}, "python"},
		{"empty string", `""`, []string{}, ""},
		{"empty array", `[]`, []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.raw), &got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, []string(got))
			assert.Equal(t, tt.joined, got.Join())
		})
	}
}

func TestStringListAbsentField(t *testing.T) {
	var in ApplicationInput
	err := json.Unmarshal([]byte(`{"name":"Zhang"}`), &in)
	require.NoError(t, err)
	assert.Equal(t, "", in.Interests.Join())
	assert.Equal(t, "", in.Skills.Join())
}

func TestSplitJoined(t *testing.T) {
	assert.Equal(t, []string{"bci", "ai"}, SplitJoined("bci,ai"))
	assert.Equal(t, []string{"python"}, SplitJoined("python"))
	assert.Equal(t, []string{}, SplitJoined(""))
}

func validInput() *ApplicationInput {
	return &ApplicationInput{
		Name:      "Zhang",
		StudentID: "2021001",
		Email:     "z@x.com",
		Phone:     "138",
		Major:     "CS",
		Position:  "dev",
	}
}

func TestApplicationInputValidate(t *testing.T) {
	require.NoError(t, validInput().Validate())

	t.Run("reports first missing field by json name", func(t *testing.T) {
		clear := []struct {
			field string
			mod   func(*ApplicationInput)
		}{
			{"name", func(in *ApplicationInput) { in.Name = "" }},
			{"student_id", func(in *ApplicationInput) { in.StudentID = "" }},
			{"email", func(in *ApplicationInput) { in.Email = "" }},
			{"phone", func(in *ApplicationInput) { in.Phone = "" }},
			{"major", func(in *ApplicationInput) { in.Major = "" }},
			{"position", func(in *ApplicationInput) { in.Position = "" }},
		}

		for _, tt := range clear {
			in := validInput()
			tt.mod(in)
			err := in.Validate()
			require.Error(t, err)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		}
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		in := validInput()
		in.Grade = ""
		in.Interests = nil
		in.Skills = nil
		require.NoError(t, in.Validate())
	})
}

func TestContactInputValidate(t *testing.T) {
	in := &ContactInput{
		Name:    "Li",
		Email:   "li@x.com",
		Subject: "hello",
		Message: "hi there",
	}
	require.NoError(t, in.Validate())

	in.Subject = ""
	err := in.Validate()
	require.Error(t, err)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "contact-subject", missing.Field)
}
