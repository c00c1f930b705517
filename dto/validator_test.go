package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(err error) map[string]string {
	out := map[string]string{}
	for _, e := range FormatValidationErrors(err) {
		out[e.Field] = e.Message
	}
	return out
}

func TestRegisterRequestValidation(t *testing.T) {
	req := RegisterRequest{
		FirstName:       "  ",
		LastName:        "Lovelace",
		Email:           "not-an-email",
		Grade:           13,
		Password:        "secret123",
		ConfirmPassword: "secret124",
	}

	err := req.Validate()
	require.Error(t, err)

	msgs := messages(err)
	assert.Equal(t, "firstName is required", msgs["firstName"])
	assert.Equal(t, "Please provide a valid email", msgs["email"])
	assert.Equal(t, "grade must be less than or equal to 12", msgs["grade"])
	assert.Equal(t, "Passwords do not match", msgs["confirmPassword"])
	assert.NotContains(t, msgs, "lastName")
}

func TestRegisterRequestNormalize(t *testing.T) {
	req := RegisterRequest{
		FirstName:       " Ada ",
		LastName:        "Lovelace ",
		Email:           " Ada@Example.COM ",
		Grade:           4,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	req.Normalize()

	assert.Equal(t, "Ada", req.FirstName)
	assert.Equal(t, "ada@example.com", req.Email)
	assert.NoError(t, req.Validate())
}

func TestProgressRequestValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   ProgressRequest
		field string
		msg   string
	}{
		{
			name:  "completion above 100",
			req:   ProgressRequest{TopicID: "t1", CompletionPercentage: 101},
			field: "completionPercentage",
			msg:   "completionPercentage must be less than or equal to 100",
		},
		{
			name:  "negative time",
			req:   ProgressRequest{TopicID: "t1", TimeSpent: -1},
			field: "timeSpent",
			msg:   "timeSpent must be greater than or equal to 0",
		},
		{
			name:  "more correct than attempted",
			req:   ProgressRequest{TopicID: "t1", QuestionsCorrect: 5, QuestionsAttempted: 4},
			field: "questionsCorrect",
			msg:   "questionsCorrect cannot exceed questionsAttempted",
		},
		{
			name:  "missing topic",
			req:   ProgressRequest{CompletionPercentage: 10},
			field: "topicId",
			msg:   "topicId is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.msg, messages(err)[tt.field])
		})
	}

	ok := ProgressRequest{TopicID: "t1", CompletionPercentage: 50, TimeSpent: 60, QuestionsCorrect: 3, QuestionsAttempted: 4}
	assert.NoError(t, ok.Validate())
}

func TestCreateValidationErrorResponse(t *testing.T) {
	err := SubmitGameRequest{SessionID: "s1", CorrectAnswers: 1}.Validate()
	require.Error(t, err)

	resp := CreateValidationErrorResponse(err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotEmpty(t, resp.Errors)
}
