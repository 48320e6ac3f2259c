package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

func validRecruitment() model.RecruitmentInput {
	return model.RecruitmentInput{
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Phone:      "98765 43210",
		Year:       "2nd Year",
		Branch:     "CSE",
		Skills:     []string{"go", "figma"},
		Experience: strings.Repeat("Worked on club projects. ", 3),
		RoleID:     "tech-lead",
	}
}

func validFeedback() model.FeedbackInput {
	return model.FeedbackInput{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Rating:   4,
		Category: "events",
		Message:  "The workshop lineup this semester was well organized.",
	}
}

func TestRecruitmentValid(t *testing.T) {
	v := New()
	assert.Empty(t, v.Recruitment(validRecruitment()))
}

func TestRecruitmentSingleMissingField(t *testing.T) {
	v := New()

	tests := []struct {
		field   string
		mutate  func(*model.RecruitmentInput)
		message string
	}{
		{"name", func(in *model.RecruitmentInput) { in.Name = "   " }, "Name is required"},
		{"email", func(in *model.RecruitmentInput) { in.Email = "" }, "Email is required"},
		{"phone", func(in *model.RecruitmentInput) { in.Phone = "" }, "Phone is required"},
		{"year", func(in *model.RecruitmentInput) { in.Year = "" }, "Year is required"},
		{"branch", func(in *model.RecruitmentInput) { in.Branch = "" }, "Branch is required"},
		{"roleId", func(in *model.RecruitmentInput) { in.RoleID = "" }, "Role selection is required"},
		{"experience", func(in *model.RecruitmentInput) { in.Experience = "" }, "Experience is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validRecruitment()
			tt.mutate(&in)
			errs := v.Recruitment(in)
			assert.Len(t, errs, 1, "exactly the mutated field must be reported")
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestRecruitmentFormatRules(t *testing.T) {
	v := New()

	t.Run("invalid email", func(t *testing.T) {
		in := validRecruitment()
		in.Email = "asha@example"
		assert.Equal(t, map[string]string{"email": "Invalid email format"}, v.Recruitment(in))
	})

	t.Run("phone strips formatting", func(t *testing.T) {
		in := validRecruitment()
		in.Phone = "+91 (98765) 43210"
		errs := v.Recruitment(in)
		assert.Contains(t, errs, "phone", "more than 10 digits after stripping must fail")

		in.Phone = "(98765) 43210"
		assert.Empty(t, v.Recruitment(in))
	})

	t.Run("experience length boundary", func(t *testing.T) {
		in := validRecruitment()
		in.Experience = strings.Repeat("x", 49)
		assert.Equal(t, "Experience must be at least 50 characters", v.Recruitment(in)["experience"])

		in.Experience = strings.Repeat("x", 50)
		assert.Empty(t, v.Recruitment(in))
	})
}

func TestFeedbackValid(t *testing.T) {
	v := New()
	assert.Empty(t, v.Feedback(validFeedback()))
}

func TestFeedbackSingleMissingField(t *testing.T) {
	v := New()

	tests := []struct {
		field   string
		mutate  func(*model.FeedbackInput)
		message string
	}{
		{"name", func(in *model.FeedbackInput) { in.Name = "" }, "Name is required"},
		{"email", func(in *model.FeedbackInput) { in.Email = "" }, "Email is required"},
		{"rating", func(in *model.FeedbackInput) { in.Rating = 0 }, "Valid rating is required"},
		{"category", func(in *model.FeedbackInput) { in.Category = "" }, "Category is required"},
		{"message", func(in *model.FeedbackInput) { in.Message = "" }, "Message is required"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validFeedback()
			tt.mutate(&in)
			errs := v.Feedback(in)
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestFeedbackRatingRange(t *testing.T) {
	v := New()
	for _, rating := range []int{-1, 6} {
		in := validFeedback()
		in.Rating = rating
		assert.Equal(t, "Valid rating is required", v.Feedback(in)["rating"])
	}
	for rating := 1; rating <= 5; rating++ {
		in := validFeedback()
		in.Rating = rating
		assert.Empty(t, v.Feedback(in))
	}
}

func TestFeedbackMessageLengthBoundary(t *testing.T) {
	v := New()

	in := validFeedback()
	in.Message = strings.Repeat("x", 9)
	assert.Equal(t, "Message must be at least 10 characters", v.Feedback(in)["message"])

	in.Message = strings.Repeat("x", 10)
	assert.Empty(t, v.Feedback(in))
}

func TestAllMissingFieldsReported(t *testing.T) {
	v := New()
	errs := v.Recruitment(model.RecruitmentInput{})
	for _, field := range []string{"name", "email", "phone", "year", "branch", "roleId", "experience"} {
		assert.Contains(t, errs, field)
	}
}
