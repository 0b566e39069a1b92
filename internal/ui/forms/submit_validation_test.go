package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-donkey/convertx/internal/relay"
)

func filledQualified() url.Values {
	return url.Values{
		"name":            {"Jane"},
		"phoneNumber":     {"+20 100"},
		"role":            {"Owner"},
		"brandIGUsername": {"@brand"},
		"businessGoals":   {"Scale to 1M"},
	}
}

func filledDisqualified() url.Values {
	return url.Values{
		"name":                {"Jane"},
		"email":               {"jane@example.com"},
		"phone":               {"+20 100"},
		"instagramUser":       {"@brand"},
		"revenueLastMonth":    {"15000"},
		"adSpendLastMonth":    {"5000"},
		"upcomingCollections": {"Summer drop in June"},
	}
}

func TestQualifiedValidation(t *testing.T) {
	schema := Qualified(RelayConfig{AccessKey: "k"}, false)

	state := schema.Bind(filledQualified())
	assert.True(t, schema.Valid(state), schema.Validate(state))

	state.Set("role", "   ")
	errs := schema.Validate(state)
	assert.Equal(t, map[string]string{"role": ReasonRequired}, errs)
	assert.False(t, schema.Valid(state))
}

func TestOptionalFieldsNeverBlock(t *testing.T) {
	q := Qualified(RelayConfig{}, false)
	state := q.Bind(filledQualified())
	state.Set("extraInfo", "")
	assert.True(t, q.Valid(state))

	d := Disqualified(RelayConfig{}, false)
	dstate := d.Bind(filledDisqualified())
	dstate.Set("additionalNotes", "")
	assert.True(t, d.Valid(dstate))
}

func TestDisqualifiedEmailPattern(t *testing.T) {
	schema := Disqualified(RelayConfig{}, false)
	cases := map[string]bool{
		"jane@example.com":   true,
		" jane@example.com":  false,
		"jane@example.com ":  false,
		"jane@example":       false,
		"jane example@x.io":  false,
		"@example.com":       false,
		"jane@@example.com":  false,
	}
	for email, ok := range cases {
		values := filledDisqualified()
		values.Set("email", email)
		state := schema.Bind(values)
		if ok {
			assert.True(t, schema.Valid(state), email)
			continue
		}
		assert.Equal(t, ReasonInvalidEmail, schema.Validate(state)["email"], email)
	}
}

func TestEmailWithSurroundingSpaceIsNotSubmitted(t *testing.T) {
	schema := Disqualified(RelayConfig{AccessKey: "k"}, false)
	values := filledDisqualified()
	values.Set("email", " jane@example.com")
	state := schema.Bind(values)

	require.False(t, schema.Valid(state))
	assert.Equal(t, ReasonInvalidEmail, schema.Validate(state)["email"])
}

func TestQualifiedHasNoEmailRule(t *testing.T) {
	schema := Qualified(RelayConfig{}, false)
	_, ok := schema.Field("email")
	assert.False(t, ok)
}

func TestAttachmentOnlyRequiredWhenEnabled(t *testing.T) {
	off := Qualified(RelayConfig{}, false)
	assert.Nil(t, off.ActiveAttachment())
	assert.True(t, off.Valid(off.Bind(filledQualified())))

	on := Qualified(RelayConfig{}, true)
	state := on.Bind(filledQualified())
	assert.Equal(t, ReasonAttachment, on.Validate(state)["screenshot"])

	state.Attachment = &relay.Attachment{Filename: "a.png", Data: []byte{1}}
	assert.True(t, on.Valid(state))
}

func TestSubmissionKeepsSchemaOrder(t *testing.T) {
	schema := Disqualified(RelayConfig{AccessKey: "key", Subject: "Intake"}, false)
	state := schema.Bind(filledDisqualified())
	state.Attachment = &relay.Attachment{Filename: "ignored.png", Data: []byte{1}}

	sub := schema.Submission(state)
	assert.Equal(t, "key", sub.AccessKey)
	assert.Equal(t, "Intake", sub.Subject)
	require.Len(t, sub.Fields, 8)
	names := make([]string, 0, len(sub.Fields))
	for _, f := range sub.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"name", "email", "phone", "instagramUser", "revenueLastMonth", "adSpendLastMonth", "upcomingCollections", "additionalNotes"}, names)
	assert.Nil(t, sub.Attachment, "attachment must not be sent while the feature is off")
}

func TestDefaultSubjects(t *testing.T) {
	assert.Equal(t, "Contact Form Submission", Qualified(RelayConfig{}, false).Relay.Subject)
	assert.Equal(t, "Brand Intake Form Submission", Disqualified(RelayConfig{}, false).Relay.Subject)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", Idle().String())
	assert.Equal(t, "submitting", Submitting().String())
	assert.Equal(t, "success", Succeeded().String())
	assert.Equal(t, "error: Invalid access key", Failed("Invalid access key").String())

	assert.Equal(t, Failed("Invalid access key"), ParseStatus("error: Invalid access key"))
	assert.Equal(t, Succeeded(), ParseStatus("success"))
	assert.Equal(t, Idle(), ParseStatus("whatever"))
}

func TestResetClearsValuesAndAttachment(t *testing.T) {
	schema := Qualified(RelayConfig{}, true)
	state := schema.Bind(filledQualified())
	state.Attachment = &relay.Attachment{Data: []byte{1}}
	state.Reset()

	assert.Nil(t, state.Attachment)
	assert.Len(t, state.Values, len(schema.Fields))
	for name, v := range state.Values {
		assert.Empty(t, v, name)
	}
}
