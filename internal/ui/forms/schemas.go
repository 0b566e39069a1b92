package forms

// Keys of the two lead forms.
const (
	KeyQualified    = "qualified"
	KeyDisqualified = "disqualified"
)

// RelayConfig is the relay credential and subject line of a form.
type RelayConfig struct {
	AccessKey string
	Subject   string
}

// AttachmentField describes the optional screenshot upload of a form.
type AttachmentField struct {
	Name     string
	Label    string
	Hint     string
	Accept   string
	Required bool
}

// Copy is a heading with a paragraph of supporting text.
type Copy struct {
	Title string
	Body  string
}

// Schema declares one lead form: its fields, relay settings and copy.
type Schema struct {
	Key    string
	Fields []Field
	Relay  RelayConfig
	// Attachment is only collected when AttachmentsEnabled is set.
	Attachment         *AttachmentField
	AttachmentsEnabled bool
	Notice             *Copy
	Success            Copy
	NextSteps          string
}

// ActiveAttachment returns the attachment field when uploads are enabled.
func (s Schema) ActiveAttachment() *AttachmentField {
	if !s.AttachmentsEnabled {
		return nil
	}
	return s.Attachment
}

// Field returns the field called name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Qualified is the discovery-call form shown to visitors above the revenue bar.
func Qualified(cfg RelayConfig, attachments bool) Schema {
	if cfg.Subject == "" {
		cfg.Subject = "Contact Form Submission"
	}
	return Schema{
		Key: KeyQualified,
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true, Placeholder: "Enter your name"},
			{Name: "phoneNumber", Label: "Phone Number", Kind: KindTel, Required: true, Placeholder: "Enter your phone number"},
			{Name: "role", Label: "Are you the owner of the brand? if not please specify your role", Kind: KindText, Required: true, Placeholder: "Enter your role"},
			{Name: "brandIGUsername", Label: "Brand IG Username", Kind: KindText, Required: true, Placeholder: "Enter brand Instagram username"},
			{Name: "businessGoals", Label: "What are your current business goals and what is holding you back from achieving them?", Kind: KindTextarea, Rows: 6, Required: true, Placeholder: "Enter your business goals and challenges"},
			{Name: "extraInfo", Label: "Would you like us to know anything extra before having a meeting?", Kind: KindTextarea, Rows: 6, Placeholder: "Enter any additional information"},
		},
		Relay: cfg,
		Attachment: &AttachmentField{
			Name:     "screenshot",
			Label:    "Image Upload field for screenshots of the brands' results (shopify / meta dashboard screenshot)",
			Accept:   "image/*",
			Required: true,
		},
		AttachmentsEnabled: attachments,
		Success:            Copy{Title: "Thank you! Your message has been sent successfully."},
		NextSteps:          "After you submit this form, someone from our team will review your submission and contact you within 24-48 hours to validate the data and schedule your discovery call time.",
	}
}

// Disqualified is the paid-consultation intake form.
func Disqualified(cfg RelayConfig, attachments bool) Schema {
	if cfg.Subject == "" {
		cfg.Subject = "Brand Intake Form Submission"
	}
	return Schema{
		Key: KeyDisqualified,
		Fields: []Field{
			{Name: "name", Label: "Your name *", Kind: KindText, Required: true, Placeholder: "Enter your full name"},
			{Name: "email", Label: "Email address *", Kind: KindEmail, Required: true, Placeholder: "Enter your email address", Validator: ValidEmail, Reason: ReasonInvalidEmail},
			{Name: "phone", Label: "Phone Number (include country code) *", Kind: KindTel, Required: true, Placeholder: "+33 6 12 34 56 78"},
			{Name: "instagramUser", Label: "The Brand's Instagram User *", Kind: KindText, Required: true, Placeholder: "@yourbrandhandle"},
			{Name: "revenueLastMonth", Label: "How much have your brand generated in revenue in the past month? (including currency) *", Kind: KindNumber, Required: true, Placeholder: "Enter last month's revenue (e.g. EGP 15000)"},
			{Name: "adSpendLastMonth", Label: "How much have you spend on ads in the past month? (including currency) *", Kind: KindNumber, Required: true, Placeholder: "Enter last month's ad spend (e.g. EGP 5000)"},
			{Name: "upcomingCollections", Label: "Do you have any collections/updates for the brands releasing soon? If so please mention what the collection/update is about and the release date? *", Kind: KindTextarea, Rows: 4, Required: true, Placeholder: "Describe upcoming drops, campaigns, or updates and their planned release dates"},
			{Name: "additionalNotes", Label: "Additional notes", Kind: KindTextarea, Rows: 4, Placeholder: "Please share anything that will help prepare for our meeting."},
		},
		Relay: cfg,
		Attachment: &AttachmentField{
			Name:     "transactionScreenshot",
			Label:    "Transaction Screenshot * (Required for confirmation)",
			Hint:     "Upload a screenshot of your consultation fee transaction.",
			Accept:   "image/*",
			Required: true,
		},
		AttachmentsEnabled: attachments,
		Notice: &Copy{
			Title: "Consultation Fee: 100$",
			Body:  "Please note that the consultation requires full payment upfront. After submitting this form and confirming your transaction, someone from our team will contact you to schedule your consultation time.",
		},
		Success: Copy{
			Title: "Thank you! Your form has been submitted successfully.",
			Body:  "Someone from our team will contact you shortly to schedule your consultation time.",
		},
		NextSteps: "After you submit this form with your transaction screenshot, someone from our team will review your submission and contact you within 24-48 hours to schedule your consultation time.",
	}
}
