package models

// Field names accepted by the registration form. They double as the HTML
// input names and the JSON keys sent to the sheet.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldLocation   = "location"
	FieldExperience = "experience"
	FieldMotivation = "motivation"
)

// Fields lists the registration fields in display order.
var Fields = []string{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldLocation,
	FieldExperience,
	FieldMotivation,
}

// MotivationMaxLength is advisory: the page shows a counter and sets
// maxlength, the server does not reject longer text.
const MotivationMaxLength = 500

// RegistrationInput represents the data entered in the landing page form
type RegistrationInput struct {
	Name       string `json:"name" form:"name" binding:"required"`
	Email      string `json:"email" form:"email" binding:"required,email"`
	Phone      string `json:"phone" form:"phone" binding:"required"`
	Location   string `json:"location" form:"location" binding:"required"`
	Experience string `json:"experience" form:"experience" binding:"required"`
	Motivation string `json:"motivation" form:"motivation" binding:"required"`
}

// Values returns the input keyed by field name.
func (in RegistrationInput) Values() map[string]string {
	return map[string]string{
		FieldName:       in.Name,
		FieldEmail:      in.Email,
		FieldPhone:      in.Phone,
		FieldLocation:   in.Location,
		FieldExperience: in.Experience,
		FieldMotivation: in.Motivation,
	}
}

// Missing returns the names of empty fields, in display order.
func (in RegistrationInput) Missing() []string {
	values := in.Values()
	var missing []string
	for _, f := range Fields {
		if values[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// SheetRow is the record appended to the registration spreadsheet.
// Phone carries a leading apostrophe so the sheet stores it as text.
type SheetRow struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	Motivation string `json:"motivation"`
	Timestamp  string `json:"timestamp"`
}

// RawPhone returns the phone number without the text-coercion apostrophe.
func (r SheetRow) RawPhone() string {
	if len(r.Phone) > 0 && r.Phone[0] == '\'' {
		return r.Phone[1:]
	}
	return r.Phone
}
