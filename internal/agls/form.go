package agls

// Field labels shown by the settings form.
const (
	LabelCreator       = "Creator"
	LabelPublisher     = "Publisher"
	LabelCorporateName = "Corporate name"
	LabelAddress       = "Address"
	LabelContact       = "Contact number"
	LabelSameAsCreator = "Same as creator"
)

type FieldType string

const (
	FieldText   FieldType = "text"
	FieldToggle FieldType = "toggle"
)

// FormField describes one input bound to a Settings value.
type FormField struct {
	Name  string    `json:"name"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
}

// FormToggle groups fields whose visibility follows a checkbox.
// Children are visible when the checkbox state equals ShowWhenChecked.
type FormToggle struct {
	FormField
	ShowWhenChecked bool        `json:"show_when_checked"`
	Children        []FormField `json:"children"`
}

type FormSection struct {
	Name   string      `json:"name"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields,omitempty"`
	Toggle *FormToggle `json:"toggle,omitempty"`
}

// Form is the settings form descriptor handed to whatever renders the admin UI.
type Form struct {
	Tab      string        `json:"tab"`
	Sections []FormSection `json:"sections"`
}

func organizationFields(prefix string) []FormField {
	return []FormField{
		{Name: prefix + ".corporate_name", Label: LabelCorporateName, Type: FieldText},
		{Name: prefix + ".address", Label: LabelAddress, Type: FieldText},
		{Name: prefix + ".contact", Label: LabelContact, Type: FieldText},
	}
}

// SettingsForm answers the creator section and the publisher section, the latter
// hiding its fields while "same as creator" is checked.
func SettingsForm() Form {
	return Form{
		Tab: "AGLS",
		Sections: []FormSection{
			{
				Name:   "creator",
				Title:  LabelCreator,
				Fields: organizationFields("creator"),
			},
			{
				Name:  "publisher",
				Title: LabelPublisher,
				Toggle: &FormToggle{
					FormField: FormField{
						Name:  "publisher_same_as_creator",
						Label: LabelSameAsCreator,
						Type:  FieldToggle,
					},
					ShowWhenChecked: false,
					Children:        organizationFields("publisher"),
				},
			},
		},
	}
}
