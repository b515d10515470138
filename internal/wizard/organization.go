package wizard

// Country/state options offered by the organization form. The state list
// follows the selected country.
var orgCountryStates = map[string][]string{
	"India":  {"Delhi", "Maharashtra", "Karnataka", "Gujarat", "Tamil Nadu"},
	"USA":    {"California", "Texas", "Florida", "New York"},
	"UK":     {"London", "Manchester", "Birmingham"},
	"Canada": {"Ontario", "Quebec", "Alberta"},
}

// StatesFor returns the state options for a country, or nil when no country
// is selected yet.
func StatesFor(country string) []string { return orgCountryStates[country] }

// OrganizationSteps is the 2-step organization registration: details, then
// password. The alternate email and portal link are optional; the alternate
// email is still pattern-checked when supplied.
func OrganizationSteps() []StepDef {
	return []StepDef{
		{
			Title: "Registration",
			Fields: []FieldDef{
				{Name: "orgName", Label: "Organization Name"},
				{Name: "regNumber", Label: "Registration Number"},
				{Name: "country", Label: "Country", Kind: FieldSelect, Options: []string{"India", "USA", "UK", "Canada"}},
				{Name: "state", Label: "State", Kind: FieldSelect, DynamicOptions: func(f Fields) []string {
					return StatesFor(f.Get("country").Text())
				}},
				{Name: "address", Label: "Address", Kind: FieldTextarea},
				{Name: "coordName", Label: "Coordinator Name"},
				{Name: "coordDesg", Label: "Coordinator Designation"},
				{Name: "coordEmail", Label: "Coordinator Email"},
				{Name: "coordAltEmail", Label: "Alternate Email (optional)"},
				{Name: "coordPhone", Label: "Coordinator Phone"},
				{Name: "portalLink", Label: "Careers Portal Link (optional)"},
				{Name: "profileDoc", Label: "Organization Document / Proof", Kind: FieldFile},
			},
			Rules: []Rule{
				Required("orgName", "Organization name is required."),
				Required("regNumber", "Registration number is required."),
				Required("country", "Select country."),
				Required("state", "Select state."),
				Required("address", "Address required."),
				Required("coordName", "Coordinator name is required."),
				Required("coordDesg", "Coordinator designation required."),
				Email("coordEmail", "Invalid email format.", "Invalid email format."),
				Email("coordAltEmail", "", "Invalid alternate email."),
				Phone("coordPhone", "", "Enter 10-digit phone number."),
				Required("profileDoc", "Please upload organization document/proof."),
			},
		},
		{
			Title: "Create Password",
			Fields: []FieldDef{
				{Name: "password", Label: "Password", Kind: FieldPassword},
				{Name: "confirmPassword", Label: "Confirm Password", Kind: FieldPassword},
			},
			Rules: []Rule{
				Password("password", "", "Password must be at least 8 chars, have upper, lower, number, and symbol."),
				Matches("confirmPassword", "password", "Passwords do not match."),
			},
		},
	}
}
