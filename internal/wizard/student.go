package wizard

// StudentSteps is the 4-step student registration: personal, family,
// academic, password. Field names and messages match the backend's
// multipart contract.
func StudentSteps() []StepDef {
	return []StepDef{
		{
			Title: "Personal Info",
			Fields: []FieldDef{
				{Name: "fullName", Label: "Full Name"},
				{Name: "dob", Label: "Date of Birth", Kind: FieldDate},
				{Name: "email", Label: "Email"},
				{Name: "altEmail", Label: "Alternate Email"},
				{Name: "contact", Label: "Contact Number"},
				{Name: "gender", Label: "Gender", Kind: FieldSelect, Options: []string{"Male", "Female", "Other"}},
				{Name: "panNumber", Label: "PAN Number"},
				{Name: "currentAddress", Label: "Current Address", Kind: FieldTextarea},
				{Name: "permanentAddress", Label: "Permanent Address", Kind: FieldTextarea},
				{Name: "photo", Label: "Photo", Kind: FieldFile},
				{Name: "govProof", Label: "Gov ID Proof", Kind: FieldFile},
			},
			Rules: []Rule{
				Required("fullName", "Full Name is required."),
				Required("dob", "Date of birth required."),
				Email("email", "Email is required.", "Invalid email."),
				Email("altEmail", "Alternate email required.", "Invalid alternate email."),
				Phone("contact", "Contact number required.", "Contact number must be 10 digits."),
				Required("gender", "Gender is required."),
				Required("panNumber", "PAN Number is required."),
				Required("currentAddress", "Current Address is required."),
				Required("permanentAddress", "Permanent Address is required."),
				Required("photo", "Photo upload required."),
				Required("govProof", "Gov ID Proof upload required."),
			},
		},
		{
			Title: "Family Info",
			Fields: []FieldDef{
				{Name: "fatherName", Label: "Father Name"},
				{Name: "motherName", Label: "Mother Name"},
				{Name: "guardianName", Label: "Guardian Name"},
				{Name: "guardianRelation", Label: "Relation", Kind: FieldSelect, Options: []string{"Father", "Mother", "Brother", "Sister", "Other"}},
				{Name: "guardianEmail", Label: "Guardian Email"},
				{Name: "guardianPhone", Label: "Guardian Phone"},
				{Name: "guardianAddress", Label: "Guardian Address", Kind: FieldTextarea},
				{Name: "guardianIdProof", Label: "Guardian ID Proof", Kind: FieldFile},
			},
			Rules: []Rule{
				Required("fatherName", "Father's name required."),
				Required("motherName", "Mother's name required."),
				Required("guardianName", "Guardian name required."),
				Required("guardianRelation", "Relation required."),
				Email("guardianEmail", "Guardian email required.", "Invalid guardian email."),
				Phone("guardianPhone", "Guardian phone required.", "Contact number must be 10 digits."),
				Required("guardianAddress", "Guardian address required."),
				Required("guardianIdProof", "Guardian ID proof upload required."),
			},
		},
		{
			Title: "Academic Info",
			Fields: []FieldDef{
				{Name: "studentId", Label: "Student ID"},
				{Name: "programme", Label: "Programme", Kind: FieldSelect, Options: []string{"B.Tech CSE", "BCA", "B.Tech AI & ML", "Other"}},
				{Name: "otherProgramme", Label: "Specify Programme", OnlyWhen: "programme", OnlyWhenEquals: "Other"},
				{Name: "semester", Label: "Semester", Kind: FieldSelect, Options: []string{"5", "6", "7", "8"}},
				{Name: "discipline", Label: "Discipline", Kind: FieldSelect, Options: []string{"Software Dev", "Data Science", "Cybersecurity", "Other"}},
				{Name: "otherDiscipline", Label: "Specify Discipline", OnlyWhen: "discipline", OnlyWhenEquals: "Other"},
				{Name: "cgpa", Label: "CGPA"},
				{Name: "skills", Label: "Skills (comma separated)", Kind: FieldTextarea},
				{Name: "resume", Label: "Resume / CV", Kind: FieldFile},
			},
			Rules: []Rule{
				Required("studentId", "Student ID is required."),
				Required("programme", "Programme is required."),
				RequiredWhen("otherProgramme", "programme", "Other", "Specify your programme."),
				Required("semester", "Semester required."),
				Required("discipline", "Discipline required."),
				RequiredWhen("otherDiscipline", "discipline", "Other", "Specify your discipline."),
				NumberInRange("cgpa", 0, 10, "CGPA required.", "CGPA must be 0-10."),
				Required("skills", "Skills are required."),
				Required("resume", "Resume upload required."),
			},
		},
		{
			Title: "Password",
			Fields: []FieldDef{
				{Name: "password", Label: "Password", Kind: FieldPassword},
				{Name: "confirmPassword", Label: "Confirm Password", Kind: FieldPassword},
			},
			Rules: []Rule{
				Password("password", "Password required.", "Password must be 8+ chars with uppercase, lowercase, number and symbol (@$!%*?&#^)."),
				Matches("confirmPassword", "password", "Passwords do not match."),
			},
		},
	}
}
