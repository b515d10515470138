package wizard

// AdminSteps is the 2-step admin registration.
func AdminSteps() []StepDef {
	return []StepDef{
		{
			Title: "Registration",
			Fields: []FieldDef{
				{Name: "adminId", Label: "Admin ID"},
				{Name: "fullName", Label: "Full Name"},
				{Name: "email", Label: "Email"},
				{Name: "phone", Label: "Phone"},
				{Name: "designation", Label: "Designation"},
				{Name: "profilePhoto", Label: "Profile Photo", Kind: FieldFile},
				{Name: "govtId", Label: "Government ID", Kind: FieldFile},
				{Name: "collegeId", Label: "College ID Proof", Kind: FieldFile},
			},
			Rules: []Rule{
				Required("adminId", "Admin ID is required."),
				Required("fullName", "Full name is required."),
				Email("email", "Please enter a valid email address.", "Please enter a valid email address."),
				Phone("phone", "", "Phone must be 10 digits."),
				Required("designation", "Designation is required."),
				Required("profilePhoto", "Profile photo is required."),
				Required("govtId", "Government ID is required."),
				Required("collegeId", "College ID proof is required."),
			},
		},
		{
			Title: "Create Password",
			Fields: []FieldDef{
				{Name: "password", Label: "Password", Kind: FieldPassword},
				{Name: "confirmPassword", Label: "Confirm Password", Kind: FieldPassword},
			},
			Rules: []Rule{
				Password("password", "", "Password must be at least 8 characters long, include uppercase, lowercase, number, and symbol."),
				Matches("confirmPassword", "password", "Passwords do not match."),
			},
		},
	}
}

// StepsFor returns the registration steps for a role name, or nil for an
// unknown role.
func StepsFor(role string) []StepDef {
	switch role {
	case "student":
		return StudentSteps()
	case "organization":
		return OrganizationSteps()
	case "admin":
		return AdminSteps()
	}
	return nil
}
