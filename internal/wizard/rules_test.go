package wizard

import "testing"

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pw string
		ok bool
	}{
		{"Str0ng!pass", true},
		{"Aa1@aaaa", true},
		{"Xy9#Qw2$", true},
		{"Aa1@aaa", false},      // 7 chars
		{"aa1@aaaa", false},     // no uppercase
		{"AA1@AAAA", false},     // no lowercase
		{"Aaa@aaaa", false},     // no digit
		{"Aa1aaaaa", false},     // no symbol
		{"Aa1@aaa a", false},    // space outside charset
		{"Aa1(aaaa", false},     // symbol outside the fixed set
		{"", false},
	}
	for _, tc := range cases {
		if got := StrongPassword(tc.pw); got != tc.ok {
			t.Errorf("StrongPassword(%q) = %v, want %v", tc.pw, got, tc.ok)
		}
	}
}

func TestMatches_IsCaseSensitive(t *testing.T) {
	t.Parallel()

	f := Fields{
		"password":        Text("Str0ng!pass"),
		"confirmPassword": Text("str0ng!pass"),
	}
	field, msg := Matches("confirmPassword", "password", "Passwords do not match.")(f)
	if field != "confirmPassword" || msg == "" {
		t.Fatalf("case-differing confirmation must fail, got (%q, %q)", field, msg)
	}

	f["confirmPassword"] = Text("Str0ng!pass")
	if field, _ := Matches("confirmPassword", "password", "Passwords do not match.")(f); field != "" {
		t.Fatalf("exact match must pass, got %q", field)
	}
}

func TestEmailRule(t *testing.T) {
	t.Parallel()

	r := Email("email", "Email is required.", "Invalid email.")
	if _, msg := r(Fields{}); msg != "Email is required." {
		t.Fatalf("blank email: %q", msg)
	}
	if _, msg := r(Fields{"email": Text("nope")}); msg != "Invalid email." {
		t.Fatalf("malformed email: %q", msg)
	}
	if _, msg := r(Fields{"email": Text("a b@example.com")}); msg != "Invalid email." {
		t.Fatalf("whitespace in local part must fail: %q", msg)
	}
	if field, _ := r(Fields{"email": Text("a@example.com")}); field != "" {
		t.Fatalf("valid email flagged")
	}

	opt := Email("altEmail", "", "Invalid alternate email.")
	if field, _ := opt(Fields{}); field != "" {
		t.Fatalf("optional email must pass when unset")
	}
	if _, msg := opt(Fields{"altEmail": Text("bad")}); msg != "Invalid alternate email." {
		t.Fatalf("optional email still pattern-checked: %q", msg)
	}
}

func TestPhoneRule(t *testing.T) {
	t.Parallel()

	r := Phone("contact", "Contact number required.", "Contact number must be 10 digits.")
	if _, msg := r(Fields{}); msg != "Contact number required." {
		t.Fatalf("blank phone: %q", msg)
	}
	if _, msg := r(Fields{"contact": Text("123456789")}); msg != "Contact number must be 10 digits." {
		t.Fatalf("9 digits: %q", msg)
	}
	if _, msg := r(Fields{"contact": Text("12345678901")}); msg == "" {
		t.Fatalf("11 digits must fail")
	}
	if field, _ := r(Fields{"contact": Text("1234567890")}); field != "" {
		t.Fatalf("10 digits must pass")
	}

	// Organization variant: pattern test runs even on blank input.
	org := Phone("coordPhone", "", "Enter 10-digit phone number.")
	if _, msg := org(Fields{}); msg != "Enter 10-digit phone number." {
		t.Fatalf("blank org phone must fail pattern: %q", msg)
	}
}

func TestNumberInRange_CGPA(t *testing.T) {
	t.Parallel()

	r := NumberInRange("cgpa", 0, 10, "CGPA required.", "CGPA must be 0-10.")
	cases := []struct {
		in  string
		msg string
	}{
		{"", "CGPA required."},
		{"abc", "CGPA must be 0-10."},
		{"0", "CGPA must be 0-10."},   // exclusive lower bound
		{"-1", "CGPA must be 0-10."},
		{"10.01", "CGPA must be 0-10."},
		{"10", ""},
		{"0.01", ""},
		{"7.25", ""},
	}
	for _, tc := range cases {
		_, msg := r(Fields{"cgpa": Text(tc.in)})
		if msg != tc.msg {
			t.Errorf("cgpa %q: got %q, want %q", tc.in, msg, tc.msg)
		}
	}
}

func TestValueBlank(t *testing.T) {
	t.Parallel()

	if !Text("   ").Blank() {
		t.Fatalf("whitespace-only text is blank")
	}
	if Text("x").Blank() {
		t.Fatalf("non-empty text is not blank")
	}
	if !File("").Blank() {
		t.Fatalf("file without path is blank")
	}
	if File("/tmp/f.pdf").Blank() {
		t.Fatalf("chosen file is not blank")
	}
	if !Bool(false).Blank() || Bool(true).Blank() {
		t.Fatalf("bool blankness follows its value")
	}
	var zero Value
	if !zero.Blank() {
		t.Fatalf("zero value is blank")
	}
}

func TestStatesFor(t *testing.T) {
	t.Parallel()

	if got := StatesFor(""); got != nil {
		t.Fatalf("no country selected: %v", got)
	}
	if got := StatesFor("India"); len(got) != 5 {
		t.Fatalf("india states: %v", got)
	}
}
