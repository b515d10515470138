// Package wizard drives the multi-step registration forms: a fixed, ordered
// sequence of data-entry steps where forward progress is gated by per-step
// validation, backward navigation is unconditional, and submission packages
// the accumulated field map into one outbound request.
package wizard

// FieldKind selects the input widget a field renders as. It does not affect
// validation; rules only see Values.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldDate
	FieldSelect
	FieldTextarea
	FieldFile
	FieldPassword
)

// FieldDef declares one field of a step: its wire name, display label and
// widget. The set of FieldDefs across steps is the closed enumeration of
// names a wizard's field map may hold.
type FieldDef struct {
	Name    string
	Label   string
	Kind    FieldKind
	Options []string // for FieldSelect

	// DynamicOptions resolves the option list from the fields entered so
	// far. Takes precedence over Options when set; selects with it re-resolve
	// whenever a companion field changes.
	DynamicOptions func(f Fields) []string

	// OnlyWhen limits display to states where another field holds a value
	// ("Other" companions). Validation applies the matching RequiredWhen rule.
	OnlyWhen       string
	OnlyWhenEquals string
}

// SelectOptions returns the options a select field offers given the fields
// entered so far.
func (fd FieldDef) SelectOptions(f Fields) []string {
	if fd.DynamicOptions != nil {
		return fd.DynamicOptions(f)
	}
	return fd.Options
}

// StepDef is one wizard step: its fields in display order plus the rule set
// gating the transition out of it.
type StepDef struct {
	Title  string
	Fields []FieldDef
	Rules  []Rule
}

// Wizard is the controller state for one registration flow.
//
// The step pointer is 1-indexed and bounded by the step count. The field map
// accumulates across steps and survives Back; the error map is replaced
// wholesale on every validation pass and cleared by Back.
type Wizard struct {
	steps  []StepDef
	step   int
	fields Fields
	errors map[string]string
}

func New(steps []StepDef) *Wizard {
	return &Wizard{steps: steps, step: 1, fields: Fields{}, errors: map[string]string{}}
}

func (w *Wizard) Step() int  { return w.step }
func (w *Wizard) Steps() int { return len(w.steps) }

func (w *Wizard) StepDef() StepDef { return w.steps[w.step-1] }

func (w *Wizard) OnLastStep() bool { return w.step == len(w.steps) }

// Set writes one field through to the field map immediately.
func (w *Wizard) Set(name string, v Value) { w.fields[name] = v }

func (w *Wizard) Get(name string) Value { return w.fields.Get(name) }

func (w *Wizard) Fields() Fields { return w.fields }

// Errors is the outcome of the most recent validation pass. Empty means the
// step was valid. Callers must not mutate it.
func (w *Wizard) Errors() map[string]string { return w.errors }

func (w *Wizard) Err(field string) string { return w.errors[field] }

// Next validates the current step and, when clean, advances the step
// pointer. It reports whether the wizard advanced; when it did, the view
// should scroll back to the top of the form. Next never fires from the last
// step (Submit owns that transition).
func (w *Wizard) Next() bool {
	if w.step >= len(w.steps) {
		return false
	}
	w.errors = w.validateStep(w.step)
	if len(w.errors) > 0 {
		return false
	}
	w.step++
	return true
}

// Back moves to the previous step unconditionally: errors are discarded
// without re-validation and no field value is lost.
func (w *Wizard) Back() bool {
	if w.step <= 1 {
		return false
	}
	w.step--
	w.errors = map[string]string{}
	return true
}

// Submit validates the final step and, when clean, returns a snapshot of the
// full field map for serialization. It only fires from the last step. On
// failure the wizard stays put with errors populated; the caller may correct
// fields and retry.
func (w *Wizard) Submit() (Fields, bool) {
	if w.step != len(w.steps) {
		return nil, false
	}
	w.errors = w.validateStep(w.step)
	if len(w.errors) > 0 {
		return nil, false
	}
	return w.fields.Clone(), true
}

// SetSubmitError surfaces a server-side failure against the synthetic
// "submit" key without disturbing field values.
func (w *Wizard) SetSubmitError(msg string) {
	w.errors = map[string]string{"submit": msg}
}

func (w *Wizard) validateStep(step int) map[string]string {
	errs := map[string]string{}
	for _, rule := range w.steps[step-1].Rules {
		field, msg := rule(w.fields)
		if field == "" {
			continue
		}
		// First violation per field wins, as in the original's else-if chains.
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	return errs
}
