// Package validator provides rule-based validation for form submissions.
//
// Individual rules pair a check with the field error to report when it
// fails; Apply runs a rule set and collects every failure into a
// ValidationErrors value that implements error:
//
//	err := validator.Apply(
//		validator.Required("name", form.Name),
//		validator.ValidEmail("email", form.Email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//		first, _ := errs.First()
//		// surface first.Field / first.Message to the user
//	}
//
// ValidateForm is the submission boundary for the company publish and
// signup forms: it sanitizes every field by name and turns malformed
// required fields into hard errors. This is deliberately the only
// raising path in the library; the field-level sanitizers degrade to
// empty strings instead.
package validator
