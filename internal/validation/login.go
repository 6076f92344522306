package validation

// LoginInput carries the raw credential form fields.
type LoginInput struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// ValidateLogin checks the credential form fields are present. The actual
// credential check happens in the auth service; its failure surfaces as the
// form-level invalid_login error via InvalidLoginErrors.
func ValidateLogin(in LoginInput) Errors {
	errs := Errors{}
	if in.Username == "" {
		errs.Add("username", requiredMessage, CodeRequired)
	}
	if in.Password == "" {
		errs.Add("password", requiredMessage, CodeRequired)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InvalidLoginErrors is the form-level error set for a failed credential
// check. It deliberately does not say whether the username exists.
func InvalidLoginErrors() Errors {
	errs := Errors{}
	errs.Add(NonFieldKey, invalidLoginMsg, CodeInvalidLogin)
	return errs
}
