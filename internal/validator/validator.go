// Package validator holds the client-side form checks that run before any
// backend call is made.
package validator

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/FabricioSoica/Front-MindCase/internal/domain"
)

// User-facing messages, matching the product's pt-BR copy.
const (
	MsgRequired         = "campo obrigatório"
	MsgInvalidEmail     = "email inválido"
	MsgPasswordTooShort = "a senha deve ter pelo menos 6 caracteres"
	MsgPasswordMismatch = "As senhas não coincidem"
	MsgInvalidID        = "identificador inválido"
)

// Validator provides validation methods for the page forms.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLogin validates the login form.
func (v *Validator) ValidateLogin(in domain.LoginInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error(MsgRequired),
			is.Email.Error(MsgInvalidEmail),
		),
		validation.Field(&in.Password,
			validation.Required.Error(MsgRequired),
		),
	)
}

// ValidateRegister validates the registration form.
func (v *Validator) ValidateRegister(in domain.RegisterInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name,
			validation.Required.Error(MsgRequired),
		),
		validation.Field(&in.Email,
			validation.Required.Error(MsgRequired),
			is.Email.Error(MsgInvalidEmail),
		),
		validation.Field(&in.Password,
			validation.Required.Error(MsgRequired),
			validation.Length(6, 0).Error(MsgPasswordTooShort),
		),
	)
}

// ValidateChangePassword validates the change-password form, including the
// confirmation match. The confirmation never reaches the backend.
func (v *Validator) ValidateChangePassword(email, password, confirmation string) error {
	err := validation.Errors{
		"email": validation.Validate(email,
			validation.Required.Error(MsgRequired),
			is.Email.Error(MsgInvalidEmail),
		),
		"password": validation.Validate(password,
			validation.Required.Error(MsgRequired),
			validation.Length(6, 0).Error(MsgPasswordTooShort),
		),
	}.Filter()
	if err != nil {
		return err
	}

	// Returned bare so the page shows exactly "As senhas não coincidem",
	// without a field-name prefix.
	if password != confirmation {
		return validation.NewError("password_mismatch", MsgPasswordMismatch)
	}

	return nil
}

// ValidateArticleForm validates the article create/edit form.
func (v *Validator) ValidateArticleForm(in domain.ArticleInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.Required.Error(MsgRequired),
		),
		validation.Field(&in.Content,
			validation.Required.Error(MsgRequired),
		),
	)
}

// ValidateProfileName validates the editable profile field.
func (v *Validator) ValidateProfileName(name string) error {
	return validation.Validate(name, validation.Required.Error(MsgRequired))
}

// ParseID parses a route parameter as a positive integer ID. A missing or
// unparsable value is a client-side validation failure that short-circuits
// before any network call.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, validation.NewError("invalid_id", MsgInvalidID)
	}
	return id, nil
}
