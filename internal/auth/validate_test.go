package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want error
	}{
		{"ok", Form{Email: "a@b.co", Password: "x"}, nil},
		{"no email", Form{Password: "x"}, ErrMissingField},
		{"no password", Form{Email: "a@b.co"}, ErrMissingField},
		{"bad email", Form{Email: "a@b", Password: "x"}, ErrInvalidEmail},
		{"spaces in email", Form{Email: "a b@c.de", Password: "x"}, ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.form)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateRegister(t *testing.T) {
	ok := Form{Email: "a@b.co", Password: "secret", ConfirmPassword: "secret", FullName: "Ani"}
	tests := []struct {
		name string
		edit func(*Form)
		want error
	}{
		{"ok", func(*Form) {}, nil},
		{"missing name", func(f *Form) { f.FullName = " " }, ErrMissingName},
		{"short password", func(f *Form) { f.Password, f.ConfirmPassword = "abc", "abc" }, ErrPasswordTooShort},
		{"short multibyte password", func(f *Form) { f.Password, f.ConfirmPassword = "ééé", "ééé" }, ErrPasswordTooShort},
		{"multibyte password", func(f *Form) { f.Password, f.ConfirmPassword = "éééééé", "éééééé" }, nil},
		{"mismatch", func(f *Form) { f.ConfirmPassword = "secreT" }, ErrPasswordMismatch},
		{"bad email", func(f *Form) { f.Email = "ani" }, ErrInvalidEmail},
		{"missing email", func(f *Form) { f.Email = "" }, ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ok
			tt.edit(&f)
			err := ValidateRegister(f)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateErrorsNameTheField(t *testing.T) {
	err := ValidateLogin(Form{Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.ErrorContains(t, err, "missing password")

	err = ValidateRegister(Form{Email: "a@b.co", Password: "abc", ConfirmPassword: "abc", FullName: "Ani"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.ErrorContains(t, err, "got 3")

	err = ValidateLogin(Form{Email: "ani", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.ErrorContains(t, err, `"ani"`)
}
