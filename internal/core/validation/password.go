package validation

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"unicode"
)

// PasswordValidator is one link of the deployment's password strength policy.
// Validate returns nil when the password passes, or an error whose message is
// surfaced to the client verbatim. username and email are the already
// normalized identity attributes of the candidate registration.
type PasswordValidator interface {
	Validate(password, username, email string) error
}

// DefaultPasswordValidators is the stock policy chain: reject passwords too
// similar to the user's own attributes, passwords on the common-password
// list, and purely numeric passwords.
func DefaultPasswordValidators() []PasswordValidator {
	return []PasswordValidator{
		SimilarityValidator{},
		NewCommonPasswordValidator(nil),
		NumericValidator{},
	}
}

// SimilarityValidator rejects passwords that match the username or the email
// local part, ignoring case. Containment either way counts as too similar.
type SimilarityValidator struct{}

func (SimilarityValidator) Validate(password, username, email string) error {
	lower := strings.ToLower(password)
	attrs := []string{strings.ToLower(username)}
	if at := strings.IndexByte(email, '@'); at > 0 {
		attrs = append(attrs, email[:at])
	}
	for _, attr := range attrs {
		if len(attr) < 3 {
			continue
		}
		if strings.Contains(lower, attr) || strings.Contains(attr, lower) {
			return errors.New("password is too similar to the username")
		}
	}
	return nil
}

// CommonPasswordValidator rejects passwords found on a list of known weak
// passwords. The built-in list covers the usual offenders; deployments can
// extend it from a file with one password per line.
type CommonPasswordValidator struct {
	common map[string]struct{}
}

var builtinCommonPasswords = []string{
	"password", "password1", "12345678", "123456789",
	"qwerty123", "iloveyou", "admin123", "letmein1", "welcome1",
	"sunshine", "princess", "football", "monkey123", "dragon123",
}

// NewCommonPasswordValidator builds the validator from the built-in list plus
// the given extra entries.
func NewCommonPasswordValidator(extra []string) CommonPasswordValidator {
	common := make(map[string]struct{}, len(builtinCommonPasswords)+len(extra))
	for _, pw := range builtinCommonPasswords {
		common[pw] = struct{}{}
	}
	for _, pw := range extra {
		if pw = strings.TrimSpace(strings.ToLower(pw)); pw != "" {
			common[pw] = struct{}{}
		}
	}
	return CommonPasswordValidator{common: common}
}

// NewCommonPasswordValidatorFromFile loads additional entries from path, one
// password per line. A missing path falls back to the built-in list alone.
func NewCommonPasswordValidatorFromFile(path string) (CommonPasswordValidator, error) {
	if path == "" {
		return NewCommonPasswordValidator(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return CommonPasswordValidator{}, err
	}
	defer f.Close()

	var extra []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		extra = append(extra, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return CommonPasswordValidator{}, err
	}
	return NewCommonPasswordValidator(extra), nil
}

func (v CommonPasswordValidator) Validate(password, _, _ string) error {
	if _, ok := v.common[strings.ToLower(password)]; ok {
		return errors.New("password is too common")
	}
	return nil
}

// NumericValidator rejects passwords consisting entirely of digits.
type NumericValidator struct{}

func (NumericValidator) Validate(password, _, _ string) error {
	if password == "" {
		return nil
	}
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return nil
		}
	}
	return errors.New("password cannot be entirely numeric")
}
