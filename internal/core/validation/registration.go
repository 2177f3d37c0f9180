package validation

import (
	"context"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 8
)

const usernameSpecials = "._-"

// UniquenessChecker answers case-insensitive existence queries against the
// identity store. The pipeline pre-checks uniqueness with it; the storage
// layer's unique constraints remain authoritative under races.
type UniquenessChecker interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// RegistrationInput is the raw candidate payload.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
}

// Pipeline validates registration payloads. Password strength is delegated to
// the configured PasswordValidator chain so deployments can tune policy
// without touching the format rules.
type Pipeline struct {
	checker    UniquenessChecker
	validate   *validator.Validate
	passChecks []PasswordValidator
}

func NewPipeline(checker UniquenessChecker, passChecks ...PasswordValidator) *Pipeline {
	return &Pipeline{
		checker:    checker,
		validate:   validator.New(),
		passChecks: passChecks,
	}
}

// Validate evaluates every field independently and accumulates all violations
// per field. On success it returns the normalized payload (trimmed username,
// lowercased trimmed email) and an empty FieldErrors. A store error from a
// uniqueness pre-check is returned as err and aborts the run.
func (p *Pipeline) Validate(ctx context.Context, in RegistrationInput) (RegistrationInput, FieldErrors, error) {
	fe := FieldErrors{}

	username := strings.TrimSpace(in.Username)
	p.checkUsernameFormat(username, fe)
	if _, bad := fe["username"]; !bad && p.checker != nil {
		taken, err := p.checker.UsernameTaken(ctx, username)
		if err != nil {
			return RegistrationInput{}, nil, err
		}
		if taken {
			fe.Add("username", "a user with that username already exists")
		}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	p.checkEmailFormat(email, fe)
	if _, bad := fe["email"]; !bad && p.checker != nil {
		taken, err := p.checker.EmailTaken(ctx, email)
		if err != nil {
			return RegistrationInput{}, nil, err
		}
		if taken {
			fe.Add("email", "a user with that email already exists")
		}
	}

	p.checkPassword(in.Password, username, email, fe)

	if fe.Any() {
		return RegistrationInput{}, fe, nil
	}
	return RegistrationInput{Username: username, Email: email, Password: in.Password}, fe, nil
}

func (p *Pipeline) checkUsernameFormat(username string, fe FieldErrors) {
	if username == "" {
		fe.Add("username", "username is required")
		return
	}
	if n := len([]rune(username)); n < usernameMinLen || n > usernameMaxLen {
		fe.Add("username", "username must be between 3 and 30 characters")
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune(usernameSpecials, r) {
			fe.Add("username", "username may only contain letters, digits, '.', '_' and '-'")
			break
		}
	}
	first, last := []rune(username)[0], []rune(username)[len([]rune(username))-1]
	if strings.ContainsRune(usernameSpecials, first) || strings.ContainsRune(usernameSpecials, last) {
		fe.Add("username", "username may not start or end with '.', '_' or '-'")
	}
	var prevSpecial bool
	for _, r := range username {
		special := strings.ContainsRune(usernameSpecials, r)
		if special && prevSpecial {
			fe.Add("username", "username may not contain consecutive special characters")
			break
		}
		prevSpecial = special
	}
}

func (p *Pipeline) checkEmailFormat(email string, fe FieldErrors) {
	if email == "" {
		fe.Add("email", "email is required")
		return
	}
	if err := p.validate.Var(email, "email"); err != nil {
		fe.Add("email", "enter a valid email address")
	}
}

func (p *Pipeline) checkPassword(password, username, email string, fe FieldErrors) {
	if password == "" {
		fe.Add("password", "password is required")
		return
	}
	if len(password) < passwordMinLen {
		fe.Add("password", "password must be at least 8 characters")
	}
	for _, check := range p.passChecks {
		if err := check.Validate(password, username, email); err != nil {
			fe.Add("password", err.Error())
		}
	}
}
