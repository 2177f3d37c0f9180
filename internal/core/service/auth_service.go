package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
	"github.com/medipoint/patient-portal/internal/core/validation"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// AuthService implements registration and the token endpoints. Registration
// runs the validation pipeline first; a uniqueness violation that slips past
// the pre-check and fires at insert time is folded back into the same
// field-level rejection shape.
type AuthService struct {
	repo       ports.PatientRepository
	pipeline   *validation.Pipeline
	tokens     ports.RefreshTokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(
	repo ports.PatientRepository,
	pipeline *validation.Pipeline,
	tokens ports.RefreshTokenStore,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
	bcryptCost int,
	logger zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		pipeline:   pipeline,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Patient, validation.FieldErrors, error) {
	normalized, fieldErrs, err := s.pipeline.Validate(ctx, validation.RegistrationInput{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, nil, err
	}
	if fieldErrs.Any() {
		return nil, fieldErrs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(normalized.Password), s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	patient := &domain.Patient{
		ID:           uuid.New(),
		Username:     normalized.Username,
		Email:        normalized.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			// Lost the race against a concurrent registration: the
			// storage constraint is authoritative, but the client
			// sees the same field-level shape as a pre-check failure.
			s.logger.Info().Str("field", conflict.Field).Msg("registration lost uniqueness race")
			fe := validation.FieldErrors{}
			fe.Add(conflict.Field, conflict.Error())
			return nil, fe, nil
		}
		return nil, nil, err
	}

	s.logger.Info().Str("patient_id", patient.ID.String()).Str("username", patient.Username).Msg("patient registered")
	return patient, nil, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenPair, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	patient, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issuePair(ctx, patient.ID, patient.Username)
}

// Refresh validates a refresh token, consumes its jti (single use) and issues
// a new pair. A reused, expired or malformed token yields ErrInvalidToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if typ, _ := claims["type"].(string); typ != tokenTypeRefresh {
		return nil, domain.ErrInvalidToken
	}

	jti, _ := claims["jti"].(string)
	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	patientID, err := uuid.Parse(sub)
	if err != nil || jti == "" {
		return nil, domain.ErrInvalidToken
	}

	ok, err := s.tokens.Consume(ctx, jti)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn().Str("patient_id", sub).Msg("refresh token replayed or expired")
		return nil, domain.ErrInvalidToken
	}

	return s.issuePair(ctx, patientID, username)
}

func (s *AuthService) issuePair(ctx context.Context, patientID uuid.UUID, username string) (*ports.TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      patientID.String(),
		"username": username,
		"type":     tokenTypeAccess,
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
	})
	accessSigned, err := access.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	jti := uuid.NewString()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      patientID.String(),
		"username": username,
		"type":     tokenTypeRefresh,
		"jti":      jti,
		"iat":      now.Unix(),
		"exp":      now.Add(s.refreshTTL).Unix(),
	})
	refreshSigned, err := refresh.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(ctx, jti, s.refreshTTL); err != nil {
		return nil, err
	}

	return &ports.TokenPair{Access: accessSigned, Refresh: refreshSigned}, nil
}
