package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/api/metrics"
	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// CredentialExchanger is the slice of the backend client the auth
// service needs; narrowed for testability.
type CredentialExchanger interface {
	ExchangeCredentials(ctx context.Context, email, password string) (*backend.User, string, error)
	RevokeToken(ctx context.Context, token string) error
}

// AuthService implements login and logout against the backend API.
type AuthService struct {
	exchanger CredentialExchanger
	denylist  ports.TokenDenylist
	audit     ports.AuditSink
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(exchanger CredentialExchanger, denylist ports.TokenDenylist, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	if audit == nil {
		audit = ports.NopAuditSink{}
	}
	return &AuthService{
		exchanger: exchanger,
		denylist:  denylist,
		audit:     audit,
		log:       log,
		now:       time.Now,
	}
}

// Login exchanges credentials for a session. A single attempt is made;
// retrying is the caller's decision.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, token, err := s.exchanger.ExchangeCredentials(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		s.audit.Record(domain.AuditEntry{
			ActorEmail: email,
			Action:     domain.AuditLogin,
			Outcome:    "failure",
			At:         s.now(),
		})
		return nil, err
	}

	if !domain.ValidRole(user.Role) {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrIncompleteLogin, user.Role)
	}

	perms := user.Permissions
	if perms == nil {
		perms = map[string]bool{}
	}

	sess := &domain.Session{
		Principal: domain.Principal{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			RoleID:      user.RoleID,
			Permissions: perms,
			Image:       user.Image,
			LastLoginAt: user.LastLoginAt,
		},
		Token:    token,
		IssuedAt: s.now(),
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	s.audit.Record(domain.AuditEntry{
		ActorID:    user.ID,
		ActorEmail: user.Email,
		ActorRole:  user.Role,
		Action:     domain.AuditLogin,
		Outcome:    "success",
		At:         s.now(),
	})
	return sess, nil
}

// Logout revokes the backend token and denylists it locally. Backend
// failures are logged, never propagated: logout always proceeds.
func (s *AuthService) Logout(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return nil
	}

	if err := s.exchanger.RevokeToken(ctx, sess.Token); err != nil {
		s.log.Warn().Err(err).Msg("backend token revoke failed; proceeding with local logout")
	}

	if s.denylist != nil {
		ttl := time.Until(sess.ExpiresAt())
		if ttl > 0 {
			if err := s.denylist.Revoke(ctx, sess.Token, ttl); err != nil {
				s.log.Warn().Err(err).Msg("token denylist write failed")
			}
		}
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    sess.Principal.ID,
		ActorEmail: sess.Principal.Email,
		ActorRole:  sess.Principal.Role,
		Action:     domain.AuditLogout,
		Outcome:    "success",
		At:         s.now(),
	})
	return nil
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountLocked):
		return "locked"
	case errors.Is(err, domain.ErrBackendUnreachable):
		return "unreachable"
	default:
		return "invalid"
	}
}
