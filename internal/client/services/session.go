package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophfood/internal/client/client"
	"github.com/dmitrijs2005/gophfood/internal/client/models"
	"github.com/dmitrijs2005/gophfood/internal/logging"
)

// RegistrationStore is the part of the identity store the session service
// needs.
type RegistrationStore interface {
	SessionID(ctx context.Context) (string, error)
	SaveRegistration(ctx context.Context, reg models.Registration) error
}

// SessionService establishes the device session with the backend.
type SessionService struct {
	client client.Client
	store  RegistrationStore
	log    logging.Logger
}

func NewSessionService(c client.Client, store RegistrationStore, log logging.Logger) *SessionService {
	return &SessionService{client: c, store: store, log: log.With("component", "session")}
}

// EnsureRegistered registers the device unless a session id is already
// persisted. It reports whether a registration call was made. The returned
// registration reflects what is persisted after the call.
func (s *SessionService) EnsureRegistered(ctx context.Context) (reg models.Registration, created bool, err error) {
	sid, err := s.store.SessionID(ctx)
	if err != nil {
		return reg, false, fmt.Errorf("read session id: %w", err)
	}
	if sid != "" {
		return models.Registration{SessionID: sid}, false, nil
	}

	r, err := s.client.Register(ctx)
	if err != nil {
		return reg, false, fmt.Errorf("register device: %w", err)
	}
	if r.SessionID == "" {
		return reg, false, fmt.Errorf("register device: empty session id")
	}
	if err := s.store.SaveRegistration(ctx, *r); err != nil {
		return reg, false, fmt.Errorf("save registration: %w", err)
	}

	s.log.Info(ctx, "device registered", "uid", r.UserID)
	return *r, true, nil
}
