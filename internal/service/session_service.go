// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-quick-post/internal/adapter"
	"github.com/MKhiriev/go-quick-post/internal/logger"
	"github.com/MKhiriev/go-quick-post/internal/store"
	"github.com/MKhiriev/go-quick-post/internal/utils"
	"github.com/MKhiriev/go-quick-post/internal/validators"
	"github.com/MKhiriev/go-quick-post/models"
)

// Operation names used in log entries.
const (
	opInit       = "init"
	opLogin      = "login"
	opLogout     = "logout"
	opCreatePost = "create_post"
)

type idGenerator interface {
	Generate() string
}

type sessionService struct {
	store     store.CredentialStore
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger

	now   func() time.Time
	opIDs idGenerator

	// mu guards session.
	mu      sync.RWMutex
	session models.Session

	// persistMu serialises store writes together with the commit that
	// follows them, so stored and in-memory state never diverge.
	persistMu sync.Mutex
}

// Option customises a session service.
type Option func(*sessionService)

// WithClock replaces the clock used to stamp createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *sessionService) {
		s.now = now
	}
}

// NewSessionService builds a [SessionService] and restores the session kept
// in credentialStore. Construction never fails because of the store: a
// missing, half-written or unreadable pair starts the service
// unauthenticated.
func NewSessionService(credentialStore store.CredentialStore, serverAdapter adapter.ServerAdapter, log *logger.Logger, opts ...Option) SessionService {
	s := &sessionService{
		store:     credentialStore,
		adapter:   serverAdapter,
		validator: validators.NewSessionValidator(),
		logger:    log,
		now:       time.Now,
		opIDs:     utils.NewOperationIDGenerator(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.restore(context.Background())
	return s
}

func (s *sessionService) operation(ctx context.Context, op string) (context.Context, *logger.Logger) {
	opLog := s.logger.WithOperation(op, s.opIDs.Generate())
	return opLog.WithContext(ctx), opLog
}

func (s *sessionService) restore(ctx context.Context) {
	ctx, log := s.operation(ctx, opInit)

	token, tokenOK := s.readField(ctx, log, models.AccessJwtAccount)
	did, didOK := s.readField(ctx, log, models.DIDAccount)

	switch {
	case tokenOK && didOK:
		s.session = models.Session{AccessJwt: token, DID: did}
		log.Info().Str("did", did).Msg("session restored")
	case tokenOK != didOK:
		log.Warn().
			Bool("has_token", tokenOK).
			Bool("has_did", didOK).
			Msg("half-written session in store, starting unauthenticated")
	default:
		log.Debug().Msg("no stored session")
	}
}

// readField returns the stored value of account if it is present, non-empty
// and valid UTF-8.
func (s *sessionService) readField(ctx context.Context, log *logger.Logger, account string) (string, bool) {
	raw, err := s.store.Read(ctx, account)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return "", false
	}
	if err != nil {
		log.Err(err).Str("account", account).Msg("failed to read stored credential")
		return "", false
	}
	if len(raw) == 0 || !utf8.Valid(raw) {
		log.Warn().Str("account", account).Msg("stored credential is not valid text")
		return "", false
	}
	return string(raw), true
}

func (s *sessionService) Login(ctx context.Context, identifier, password string) (string, error) {
	request := models.CreateSessionRequest{
		Identifier: identifier,
		Password:   password,
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ctx, log := s.operation(ctx, opLogin)
	log.Info().Msg("creating session")

	resp, err := s.adapter.CreateSession(ctx, request)
	if err != nil {
		err = mapAdapterError(err)
		log.Err(err).Msg("create session failed")
		return "", err
	}

	session, ok := resp.Session()
	if !ok {
		log.Error().
			Bool("has_token", resp.AccessJwt != nil && *resp.AccessJwt != "").
			Bool("has_did", resp.DID != nil && *resp.DID != "").
			Msg("create session response lacks required fields")
		return "", fmt.Errorf("%w: response lacks accessJwt or did", ErrInvalidResponse)
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err = s.persist(ctx, log, session); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	log.Info().Str("did", session.DID).Msg("logged in")
	return session.AccessJwt, nil
}

// persist writes both session fields. If the second write fails the first is
// restored to its previous value, or deleted when there was none.
func (s *sessionService) persist(ctx context.Context, log *logger.Logger, session models.Session) error {
	// An unreadable previous token counts as absent, as it does in restore;
	// a rollback then deletes the new token instead of restoring garbage.
	prevToken, err := s.store.Read(ctx, models.AccessJwtAccount)
	hadToken := err == nil
	if err != nil && !errors.Is(err, store.ErrCredentialNotFound) {
		log.Warn().Err(err).Msg("previous token is unreadable, overwriting it")
	}

	if err = s.store.Save(ctx, models.AccessJwtAccount, []byte(session.AccessJwt)); err != nil {
		log.Err(err).Msg("failed to save token")
		return fmt.Errorf("save token: %w", err)
	}

	if err = s.store.Save(ctx, models.DIDAccount, []byte(session.DID)); err != nil {
		log.Err(err).Msg("failed to save did, rolling back token")

		var rollbackErr error
		if hadToken {
			rollbackErr = s.store.Save(ctx, models.AccessJwtAccount, prevToken)
		} else {
			rollbackErr = s.store.Delete(ctx, models.AccessJwtAccount)
		}
		if rollbackErr != nil {
			log.Err(rollbackErr).Msg("token rollback failed")
			return fmt.Errorf("save did: %w", errors.Join(err, fmt.Errorf("rollback token: %w", rollbackErr)))
		}

		return fmt.Errorf("save did: %w", err)
	}

	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	ctx, log := s.operation(ctx, opLogout)

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	var errs []error
	for _, account := range []string{models.AccessJwtAccount, models.DIDAccount} {
		if err := s.store.Delete(ctx, account); err != nil {
			log.Err(err).Str("account", account).Msg("failed to delete stored credential")
			errs = append(errs, fmt.Errorf("delete %s: %w", account, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info().Msg("logged out")
	return nil
}

func (s *sessionService) CreatePost(ctx context.Context, text string) (bool, error) {
	session := s.Session()
	if !session.IsAuthenticated() {
		return false, ErrNotAuthenticated
	}

	ctx, log := s.operation(ctx, opCreatePost)

	post := models.NewPost(text, s.now())
	log.Info().
		Int("text_len", utf8.RuneCountInString(text)).
		Time("created_at", post.CreatedAt).
		Msg("creating post")

	if err := s.adapter.CreateRecord(ctx, session.AccessJwt, models.NewCreatePostRequest(session.DID, post)); err != nil {
		err = mapAdapterError(err)
		log.Err(err).Msg("create record failed")
		return false, err
	}

	log.Info().Msg("post created")
	return true, nil
}

func (s *sessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionService) IsAuthenticated() bool {
	return s.Session().IsAuthenticated()
}
