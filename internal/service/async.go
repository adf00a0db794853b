package service

import (
	"context"

	"github.com/MKhiriev/go-quick-post/internal/workers"
)

// AsyncSessionClient runs [SessionService] operations in the background and
// reports each outcome exactly once.
type AsyncSessionClient struct {
	svc SessionService
}

func NewAsyncSessionClient(svc SessionService) *AsyncSessionClient {
	return &AsyncSessionClient{svc: svc}
}

// Login starts a login and calls done with its result. done may be nil when
// only the returned future is of interest.
func (a *AsyncSessionClient) Login(ctx context.Context, identifier, password string, done func(token string, err error)) *workers.Future[string] {
	return workers.Go(ctx, func(ctx context.Context) (string, error) {
		return a.svc.Login(ctx, identifier, password)
	}).Then(done)
}

// CreatePost starts publishing text and calls done with its result.
func (a *AsyncSessionClient) CreatePost(ctx context.Context, text string, done func(ok bool, err error)) *workers.Future[bool] {
	return workers.Go(ctx, func(ctx context.Context) (bool, error) {
		return a.svc.CreatePost(ctx, text)
	}).Then(done)
}

// CreatePostAwait publishes text and waits for the outcome. If ctx ends
// first, ctx.Err() is returned; the request itself is bounded by the
// adapter's timeout.
func (a *AsyncSessionClient) CreatePostAwait(ctx context.Context, text string) error {
	_, err := workers.Go(context.WithoutCancel(ctx), func(ctx context.Context) (bool, error) {
		return a.svc.CreatePost(ctx, text)
	}).Await(ctx)
	return err
}

// Logout clears the session synchronously.
func (a *AsyncSessionClient) Logout(ctx context.Context) error {
	return a.svc.Logout(ctx)
}

// Service returns the wrapped service for calls that need no background work.
func (a *AsyncSessionClient) Service() SessionService {
	return a.svc
}
