package mock

import (
	"context"

	"github.com/ygolovnia/xkindle"
)

var _ xkindle.Session = (*Session)(nil)

// Session is a mock implementation of xkindle.Session.
// CloseCount tracks how many times Close was invoked.
type Session struct {
	NavigateFn    func(ctx context.Context, url string) error
	WaitVisibleFn func(ctx context.Context, selector string) error
	HTMLFn        func(ctx context.Context) (string, error)
	CloseFn       func() error

	CloseCount int
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.NavigateFn(ctx, url)
}

func (s *Session) WaitVisible(ctx context.Context, selector string) error {
	return s.WaitVisibleFn(ctx, selector)
}

func (s *Session) HTML(ctx context.Context) (string, error) {
	return s.HTMLFn(ctx)
}

func (s *Session) Close() error {
	s.CloseCount++
	if s.CloseFn != nil {
		return s.CloseFn()
	}
	return nil
}
