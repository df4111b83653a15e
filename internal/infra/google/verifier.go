package google

import (
	"context"
	"time"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/metrics"

	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier checks Google ID tokens against the configured OAuth client id.
type Verifier struct {
	clientID string
	timeout  time.Duration
	validate validateFunc
}

func NewVerifier(clientID string, timeout time.Duration) *Verifier {
	return &Verifier{clientID: clientID, timeout: timeout, validate: idtoken.Validate}
}

func (v *Verifier) Verify(ctx context.Context, token string) (*auth.GoogleProfile, error) {
	if v.clientID == "" {
		return nil, auth.ErrGoogleNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	start := time.Now()
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		metrics.ObserveExternal("google", "idtoken", 401, time.Since(start))
		return nil, errs.Wrap(err, "google id token rejected")
	}
	metrics.ObserveExternal("google", "idtoken", 200, time.Since(start))

	claim := func(name string) string {
		s, _ := payload.Claims[name].(string)
		return s
	}
	return &auth.GoogleProfile{
		Subject: payload.Subject,
		Email:   claim("email"),
		Name:    claim("name"),
		Picture: claim("picture"),
	}, nil
}
