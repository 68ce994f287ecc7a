package verification

import (
	"context"
	"math"
	"time"
)

type Stage string

const (
	StageIdle     Stage = "idle"
	StageCodeSent Stage = "code_sent"
	StageVerified Stage = "verified"
)

// Flow is the per-session verification state: idle -> code_sent -> verified.
// code_sent may re-enter itself through a resend once the cooldown has run out.
type Flow struct {
	Stage         Stage     `json:"stage"`
	Phone         string    `json:"phone,omitempty"`
	VerifiedPhone string    `json:"verified_phone,omitempty"`
	CooldownUntil time.Time `json:"cooldown_until,omitempty"`
}

func (f *Flow) stage() Stage {
	if f.Stage == "" {
		return StageIdle
	}
	return f.Stage
}

// Remaining is the whole seconds left on the resend cooldown, rounded up.
func (f *Flow) Remaining(now time.Time) int {
	if f.stage() != StageCodeSent {
		return 0
	}
	left := f.CooldownUntil.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

func (f *Flow) CanResend(now time.Time) bool {
	return f.Remaining(now) == 0
}

// Send requests a code for phone. On failure the flow is left untouched.
func (f *Flow) Send(ctx context.Context, svc Service, phone string, now time.Time) error {
	if !f.CanResend(now) {
		return ErrCooldownActive
	}

	if _, err := svc.SendCode(ctx, phone); err != nil {
		return err
	}

	f.Stage = StageCodeSent
	f.Phone = NormalizePhone(phone)
	f.VerifiedPhone = ""
	f.CooldownUntil = now.Add(ResendCooldown)
	return nil
}

// Verify checks code against the phone the last code was sent to.
func (f *Flow) Verify(ctx context.Context, svc Service, code string) (string, error) {
	if f.stage() != StageCodeSent {
		return "", ErrNotRequested
	}

	phone, err := svc.VerifyCode(ctx, f.Phone, code)
	if err != nil {
		return "", err
	}

	f.Stage = StageVerified
	f.VerifiedPhone = phone
	f.CooldownUntil = time.Time{}
	return phone, nil
}

// IsVerified reports whether phone was confirmed by this flow.
func (f *Flow) IsVerified(phone string) bool {
	verified := NormalizePhone(f.VerifiedPhone)
	return f.stage() == StageVerified && verified != "" && verified == NormalizePhone(phone)
}

func (f *Flow) Reset() {
	*f = Flow{}
}
