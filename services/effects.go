package services

import (
	"errors"

	"github.com/blogem/leadsplatter/integrations"
	"github.com/blogem/leadsplatter/integrations/crm"
)

// Names of the best-effort side effects of a lead capture
const (
	EffectCRMSync      = "crm_sync"
	EffectWelcomeEmail = "welcome_email"
)

// EffectStatus is the outcome of a best-effort operation
type EffectStatus string

const (
	EffectDelivered EffectStatus = "delivered"
	EffectSkipped   EffectStatus = "skipped"
	EffectDuplicate EffectStatus = "duplicate"
	EffectFailed    EffectStatus = "failed"
)

// EffectResult records what happened to one best-effort side effect. It never
// changes the outcome reported to the caller; callers log it and move on.
type EffectResult struct {
	Effect string
	Status EffectStatus
	Err    error
}

// Failed reports whether the effect was attempted and did not go through
func (r EffectResult) Failed() bool {
	return r.Status == EffectFailed || r.Status == EffectDuplicate
}

func newEffectResult(effect string, err error) EffectResult {
	result := EffectResult{Effect: effect, Err: err}

	switch {
	case err == nil:
		result.Status = EffectDelivered
	case errors.Is(err, integrations.ErrDisabled):
		result.Status = EffectSkipped
	case errors.Is(err, crm.ErrContactExists):
		result.Status = EffectDuplicate
	default:
		result.Status = EffectFailed
	}

	return result
}
