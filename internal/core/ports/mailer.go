package ports

import "context"

// Mailer delivers one templated email. Rendering the template identifier and
// data into markup is the mail collaborator's job; the core only decides what
// to send to whom.
//
// Send must return delivery failures as errors, never panic into the caller:
// the dispatch job swallows and logs them, because a failed notification must
// never invalidate the committed state change it announces.
type Mailer interface {
	Send(ctx context.Context, templateID string, recipient string, data map[string]string) error
}
