// Package mailsrc abstracts where order emails come from. The pipeline only
// sees ordered (subject, body) pairs; whether they were fetched over IMAP,
// dropped into a directory, or synthesized in a test is this package's
// problem.
package mailsrc

import "context"

// Message is one fetched email, body already reduced to plain text. OCR text
// recovered from attachments is appended to the body under a bracketed
// "extracted from <name>" marker and treated downstream as ordinary text.
type Message struct {
	Subject string
	Body    string
}

// Source yields the next batch of order emails. Implementations decide what
// "new" means (unread flags, file moves, offsets); Fetch must be safe to
// call repeatedly.
type Source interface {
	Fetch(ctx context.Context) ([]Message, error)
}
