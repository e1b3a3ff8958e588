package commitmsg

import "strings"

// Message is a commit message split into its subject line and optional body
type Message struct {
	Subject string
	Body    string // empty when the message has no body
}

// HasBody reports whether the message has a body paragraph
func (m Message) HasBody() bool {
	return m.Body != ""
}

// String returns the message in git's format: subject, blank line, body
func (m Message) String() string {
	if !m.HasBody() {
		return m.Subject
	}
	return m.Subject + "\n\n" + m.Body
}

// Parse splits a raw model reply into a Message.
//
// The reply is trimmed, then split at the first blank line. The subject is
// only the first line of the text before that blank line; any further lines
// there are dropped. The body is everything after it, trimmed. Without a
// blank line the first line is the subject and there is no body.
//
// Parse never fails. A whitespace-only reply yields an empty subject, which
// callers have to deal with themselves.
func Parse(raw string) Message {
	trimmed := strings.TrimSpace(raw)

	if head, tail, ok := strings.Cut(trimmed, "\n\n"); ok {
		return Message{
			Subject: firstLine(head),
			Body:    strings.TrimSpace(tail),
		}
	}

	return Message{Subject: firstLine(trimmed)}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}
