package notification

import "time"

// Kind selects a message template.
type Kind string

const (
	KindBorrowConfirmed Kind = "borrow_confirmed"
	KindReturnConfirmed Kind = "return_confirmed"
	KindDueSoon         Kind = "due_soon"
	KindOverdue         Kind = "overdue"
	KindFineCreated     Kind = "fine_created"
	KindFinePaid        Kind = "fine_paid"
	KindRegistered      Kind = "registered"
)

// Enqueuer is the fire-and-forget surface the lifecycle services see.
// Delivery, retries and auditing are the dispatcher's concern; a failed
// send is structurally incapable of affecting the caller's entity write.
type Enqueuer interface {
	Enqueue(kind Kind, recipient string, params map[string]string)
}

// Message is a rendered notification ready for the transport.
type Message struct {
	Kind      Kind
	Recipient string
	Subject   string
	Body      string
	Reference string
}

// Audit is one delivery-attempt outcome, kept for traceability.
type Audit struct {
	Kind      Kind
	Recipient string
	Reference string
	Success   bool
	SentAt    time.Time
}
