package notification

import "fmt"

const signature = "\n\nBest regards,\nLibrary Management"

// render produces the subject and body for a notification kind.
// Unknown kinds render a generic message rather than failing the queue.
func render(kind Kind, params map[string]string) (subject, body string) {
	switch kind {
	case KindBorrowConfirmed:
		return "Book Borrow Confirmation", fmt.Sprintf(
			"Dear Library Member,\n\nYou have successfully borrowed '%s'. Please return by %s.%s",
			params["title"], params["due_date"], signature)
	case KindReturnConfirmed:
		return "Book Return Confirmation", fmt.Sprintf(
			"Dear Library Member,\n\nYou have returned '%s'. Thank you!%s",
			params["title"], signature)
	case KindDueSoon:
		return "Book Due Date Reminder", fmt.Sprintf(
			"Dear Library Member,\n\nThis is a friendly reminder that the book '%s' is due on %s.\nPlease return it by the due date to avoid any late fees.%s",
			params["title"], params["due_date"], signature)
	case KindOverdue:
		return "Book Overdue Notice", fmt.Sprintf(
			"Dear Library Member,\n\nThe book '%s' is overdue. A fine of $%s has been applied to your account.\nPlease return the book as soon as possible to prevent additional charges.%s",
			params["title"], params["amount"], signature)
	case KindFineCreated:
		return "Library Fine Issued", fmt.Sprintf(
			"Dear Library Member,\n\nA new fine (ID: %s) of $%s has been created for your account.\nPlease settle this fine at your earliest convenience to maintain your library privileges.%s",
			params["fine_id"], params["amount"], signature)
	case KindFinePaid:
		return "Fine Payment Confirmation", fmt.Sprintf(
			"Dear Library Member,\n\nYour payment for fine ID: %s has been confirmed. Thank you for your prompt payment!\n\nIf you have any questions, please contact the library staff.%s",
			params["fine_id"], signature)
	case KindRegistered:
		return "Welcome to the Library", fmt.Sprintf(
			"Dear %s,\n\nYou have successfully registered for the library membership.%s",
			params["username"], signature)
	}

	return "Library Notification", "Dear Library Member,\n\nYou have a new library notification." + signature
}

// reference picks the identifier worth auditing for a kind.
func reference(kind Kind, params map[string]string) string {
	switch kind {
	case KindFineCreated, KindFinePaid:
		return params["fine_id"]
	default:
		return params["title"]
	}
}
