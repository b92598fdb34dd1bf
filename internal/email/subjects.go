package email

import "fmt"

const (
	subjectLeadAlertFmt       = "New Inquiry from %s: %s"
	subjectHighPriorityPrefix = "HIGH PRIORITY: "
	subjectTourConfirmedFmt   = "Your Tour is Confirmed - %s"
	subjectInquiryReceivedFmt = "We Received Your Inquiry - %s"
)

func leadAlertSubject(lead Lead) string {
	subject := fmt.Sprintf(subjectLeadAlertFmt, lead.PropertyName, lead.Name)
	if lead.Priority == "high" {
		return subjectHighPriorityPrefix + subject
	}
	return subject
}

func leadConfirmationSubject(lead Lead) string {
	if lead.HasTour() {
		return fmt.Sprintf(subjectTourConfirmedFmt, lead.PropertyName)
	}
	return fmt.Sprintf(subjectInquiryReceivedFmt, lead.PropertyName)
}
