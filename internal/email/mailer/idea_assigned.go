// internal/email/mailer/idea_assigned.go
package mailer

import "github.com/upstartlab/ideahub/internal/email"

// AssignmentTemplateData contains data for the assignment email template
type AssignmentTemplateData struct {
	Name      string
	Role      string
	IdeaTitle string
	IdeaLink  string
}

// SendAssignmentEmail notifies a user they were assigned to an idea
func SendAssignmentEmail(s *email.Service, to, name, role, ideaTitle, ideaLink string) error {
	templateData := AssignmentTemplateData{
		Name:      name,
		Role:      role,
		IdeaTitle: ideaTitle,
		IdeaLink:  ideaLink,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "IdeaHub",
		Subject:      "You were assigned an idea on IdeaHub",
		TemplateName: "idea_assigned",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
