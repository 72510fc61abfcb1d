package mailer

// Template names understood by the worker.
const (
	TemplateWelcome = "welcome"
	TemplateReceipt = "purchase_receipt"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects one of the built-in templates rendered with Data; when
// empty, Subject/Text/HTML are sent as-is.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
