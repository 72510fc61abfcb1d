package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTpl = template.Must(template.New(TemplateWelcome).Parse(`
<html><body>
<h2>Welcome to {{.AppName}}, {{.Name}}</h2>
<p>Your {{.Role}} account for {{.Company}} is ready. Sign in to start
{{if eq .Role "supplier"}}listing raw materials{{else}}browsing available materials{{end}}.</p>
</body></html>`))

var receiptTpl = template.Must(template.New(TemplateReceipt).Parse(`
<html><body>
<h2>Product created</h2>
<p>{{.ProductName}} has been recorded for {{.Company}}.</p>
<p>Transaction reference: <code>{{.TxHash}}</code></p>
</body></html>`))

// Render produces subject and HTML body for a named template.
func Render(name string, data map[string]any) (subject, html string, err error) {
	var tpl *template.Template
	switch name {
	case TemplateWelcome:
		tpl = welcomeTpl
		subject = fmt.Sprintf("Welcome to %v", data["AppName"])
	case TemplateReceipt:
		tpl = receiptTpl
		subject = fmt.Sprintf("Product created: %v", data["ProductName"])
	default:
		return "", "", fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
