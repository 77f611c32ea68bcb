package core

import (
	"bytes"
	"net/mail"
	"sync"
	texttmpl "text/template"

	"github.com/pkg/errors"
)

var (
	templates map[string]*texttmpl.Template
	tmplInit  sync.Once
)

type (
	EmailMessage struct {
		To      []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string
		TemplateData interface{}
		TextContent  string
	}

	ContextData struct {
		FrontendBaseURL string
		Data            interface{}
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

func loadTemplates() {
	templates = map[string]*texttmpl.Template{
		"welcome": texttmpl.Must(texttmpl.New("welcome").Parse(
			"Hi {{ .Data.Name }},\n\n" +
				"Welcome to {{ .Data.AppName }}! Your {{ .Data.Role }} account is ready.\n" +
				"Sign in at {{ .FrontendBaseURL }} to get started.\n",
		)),
	}
}

// Render resolves the message content: BodyStr wins, otherwise the named
// template is executed with ContextData.
func (m *EmailMessage) Render(conf *Config) error {
	tmplInit.Do(loadTemplates)

	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
		return nil
	}
	tmpl, ok := templates[m.TemplateName]
	if !ok {
		return errors.Errorf("unknown email template %q", m.TemplateName)
	}
	var buf bytes.Buffer
	data := ContextData{FrontendBaseURL: conf.FrontendBaseURL, Data: m.TemplateData}
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.Wrapf(err, "rendering template %q", m.TemplateName)
	}
	m.TextContent = buf.String()
	return nil
}
