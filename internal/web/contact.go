package web

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/pfrederiksen/sports-events/internal/view"
)

// MaxContactBytes caps the contact form body.
const MaxContactBytes = 64 << 10

// MaxMessageLength caps the message field, in bytes.
const MaxMessageLength = 5000

// DefaultQuestions is the FAQ shown on the contact page.
func DefaultQuestions() []view.Question {
	return []view.Question{
		{
			Question: "De onde vêm os dados dos eventos?",
			Answer:   "Os calendários são obtidos da TheSportsDB quando o serviço arranca.",
		},
		{
			Question: "Que ligas são acompanhadas?",
			Answer:   "Premier League, Liga Portugal, NBA e Liga dos Campeões.",
		},
		{
			Question: "Porque é que um jogo aparece com hora \"A definir\"?",
			Answer:   "A hora ainda não foi anunciada pela organização da competição.",
		},
		{
			Question: "Posso adicionar os eventos ao meu calendário?",
			Answer:   "Sim. Use o botão \"Exportar calendário\" para descarregar um ficheiro .ics com os eventos filtrados.",
		},
	}
}

// ContactFormFromValues reads and trims the posted fields.
func ContactFormFromValues(values url.Values) view.ContactForm {
	return view.ContactForm{
		Name:    strings.TrimSpace(values.Get("name")),
		Email:   strings.TrimSpace(values.Get("email")),
		Subject: strings.TrimSpace(values.Get("subject")),
		Message: strings.TrimSpace(values.Get("message")),
	}
}

// ValidateContact returns one message per invalid field, or nil.
func ValidateContact(form view.ContactForm) []string {
	var problems []string

	if form.Name == "" {
		problems = append(problems, "O nome é obrigatório.")
	}

	if form.Email == "" {
		problems = append(problems, "O email é obrigatório.")
	} else if addr, err := mail.ParseAddress(form.Email); err != nil || addr.Address != form.Email {
		problems = append(problems, "O email não é válido.")
	}

	switch {
	case form.Message == "":
		problems = append(problems, "A mensagem é obrigatória.")
	case len(form.Message) > MaxMessageLength:
		problems = append(problems, "A mensagem é demasiado longa.")
	}

	return problems
}
