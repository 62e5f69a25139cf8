package view

import (
	"sort"
	"strconv"
	"strings"
)

// ParamOpen lists the expanded FAQ answers, e.g. ?open=0,2
const ParamOpen = "open"

// Question is one FAQ entry.
type Question struct {
	Question string
	Answer   string
}

// Accordion tracks which FAQ answers are expanded.
type Accordion struct {
	open map[int]bool
}

// ParseAccordion reads a comma-separated list of indexes. Junk entries are ignored.
func ParseAccordion(raw string) Accordion {
	a := Accordion{open: make(map[int]bool)}
	for _, part := range strings.Split(raw, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && i >= 0 {
			a.open[i] = true
		}
	}
	return a
}

// IsOpen reports whether answer i is expanded.
func (a Accordion) IsOpen(i int) bool {
	return a.open[i]
}

// Toggle returns a copy with answer i flipped.
func (a Accordion) Toggle(i int) Accordion {
	next := Accordion{open: make(map[int]bool, len(a.open)+1)}
	for k, v := range a.open {
		next.open[k] = v
	}
	if next.open[i] {
		delete(next.open, i)
	} else {
		next.open[i] = true
	}
	return next
}

// String encodes the expanded indexes in ascending order.
func (a Accordion) String() string {
	idx := make([]int, 0, len(a.open))
	for i, open := range a.open {
		if open {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)

	parts := make([]string, len(idx))
	for n, i := range idx {
		parts[n] = strconv.Itoa(i)
	}
	return strings.Join(parts, ",")
}

// FAQItem is a question prepared for display.
type FAQItem struct {
	Question
	Open      bool
	ToggleURL string
}

// ContactForm holds the contact form fields.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactData is everything the contact page needs.
type ContactData struct {
	Title  string
	FAQ    []FAQItem
	Form   ContactForm
	Sent   bool
	Errors []string
}

// Refresh is always 0; the contact page never reloads itself.
func (ContactData) Refresh() int { return 0 }

// NewContactData lays out the FAQ for the given accordion state.
func NewContactData(questions []Question, accordion Accordion) ContactData {
	d := ContactData{Title: "Contactos"}
	for i, q := range questions {
		link := ContactPath
		if next := accordion.Toggle(i).String(); next != "" {
			link += "?" + ParamOpen + "=" + next
		}
		d.FAQ = append(d.FAQ, FAQItem{
			Question:  q,
			Open:      accordion.IsOpen(i),
			ToggleURL: link + "#faq-" + strconv.Itoa(i),
		})
	}
	return d
}
