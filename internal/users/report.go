package users

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalog keys double as the English text.
const (
	keyReportHeader = "--- User Report ---"
	keyReportEmpty  = "No users registered."
	keyReportLine   = "ID: %s, Name: %s, Status: %s"
	keyStatusActive = "active"
	keyStatusInact  = "inactive"
)

var reportLocales = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var reportCatalog = newReportCatalog()

func newReportCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	translations := map[language.Tag]map[string]string{
		language.English: {
			keyReportHeader: keyReportHeader,
			keyReportEmpty:  keyReportEmpty,
			keyReportLine:   keyReportLine,
			keyStatusActive: keyStatusActive,
			keyStatusInact:  keyStatusInact,
		},
		language.BrazilianPortuguese: {
			keyReportHeader: "--- Relatório de Usuários ---",
			keyReportEmpty:  "Nenhum usuário cadastrado.",
			keyReportLine:   "ID: %s, Nome: %s, Status: %s",
			keyStatusActive: "ativo",
			keyStatusInact:  "inativo",
		},
	}

	for tag, messages := range translations {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("users: invalid report catalog entry " + key + ": " + err.Error())
			}
		}
	}
	return b
}

// ReportLocale resolves a locale string such as "en" or "pt-BR" to the closest
// supported report language. Unparsable input resolves to English.
func ReportLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, _ := language.NewMatcher(reportLocales).Match(tag)
	return reportLocales[idx]
}

// ReportRenderer renders the plain-text user report in one language
type ReportRenderer struct {
	printer *message.Printer
}

// NewReportRenderer creates a renderer for the given locale string
func NewReportRenderer(locale string) *ReportRenderer {
	return &ReportRenderer{
		printer: message.NewPrinter(ReportLocale(locale), message.Catalog(reportCatalog)),
	}
}

// Render writes the header followed by one line per user, or the empty notice
func (r *ReportRenderer) Render(users []*User) string {
	var sb strings.Builder
	sb.WriteString(r.printer.Sprintf(keyReportHeader))
	sb.WriteString("\n")

	if len(users) == 0 {
		sb.WriteString(r.printer.Sprintf(keyReportEmpty))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, user := range users {
		sb.WriteString(r.printer.Sprintf(keyReportLine, user.ID, user.Name, r.statusLabel(user.Status)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *ReportRenderer) statusLabel(status UserStatus) string {
	switch status {
	case UserStatusActive:
		return r.printer.Sprintf(keyStatusActive)
	case UserStatusInactive:
		return r.printer.Sprintf(keyStatusInact)
	default:
		return string(status)
	}
}
