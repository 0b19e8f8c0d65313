// Package notify builds the share-message side channel: a pre-filled
// message for a saved transaction, deliverable through messaging deep
// links. One-way and best-effort, not part of the data model.
package notify

import (
	"fmt"
	"net/url"
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/financa-pro/backend/internal/models"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Message renders the share text for a stored transaction.
func Message(s models.Snapshot, tx models.Transaction) string {
	memberName := "Membro"
	if member, ok := s.Member(tx.MemberID); ok {
		memberName = member.Name
	}

	amount, _ := tx.Amount.Float64()

	return fmt.Sprintf("💰 *Lançamento Confirmado - Finança Pro*\n\n"+
		"👤 *Membro:* %s\n"+
		"📝 *Descrição:* %s\n"+
		"💵 *Valor:* R$ %s\n"+
		"🔄 *Tipo:* %s\n"+
		"📂 *Categoria:* %s\n"+
		"💳 *Método:* %s\n"+
		"📅 *Data:* %s\n\n"+
		"_Notificação Automática Familiar_",
		memberName,
		tx.Description,
		printer.Sprintf("%.2f", amount),
		tx.Type,
		tx.Category,
		tx.PaymentMethod,
		tx.Date.Time().Format("02/01/2006"),
	)
}

var nonDigits = regexp.MustCompile(`\D`)

// Links returns one messaging deep link per target number, each
// carrying the message text.
func Links(numbers []string, text string) []string {
	encoded := url.QueryEscape(text)

	links := make([]string, 0, len(numbers))
	for _, number := range numbers {
		links = append(links, "https://wa.me/"+nonDigits.ReplaceAllString(number, "")+"?text="+encoded)
	}

	return links
}
