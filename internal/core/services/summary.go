package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/cardledger/internal/core/domain"
)

// SummaryLines returns one line per account, sorted by name.
func SummaryLines(accounts []domain.Account) []domain.SummaryLine {
	lines := make([]domain.SummaryLine, 0, len(accounts))
	for i := range accounts {
		lines = append(lines, domain.SummaryLine{
			Name:    accounts[i].Name,
			Balance: accounts[i].Balance,
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Name < lines[j].Name
	})
	return lines
}

// RenderSummary renders accounts as "name: balance" lines in name order,
// each terminated by a newline.
func RenderSummary(accounts []domain.Account) string {
	return renderLines(SummaryLines(accounts))
}

func renderLines(lines []domain.SummaryLine) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}
