package services

import (
	"fmt"
	"strings"

	"shipping-tools/internal/domain"

	"go.uber.org/zap"
)

// Accent folding for matching shipping-method labels in sales-export
// lines. Deliberately separate from NormalizeText: these lines are already
// decoded text, not mis-decoded sequences.
var methodFold = strings.NewReplacer(
	"ó", "o",
	"í", "i",
	"á", "a",
	"é", "e",
	"ú", "u",
)

// FilterShipments keeps the header line and the complete data lines of a
// decoded sales export whose shipping method is accepted by rules.
// Blank lines are dropped silently; incomplete lines (continuation rows of
// multi-item orders) are dropped and reported in Skipped.
func FilterShipments(text string, rules domain.FilterRules, log *zap.Logger) (domain.FilterResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if rules.Delimiter == "" {
		return domain.FilterResult{}, fmt.Errorf("filter shipments: empty delimiter")
	}
	if rules.KeyField < 0 || rules.KeyField >= max(rules.MinFields, 1) {
		return domain.FilterResult{}, fmt.Errorf(
			"filter shipments: key field %d outside the %d required fields",
			rules.KeyField, rules.MinFields,
		)
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	var res domain.FilterResult

	for i, line := range lines {
		if i == 0 {
			kept = append(kept, line)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		row := domain.ShipmentRow(strings.Split(line, rules.Delimiter))
		if reason := incompleteReason(row, rules); reason != "" {
			log.Warn("shipment filter: line skipped",
				zap.Int("line", i+1),
				zap.String("reason", reason),
			)
			res.Skipped = append(res.Skipped, domain.SkippedLine{Line: i + 1, Reason: reason})
			continue
		}

		res.Considered++
		if !acceptedMethod(line, rules) {
			continue
		}

		kept = append(kept, line)
		res.Accepted++
	}

	res.Output = strings.Join(kept, "\n")
	res.Written = len(kept) - 1

	log.Info("shipment filter: done",
		zap.Int("considered", res.Considered),
		zap.Int("accepted", res.Accepted),
		zap.Int("written", res.Written),
		zap.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// incompleteReason returns why row cannot be a standalone order line, or
// "" when it is complete.
func incompleteReason(row domain.ShipmentRow, rules domain.FilterRules) string {
	if len(row) < rules.MinFields {
		return fmt.Sprintf("%d fields, want at least %d (duplicate/multi-item order line)", len(row), rules.MinFields)
	}
	if strings.TrimSpace(row.Field(rules.KeyField)) == "" {
		return fmt.Sprintf("empty field %d (duplicate/multi-item order line)", rules.KeyField+1)
	}
	return ""
}

// acceptedMethod reports whether line names the accepted carrier with an
// accepted method phrase, or a free-shipping phrase.
func acceptedMethod(line string, rules domain.FilterRules) bool {
	folded := methodFold.Replace(line)

	if rules.Carrier != "" && strings.Contains(folded, rules.Carrier) {
		for _, phrase := range rules.MethodPhrases {
			if phrase != "" && strings.Contains(folded, phrase) {
				return true
			}
		}
	}

	for _, phrase := range rules.FreeShipPhrases {
		if phrase != "" && strings.Contains(folded, phrase) {
			return true
		}
	}
	return false
}
