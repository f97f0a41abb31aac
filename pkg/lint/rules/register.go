package rules

import "github.com/yaklabco/gofmlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Attribute rules
	registry.Register(NewRequiredAttributesRule()) // FM001

	// Whitespace rules
	registry.Register(NewWhitespaceBeforeColonRule()) // FM002
	registry.Register(NewEmptyLinesRule())            // FM003
	registry.Register(NewTrailingSpacesRule())        // FM005
	registry.Register(NewRepeatingWhitespaceRule())   // FM010
	registry.Register(NewExtraSpaceAfterColonRule())  // FM011

	// Quoting and bracket rules
	registry.Register(NewQuotesRule())      // FM004
	registry.Register(NewBracketsRule())    // FM006
	registry.Register(NewCurlyBracesRule()) // FM007

	// Indentation rules
	registry.Register(NewIndentationJumpRule()) // FM008

	// Comma rules
	registry.Register(NewTrailingCommasRule())      // FM009
	registry.Register(NewCommaFollowedByCharRule()) // FM012
}

func init() {
	RegisterAll(lint.DefaultRegistry)
}
