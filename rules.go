// SPDX-License-Identifier: MIT
package csstree

// Rule level shapes built from Primitive sequences by the stylesheet grammar.
//
// The Parser does not produce these yet.
type (
	// Declaration is a `name: value [!important]` pair.
	Declaration struct {
		Name      string
		Value     []Primitive
		Important bool
	}

	// StyleRule is a selector followed by a block of declarations.
	StyleRule struct {
		Selector []Primitive
		Value    []DeclarationListItem
	}

	// AtRule is an `@name` rule, its prelude & its optional block.
	AtRule struct {
		Name     string
		Selector []Primitive
		Value    AtRuleValue
	}

	// AtRuleValue is the body of an AtRule: EmptyAtRule, DeclarationFilled or RuleFilled.
	AtRuleValue interface{ atRuleValue() }

	// EmptyAtRule is the body of an `@foo …;` rule.
	EmptyAtRule struct{}
	// DeclarationFilled is the body of an at-rule holding declarations, e.g. `@page`.
	DeclarationFilled []DeclarationListItem
	// RuleFilled is the body of an at-rule holding rules, e.g. `@media`.
	RuleFilled []RuleListItem

	// DeclarationListItem is either a Declaration or an AtRule.
	DeclarationListItem interface{ declarationListItem() }

	// RuleListItem is either a StyleRule or an AtRule.
	RuleListItem interface{ ruleListItem() }
)

func (EmptyAtRule) atRuleValue()       {}
func (DeclarationFilled) atRuleValue() {}
func (RuleFilled) atRuleValue()        {}

func (Declaration) declarationListItem() {}
func (AtRule) declarationListItem()      {}

func (StyleRule) ruleListItem() {}
func (AtRule) ruleListItem()    {}
