// Package conversation provides command parsing and user notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.CommandParser = (*MenuParser)(nil)

// MenuParser maps menu numbers and keywords to commands. Keyword commands
// may carry a recipe name, as in "scale banana bread".
type MenuParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex   *regexp.Regexp
	command domain.CommandType
}

// menuNumbers follows the numbering of the printed menu.
var menuNumbers = map[string]domain.CommandType{
	"1": domain.CommandEnter,
	"2": domain.CommandList,
	"3": domain.CommandScale,
	"4": domain.CommandReset,
	"5": domain.CommandClear,
	"6": domain.CommandCalories,
	"7": domain.CommandExit,
}

// NewMenuParser creates a menu/keyword command parser.
func NewMenuParser(log *logger.Logger) *MenuParser {
	p := &MenuParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(enter|add|new|create)(\s+recipe)?\b`), domain.CommandEnter},
		{regexp.MustCompile(`(?i)^(list|recipes|display|ls)$`), domain.CommandList},
		{regexp.MustCompile(`(?i)^(view|show|open|details)\b`), domain.CommandView},
		{regexp.MustCompile(`(?i)^(scale|resize)\b`), domain.CommandScale},
		{regexp.MustCompile(`(?i)^(reset|restore)\b`), domain.CommandReset},
		{regexp.MustCompile(`(?i)^(clear|delete|remove|rm)\b`), domain.CommandClear},
		{regexp.MustCompile(`(?i)^(calories|cal|kcal)\b`), domain.CommandCalories},
		{regexp.MustCompile(`(?i)^(help|h|\?|menu)$`), domain.CommandHelp},
		{regexp.MustCompile(`(?i)^(exit|quit|q|bye)$`), domain.CommandExit},
	}
	return p
}

// Parse converts user input into a command.
func (p *MenuParser) Parse(ctx context.Context, input string) (*domain.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Command{Type: domain.CommandUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	if c, ok := menuNumbers[trimmed]; ok {
		return &domain.Command{Type: c}, nil
	}

	for _, rule := range p.patterns {
		loc := rule.regex.FindStringIndex(trimmed)
		if loc == nil {
			continue
		}
		p.log.Debug("matched command: %s", rule.command)
		cmd := &domain.Command{Type: rule.command}
		// Anything after the keyword names the recipe.
		if rule.command != domain.CommandEnter {
			cmd.Payload = strings.TrimSpace(trimmed[loc[1]:])
		}
		return cmd, nil
	}

	p.log.Debug("no match, returning unknown command")
	return &domain.Command{Type: domain.CommandUnknown, Payload: trimmed}, nil
}
