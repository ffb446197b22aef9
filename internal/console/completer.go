package console

import (
	"strings"

	"github.com/c-bata/go-prompt"
)

// Complete implements prompt.Completer.
func (c *Console) Complete(d prompt.Document) []prompt.Suggest {
	return c.suggest(d.TextBeforeCursor())
}

// suggest returns candidates for the word being typed: a command name first,
// then the first-argument choices of that command.
func (c *Console) suggest(text string) []prompt.Suggest {
	fields := strings.Fields(text)
	typingNewWord := text == "" || strings.HasSuffix(text, " ")

	word := ""
	if !typingNewWord && len(fields) > 0 {
		word = fields[len(fields)-1]
	}

	position := len(fields)
	if !typingNewWord {
		position--
	}

	switch position {
	case 0:
		suggests := make([]prompt.Suggest, 0, len(c.commands))
		for i := range c.commands {
			suggests = append(suggests, prompt.Suggest{
				Text:        c.commands[i].Name,
				Description: c.commands[i].Description,
			})
		}

		return prompt.FilterHasPrefix(suggests, word, true)
	case 1:
		cmd, ok := c.lookup(strings.ToLower(fields[0]))
		if !ok {
			return nil
		}

		suggests := make([]prompt.Suggest, 0, len(cmd.Choices))
		for _, choice := range cmd.Choices {
			suggests = append(suggests, prompt.Suggest{Text: choice})
		}

		return prompt.FilterHasPrefix(suggests, word, true)
	default:
		return nil
	}
}
