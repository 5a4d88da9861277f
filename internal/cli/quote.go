package cli

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow-cli/internal/quotes"
)

type QuoteCmd struct {
	All bool `help:"List every quote instead of today's."`
}

func (c *QuoteCmd) Run(ctx *Context) error {
	if c.All {
		for _, q := range quotes.All() {
			fmt.Printf("%q - %s (%s)\n", q.Text, q.Author, q.Category)
		}
		return nil
	}

	q := quotes.OfDay(time.Now())
	fmt.Printf("%q\n", q.Text)
	fmt.Printf("    - %s\n", q.Author)
	return nil
}
