package notes

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/models"
)

type NoteCmd struct {
	Set    NoteSetCmd    `cmd:"" help:"Write the journal entry for a day."`
	Show   NoteShowCmd   `cmd:"" help:"Show the journal entry for a day."`
	List   NoteListCmd   `cmd:"" help:"List all journal entries."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete the journal entry for a day."`
	Search NoteSearchCmd `cmd:"" help:"Search journal entries."`
}

type NoteSetCmd struct {
	Content string `arg:"" optional:"" help:"Entry text. Reads stdin when omitted."`
	Date    string `help:"Date (YYYY-MM-DD, 'today', or 'yesterday')." default:""`
	File    string `help:"Attach a file to the entry." type:"existingfile"`
}

func (c *NoteSetCmd) Run(ctx *cli.Context) error {
	day, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	content := c.Content
	if content == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("no content given and stdin unavailable: %w", err)
		}
		content = strings.TrimSpace(string(data))
	}
	if content == "" {
		return fmt.Errorf("entry content cannot be empty")
	}

	var attachments []models.Attachment
	if c.File != "" {
		attachment, err := cli.LoadAttachment(c.File)
		if err != nil {
			return err
		}
		attachments = append(attachments, attachment)
	}

	note, err := ctx.Tracker.SetNote(day, content, attachments)
	if err != nil {
		return err
	}

	mood := "none"
	if note.Mood != nil {
		mood = string(*note.Mood)
	}
	fmt.Printf("Saved entry for %s (%d words, mood: %s)\n", day, note.WordCount, mood)
	return nil
}

type NoteShowCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, 'today', or 'yesterday')." default:""`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	day, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	note, ok := ctx.Tracker.Note(day)
	if !ok {
		fmt.Printf("No entry for %s.\n", day)
		return nil
	}

	printNote(day, note)
	return nil
}

func printNote(day string, note models.Note) {
	header := day
	if note.Mood != nil {
		header += "  (" + string(*note.Mood) + ")"
	}
	fmt.Println(header)
	fmt.Println(note.Content)
	for _, a := range note.Attachments {
		fmt.Printf("  📎 %s (%d bytes)\n", a.Name, a.Size)
	}
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	results := ctx.Tracker.Notes()
	if len(results) == 0 {
		fmt.Println("No journal entries.")
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		printNote(r.Date, r.Note)
	}
	return nil
}

type NoteDeleteCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD, 'today', or 'yesterday')." default:""`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	day, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteNote(day); err != nil {
		return err
	}
	fmt.Printf("Deleted entry for %s\n", day)
	return nil
}

type NoteSearchCmd struct {
	Query string `arg:"" help:"Search text."`
}

func (c *NoteSearchCmd) Run(ctx *cli.Context) error {
	results := ctx.Tracker.SearchNotes(c.Query)
	if len(results) == 0 {
		fmt.Println("No matching entries.")
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		printNote(r.Date, r.Note)
	}
	return nil
}
