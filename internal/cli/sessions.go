package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matforge/matforge/pkg/catalog"
)

// =============================================================================
// Sessions Command
// =============================================================================

// sessionsCommand groups the catalog subcommands.
func (c *CLI) sessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect recorded import sessions",
		Long: `Sessions lists what the catalog remembers about past imports: which asset
was imported, how many nodes it produced, and what was skipped or missing.`,
	}

	cmd.AddCommand(c.sessionsListCommand())
	cmd.AddCommand(c.sessionsShowCommand())
	cmd.AddCommand(c.sessionsRemoveCommand())

	return cmd
}

// openCatalog returns the configured catalog store. Disabled catalogs are an
// error here, unlike during import where they are simply skipped.
func (c *CLI) openCatalog() (catalog.Store, error) {
	store, err := c.newCatalog(false)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, errors.New("the catalog is disabled in settings")
	}
	return store, nil
}

// sessionsListCommand creates the list subcommand.
func (c *CLI) sessionsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				printInfo("No sessions recorded yet")
				printNextStep("Record one", appName+" import <file|asset-path>")
				return nil
			}

			fmt.Println(sessionTable(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum sessions to list (0 for all)")

	return cmd
}

// sessionsShowCommand creates the show subcommand.
func (c *CLI) sessionsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one session in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			sess, err := findSession(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(sess.Name))
			printNewline()
			printKeyValue("ID", sess.ID)
			printKeyValue("Asset", sess.AssetPath)
			printKeyValue("Unit", string(sess.Unit))
			printKeyValue("Nodes", StyleNumber.Render(fmt.Sprintf("%d", sess.Nodes)))
			printKeyValue("Comments", StyleNumber.Render(fmt.Sprintf("%d", sess.Comments)))
			printKeyValue("Warnings", StyleNumber.Render(fmt.Sprintf("%d", sess.Warnings)))
			printKeyValue("Duration", sess.Duration.Round(time.Millisecond).String())
			printKeyValue("Created", sess.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			for _, kind := range sess.Unsupported {
				printDetail("unsupported kind: %s", kind)
			}
			for _, ref := range sess.MissingRefs {
				printDetail("missing asset: %s", ref)
			}
			return nil
		},
	}
}

// sessionsRemoveCommand creates the rm subcommand.
func (c *CLI) sessionsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a recorded session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			sess, err := findSession(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), sess.ID); err != nil {
				return err
			}
			printSuccess("Deleted session %s", shortID(sess.ID))
			return nil
		},
	}
}

// =============================================================================
// Helpers
// =============================================================================

// sessionTable renders sessions as a bordered table.
func sessionTable(sessions []*catalog.Session) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		warn := "—"
		if s.Warnings > 0 {
			warn = fmt.Sprintf("%d", s.Warnings)
		}
		rows[i] = []string{
			shortID(s.ID),
			s.Name,
			string(s.Unit),
			fmt.Sprintf("%d", s.Nodes),
			warn,
			formatRelativeTime(s.CreatedAt),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Unit", "Nodes", "Warnings", "When").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(sessions) {
				return lipgloss.NewStyle()
			}
			switch {
			case col == 0 || col == 5:
				return lipgloss.NewStyle().Foreground(colorDim)
			case col == 4 && sessions[row].Warnings > 0:
				return StyleWarning
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	return t.Render()
}

// findSession resolves an id or unique id prefix against the store.
func findSession(ctx context.Context, store catalog.Store, id string) (*catalog.Session, error) {
	sess, err := store.Get(ctx, id)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return nil, err
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	var match *catalog.Session
	for _, s := range all {
		if strings.HasPrefix(s.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("session id %q is ambiguous", id)
			}
			match = s
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	return match, nil
}

// shortID truncates a session id for display. The show and rm subcommands
// accept the truncated form.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatRelativeTime renders a timestamp as a short age like "2h ago".
func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
