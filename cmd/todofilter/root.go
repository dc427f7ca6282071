package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/http/dto"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/adapters/store/seed"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/logging"
)

type options struct {
	owner    string
	category string
	body     string
	status   string
	limit    int
	asJSON   bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "todofilter [flags] FILE",
		Short: "Filter todos from a seed file",
		Long: `Load todos from a JSON or YAML seed file, keep the ones matching every
given criterion and print them in file order.

Owner, category and body match when the field contains the given text
(case-sensitive). Status is one of complete, incomplete or either. A limit of
zero or less keeps every match.

Examples:
  # Incomplete homework owned by Fry
  todofilter --owner Fry --category homework --status incomplete data/todos.json

  # First five todos whose body mentions "quis", as JSON
  todofilter --body quis --limit 5 --json data/todos.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.owner, "owner", "", "keep todos whose owner contains this text")
	flags.StringVar(&opts.category, "category", "", "keep todos whose category contains this text")
	flags.StringVar(&opts.body, "body", "", "keep todos whose body contains this text")
	flags.StringVar(&opts.status, "status", "", "complete, incomplete or either")
	flags.IntVar(&opts.limit, "limit", 0, "print at most this many todos (0 = no limit)")
	flags.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level for diagnostics on stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	logger := logging.New(opts.logLevel, "text", cmd.ErrOrStderr())

	status, err := todo.ParseStatusFilter(opts.status)
	if err != nil {
		return fmt.Errorf("--status: %w", err)
	}

	todos, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("seed file loaded", slog.String("path", path), slog.Int("count", len(todos)))

	criteria := todo.Criteria{
		Owner:    opts.owner,
		Category: opts.category,
		Body:     opts.body,
		Status:   status,
		Limit:    opts.limit,
	}
	result := todo.Apply(todos, criteria)
	logger.Debug("filter applied",
		slog.Bool("active", !criteria.IsZero()),
		slog.Int("matched", len(result)),
	)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		return writeJSON(out, result)
	}
	return writeTable(out, result)
}

func writeJSON(w io.Writer, todos []todo.Todo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.ToTodoListResponse(todos)); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, todos []todo.Todo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tOWNER\tCATEGORY\tSTATUS")
	for i := range todos {
		t := &todos[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Title, t.Owner, t.Category, t.StatusLabel())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	noun := "todos"
	if len(todos) == 1 {
		noun = "todo"
	}
	_, err := fmt.Fprintf(w, "%d %s\n", len(todos), noun)
	return err
}
