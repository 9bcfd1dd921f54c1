package shell

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expense-tracker/internal/domain"
	"github.com/heartmarshall/expense-tracker/internal/service/expense"
	"github.com/heartmarshall/expense-tracker/internal/service/report"
)

const (
	inputDateLayout   = "2006-01-02"
	displayDateLayout = "02 Jan 2006"
	shortIDLength     = 8
)

func (s *Shell) cmdAdd(ctx context.Context, args []string) error {
	fs := s.flagSet("add")
	date := fs.String("date", "", "expense date, YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 3 {
		return errors.New("usage: add [--date YYYY-MM-DD] <amount> <category> <description...>")
	}

	amount, err := parseAmount(rest[0])
	if err != nil {
		return err
	}
	category, err := parseCategory(rest[1])
	if err != nil {
		return err
	}
	when := s.today()
	if *date != "" {
		if when, err = s.parseDate("date", *date); err != nil {
			return err
		}
	}

	created, err := s.expenses.Create(ctx, expense.CreateInput{
		Description: strings.Join(rest[2:], " "),
		Amount:      amount,
		Category:    category,
		Date:        when,
	})
	if err != nil {
		return err
	}

	s.printf("Added %s  %s  %s  %s\n", shortID(created.ID), created.Date.UTC().Format(displayDateLayout),
		domain.FormatINR(created.Amount), created.Description)
	return nil
}

func (s *Shell) cmdEdit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: edit <id> [--amount N] [--category C] [--date YYYY-MM-DD] [--description D]")
	}
	id, err := s.resolveID(args[0])
	if err != nil {
		return err
	}

	fs := s.flagSet("edit")
	amountFlag := fs.String("amount", "", "new amount")
	categoryFlag := fs.String("category", "", "new category")
	dateFlag := fs.String("date", "", "new date, YYYY-MM-DD")
	descFlag := fs.String("description", "", "new description")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	input := expense.UpdateInput{ID: id}
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		if parseErr != nil {
			return
		}
		switch f.Name {
		case "amount":
			var a decimal.Decimal
			if a, parseErr = parseAmount(*amountFlag); parseErr == nil {
				input.Amount = &a
			}
		case "category":
			var c domain.Category
			if c, parseErr = parseCategory(*categoryFlag); parseErr == nil {
				input.Category = &c
			}
		case "date":
			var d time.Time
			if d, parseErr = s.parseDate("date", *dateFlag); parseErr == nil {
				input.Date = &d
			}
		case "description":
			input.Description = descFlag
		}
	})
	if parseErr != nil {
		return parseErr
	}

	updated, err := s.expenses.Update(ctx, input)
	if err != nil {
		return err
	}

	s.printf("Updated %s  %s  %s  %s  %s\n", shortID(updated.ID), updated.Date.UTC().Format(displayDateLayout),
		updated.Category, domain.FormatINR(updated.Amount), updated.Description)
	return nil
}

func (s *Shell) cmdRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rm <id>")
	}
	id, err := s.resolveID(args[0])
	if err != nil {
		return err
	}

	if err := s.expenses.Delete(ctx, id); err != nil {
		return err
	}
	s.printf("Deleted %s.\n", shortID(id))
	return nil
}

func (s *Shell) cmdClear(ctx context.Context, _ []string) error {
	if !s.confirm("Delete ALL of your expenses?") {
		s.println("Cancelled.")
		return nil
	}

	n, err := s.expenses.DeleteAll(ctx)
	if err != nil {
		return err
	}
	s.printf("Deleted %d expenses.\n", n)
	return nil
}

func (s *Shell) cmdList(context.Context, []string) error {
	expenses := s.expenses.Expenses()
	if len(expenses) == 0 {
		s.println("No expenses yet. Add one with 'add'.")
		return nil
	}

	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tAMOUNT (INR)\tDESCRIPTION")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ID), e.Date.UTC().Format(displayDateLayout), e.Category, domain.FormatINR(e.Amount), e.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	s.printf("%d expenses, total %s\n", len(expenses), domain.FormatINR(report.TotalOf(expenses)))
	return nil
}

func (s *Shell) cmdSummary(context.Context, []string) error {
	expenses := s.expenses.Expenses()

	s.printf("Total spent:   %s\n", domain.FormatINR(report.TotalOf(expenses)))
	s.printf("Transactions:  %d\n", len(expenses))
	s.printf("Top category:  %s\n", report.TopCategory(expenses))

	breakdown := report.Breakdown(expenses)
	if len(breakdown) == 0 {
		return nil
	}
	s.println("")
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, ct := range breakdown {
		fmt.Fprintf(tw, "%s\t%s\t\n", ct.Category, domain.FormatINR(ct.Total))
	}
	return tw.Flush()
}

func (s *Shell) cmdExport(_ context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: export <period> [--start YYYY-MM-DD] [--end YYYY-MM-DD] [--out FILE]")
	}
	preset := domain.PeriodPreset(strings.ToLower(args[0]))

	fs := s.flagSet("export")
	startFlag := fs.String("start", "", "custom range start, YYYY-MM-DD")
	endFlag := fs.String("end", "", "custom range end, YYYY-MM-DD")
	outFlag := fs.String("out", "", "output file")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var start, end *time.Time
	if *startFlag != "" {
		t, err := s.parseDate("start", *startFlag)
		if err != nil {
			return err
		}
		start = &t
	}
	if *endFlag != "" {
		t, err := s.parseDate("end", *endFlag)
		if err != nil {
			return err
		}
		end = &t
	}

	now := s.now().In(s.loc)
	period, err := report.ResolvePeriod(preset, now, start, end)
	if err != nil {
		return err
	}

	rep, err := report.Build(s.expenses.Expenses(), period, now)
	if err != nil {
		return err
	}

	data, err := s.renderer.Render(rep)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	path := *outFlag
	if path == "" {
		path = filepath.Join(s.exportDir, rep.Filename())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	s.printf("%s: %d expenses, total %s\nSaved to %s\n", rep.Title, len(rep.Rows), domain.FormatINR(rep.Total), path)
	return nil
}

// resolveID accepts a full UUID or a unique prefix of one in the local list.
func (s *Shell) resolveID(ref string) (uuid.UUID, error) {
	ref = strings.ToLower(ref)
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}

	var matches []uuid.UUID
	for _, e := range s.expenses.Expenses() {
		if strings.HasPrefix(e.ID.String(), ref) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("no expense with id %q", ref)
	case 1:
		return matches[0], nil
	}
	return uuid.Nil, fmt.Errorf("id %q is ambiguous, %d expenses match", ref, len(matches))
}

func (s *Shell) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (s *Shell) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate reads a calendar date. Dates are stored as UTC midnight.
func (s *Shell) parseDate(field, v string) (time.Time, error) {
	t, err := time.Parse(inputDateLayout, v)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be YYYY-MM-DD")
	}
	return t, nil
}

func parseAmount(v string) (decimal.Decimal, error) {
	a, err := domain.ParseAmount(v)
	if err != nil {
		return decimal.Zero, domain.NewValidationError("amount", "must be a number")
	}
	return a, nil
}

func parseCategory(v string) (domain.Category, error) {
	c, ok := domain.ParseCategory(v)
	if !ok {
		return "", domain.NewValidationError("category", "unknown category, see 'categories'")
	}
	return c, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:shortIDLength]
}
