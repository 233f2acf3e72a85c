// Package shell is a line-oriented front end for the menu: listing, adding
// and removing dishes, filtering by course and average prices.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Lixing-Zhang/chefs-menu/internal/menu"
	"github.com/Lixing-Zhang/chefs-menu/internal/models"
	"github.com/Lixing-Zhang/chefs-menu/internal/service"
)

const (
	prompt    = "menu> "
	emptyMenu = `No dishes added yet. Use "add" to add some dishes!`
	helpText  = `Commands:
  list                 show every dish
  add                  add a dish
  remove <name>        remove a dish (asks for confirmation)
  filter <course|All>  show dishes of one course
  averages             average price per course
  help                 show this help
  quit                 leave`
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// Shell reads commands from in and writes results to out.
type Shell struct {
	svc    *service.MenuService
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	// lines is fed by a reader goroutine so a prompt can be abandoned when
	// the context is cancelled. readErr is set before lines is closed.
	lines   chan string
	readErr error
}

// New creates a shell over the given menu service.
func New(svc *service.MenuService, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run processes commands until quit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.println("Chef's Menu. Type \"help\" for commands.")

	if s.lines == nil {
		s.lines = make(chan string)
		go s.readLines()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := s.ask(ctx, prompt)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.readErr
		}

		err := s.exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) exec(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
		return nil
	case "list", "ls":
		return s.list(ctx)
	case "add":
		return s.add(ctx)
	case "remove", "rm", "delete":
		return s.remove(ctx, arg)
	case "filter":
		return s.filter(ctx, arg)
	case "averages", "avg":
		return s.averages(ctx)
	case "help", "?":
		s.println(helpText)
		return nil
	case "quit", "exit", "q":
		return errQuit
	default:
		s.printf("Unknown command %q. Type \"help\" for commands.\n", cmd)
		return nil
	}
}

func (s *Shell) list(ctx context.Context) error {
	dishes, err := s.svc.ListDishes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dishes: %w", err)
	}

	s.printf("Total number of Dishes: %d\n", len(dishes))
	s.printDishes(dishes)
	return nil
}

func (s *Shell) add(ctx context.Context) error {
	var req models.DishRequest
	fields := []struct {
		label string
		dst   *string
	}{
		{"Dish Name: ", &req.Name},
		{"Description: ", &req.Description},
		{"Course (Starters/Mains/Desserts): ", &req.Category},
		{"Price: ", &req.Price},
	}

	for _, f := range fields {
		v, ok := s.ask(ctx, f.label)
		if !ok {
			return nil
		}
		*f.dst = v
	}

	dish, err := s.svc.AddDish(ctx, req)
	if err != nil {
		msg := service.UserMessage(err)
		if msg == "" {
			return err
		}
		s.logger.Debug("dish rejected", "name", req.Name, "error", err)
		s.println(msg)
		return nil
	}

	s.logger.Info("dish added", "name", dish.Name, "category", dish.Category)
	s.println(service.MsgDishAdded)
	return nil
}

func (s *Shell) remove(ctx context.Context, name string) error {
	if name == "" {
		v, ok := s.ask(ctx, "Dish Name: ")
		if !ok {
			return nil
		}
		name = strings.TrimSpace(v)
	}
	if name == "" {
		s.println("Dish name is required")
		return nil
	}

	if !s.confirm(ctx, fmt.Sprintf("Remove %q? [y/N] ", name)) {
		s.println("Cancelled")
		return nil
	}

	removed, err := s.svc.RemoveDish(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to remove dish: %w", err)
	}
	if !removed {
		s.println(service.MsgDishNotFound)
		return nil
	}

	s.logger.Info("dish removed", "name", name)
	s.printf("Removed %s\n", name)
	return nil
}

func (s *Shell) filter(ctx context.Context, category string) error {
	dishes, f, err := s.svc.FilterDishes(ctx, category)
	if errors.Is(err, service.ErrUnknownCategory) {
		s.println(service.MsgUnknownCategory)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to filter dishes: %w", err)
	}

	s.printf("%s: %d dish(es)\n", f, len(dishes))
	s.printDishes(dishes)
	return nil
}

func (s *Shell) averages(ctx context.Context) error {
	averages, err := s.svc.CategoryAverages(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute averages: %w", err)
	}

	s.println("Average price per course")
	for _, a := range averages {
		s.printf("  %s: %s\n", a.Category, menu.FormatPrice(a.Average))
	}
	return nil
}

func (s *Shell) printDishes(dishes []menu.DishRecord) {
	if len(dishes) == 0 {
		s.println(emptyMenu)
		return
	}
	for _, d := range dishes {
		s.printf("%s\n  %s\n  Course: %s\n  %s\n", d.Name, d.Description, d.Category, d.DisplayPrice())
	}
}

// confirm asks a yes/no question; anything but y or yes is a no.
func (s *Shell) confirm(ctx context.Context, question string) bool {
	answer, ok := s.ask(ctx, question)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// ask prints label and waits for the next line. It reports false at end of
// input or once ctx is done.
func (s *Shell) ask(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(s.out, label)

	if ctx.Err() != nil {
		return "", false
	}
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

func (s *Shell) readLines() {
	defer close(s.lines)
	for s.in.Scan() {
		s.lines <- s.in.Text()
	}
	s.readErr = s.in.Err()
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
