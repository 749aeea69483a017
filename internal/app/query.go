package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/alfred-hue/internal/format"
	"github.com/cristianoliveira/alfred-hue/internal/query"
)

// QueryClient interprets a raw launcher query.
type QueryClient interface {
	Interpret(ctx context.Context, raw string) []query.Item
}

// QueryInput represents query command inputs after flag parsing.
type QueryInput struct {
	Words  []string
	Format string
}

// QueryUseCase interprets a query and renders the result list.
type QueryUseCase struct {
	client QueryClient
	out    io.Writer
}

// NewQueryUseCase creates a new query use-case writing to out.
func NewQueryUseCase(client QueryClient, out io.Writer) *QueryUseCase {
	if client == nil {
		panic("NewQueryUseCase: client dependency cannot be nil")
	}
	return &QueryUseCase{client: client, out: out}
}

// Execute joins the words into the raw query and writes the interpreted items.
func (u *QueryUseCase) Execute(ctx context.Context, input QueryInput) error {
	raw := strings.Join(input.Words, " ")
	items := u.client.Interpret(ctx, raw)

	f := format.NewFormatter(format.FormatterType(input.Format))
	if err := f.FormatItems(items, u.out); err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}
