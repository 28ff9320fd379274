package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vango-dev/uniqid/internal/errors"
	"github.com/vango-dev/uniqid/pkg/uid"
)

func genCmd() *cobra.Command {
	var (
		count  int
		prefix string
		start  uint64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate identifiers",
		Long: `Generate identifiers from a fresh generator.

The generator starts at --start and increments before formatting, so the
first identifier is --start + 1.

Examples:
  uniqid gen                       # id-1
  uniqid gen -n 3 --prefix field-  # field-1 field-2 field-3
  uniqid gen -n 2 --start 41       # id-42 id-43
  uniqid gen -n 2 --json           # ["id-1","id-2"]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New("E300").
					WithDetail("--count must be at least 1, got " + strconv.Itoa(count))
			}

			gen := uid.New(uid.WithPrefix(prefix), uid.WithStart(start), uid.WithName("cli"))
			ids, err := generate(gen, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(ids)
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers to generate")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", uid.DefaultPrefix, "Identifier prefix")
	cmd.Flags().Uint64Var(&start, "start", 0, "Initial counter value")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON array")

	return cmd
}

// generate issues count identifiers, converting exhaustion into an error.
func generate(gen *uid.Generator, count int) (ids []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == uid.ErrExhausted {
				err = errors.New("E201").
					WithDetail(fmt.Sprintf("Generated %d of %d identifiers before the counter was exhausted", len(ids), count)).
					WithSuggestion("Use a smaller --start")
				return
			}
			panic(r)
		}
	}()

	ids = make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, gen.Next())
	}
	return ids, nil
}
