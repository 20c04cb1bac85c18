package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otplabs/onetough/internal/pieceset"
	"github.com/otplabs/onetough/internal/puzzle"
)

var (
	solveSet  string
	solveCols int
	solveRows int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [piece codes...]",
		Short: "Solve a board and print every solution",
		Long: `Solve fills a columns×rows board with the given pieces and prints each
complete arrangement. Pieces come from a named catalog set or from codes
on the command line.

Examples:
  onetough solve --set one-tough-puzzle --cols 3 --rows 3
  onetough solve --cols 2 --rows 1 DCCD HSSC`,
		RunE: runSolveCmd,
	}

	solveCmd.Flags().StringVarP(&solveSet, "set", "s", "", "Catalog set to solve (see 'onetough sets')")
	solveCmd.Flags().IntVarP(&solveCols, "cols", "c", 3, "Board columns")
	solveCmd.Flags().IntVarP(&solveRows, "rows", "r", 3, "Board rows")

	setsCmd := &cobra.Command{
		Use:   "sets",
		Short: "List the built-in piece-set catalog",
		RunE:  runSetsCmd,
	}

	rootCmd.AddCommand(solveCmd, setsCmd)
}

func runSolveCmd(cmd *cobra.Command, args []string) error {
	codes := args
	switch {
	case solveSet != "" && len(args) > 0:
		return fmt.Errorf("give either --set or piece codes, not both")
	case solveSet != "":
		set, ok := pieceset.Get(solveSet)
		if !ok {
			return fmt.Errorf("unknown set %q", solveSet)
		}
		codes = set.Pieces
	case len(args) == 0:
		return fmt.Errorf("no pieces given")
	}

	pieces := make([]*puzzle.Piece, 0, len(codes))
	for _, code := range codes {
		p, err := pieceset.ParseCode(code)
		if err != nil {
			return err
		}
		pieces = append(pieces, p)
	}

	fmt.Printf("Solving %dx%d with %d pieces:\n", solveCols, solveRows, len(pieces))
	for _, p := range pieces {
		fmt.Printf("  %s\n", p)
	}

	solutions, err := puzzle.Solutions(solveCols, solveRows, pieces)
	if err != nil {
		return err
	}
	if len(solutions) == 0 {
		fmt.Println("No solutions.")
		return nil
	}
	for i, b := range solutions {
		fmt.Printf("\nSolution %d of %d:\n%s\n", i+1, len(solutions), b)
	}
	return nil
}

func runSetsCmd(cmd *cobra.Command, args []string) error {
	for _, set := range pieceset.Sets() {
		fmt.Printf("%s (%d pieces)\n", set.Name, len(set.Pieces))
		for _, code := range set.Pieces {
			p, err := pieceset.ParseCode(code)
			if err != nil {
				return err
			}
			fmt.Printf("  %-6s %s\n", code, p)
		}
	}
	return nil
}
