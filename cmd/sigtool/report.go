package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func printResults(w io.Writer, results []Result, withPoints bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Step\tOp\tSignal\tResult\n"); err != nil {
		return fmt.Errorf("sigtool: write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t--\t------\t------\n"); err != nil {
		return fmt.Errorf("sigtool: write header: %w", err)
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Index, r.Op, r.Signal, r.Summary); err != nil {
			return fmt.Errorf("sigtool: write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("sigtool: flush output: %w", err)
	}

	if !withPoints {
		return nil
	}
	for _, r := range results {
		if len(r.Points) == 0 {
			continue
		}
		if err := printPoints(w, r); err != nil {
			return err
		}
	}
	return nil
}

func printPoints(w io.Writer, r Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "\n# step %d %s %s\nx\ty\t\n", r.Index, r.Op, r.Signal); err != nil {
		return fmt.Errorf("sigtool: write points: %w", err)
	}
	for _, p := range r.Points {
		if _, err := fmt.Fprintf(tw, "%g\t%.6g\t\n", p.X, p.Y); err != nil {
			return fmt.Errorf("sigtool: write points: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("sigtool: flush output: %w", err)
	}
	return nil
}
