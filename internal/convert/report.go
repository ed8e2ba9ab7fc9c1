package convert

import (
	"fmt"
	"io"
)

// Reporter prints the user-facing conversion report. Accumulation lives in
// BatchTotals; this type only formats.
type Reporter interface {
	// Skipped reports a file excluded for an unsupported extension.
	Skipped(path string)
	// FileDone reports one converted file and its size savings.
	FileDone(src, dst string, rec SizeRecord)
	// Summary reports the whole batch. With zero processed files it prints
	// a single notice instead.
	Summary(totals BatchTotals)
}

// reporter implements the Reporter interface.
type reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) Reporter {
	return &reporter{w: w}
}

// Skipped reports a file excluded for an unsupported extension.
func (r *reporter) Skipped(path string) {
	fmt.Fprintf(r.w, "Skipping %s: unsupported extension\n", path)
}

// FileDone reports one converted file and its size savings.
func (r *reporter) FileDone(src, dst string, rec SizeRecord) {
	fmt.Fprintf(r.w, "Processed %s -> %s\n", src, dst)
	fmt.Fprintf(r.w, " → Saved %d bytes (%.2f MB), %.1f%% smaller\n",
		rec.Saved(), rec.SavedMB(), rec.PercentSaved())
}

// Summary reports the whole batch.
func (r *reporter) Summary(totals BatchTotals) {
	if totals.Files == 0 {
		fmt.Fprintln(r.w, "No images were processed.")
		return
	}
	fmt.Fprintln(r.w, "\n=== Overall Savings ===")
	fmt.Fprintf(r.w, "Processed %d images\n", totals.Files)
	fmt.Fprintf(r.w, "Total saved: %d bytes (%.2f MB), %.1f%% reduction overall\n",
		totals.Saved(), totals.SavedMB(), totals.PercentSaved())
}
