package convert

// SizeRecord holds the on-disk byte sizes of one converted file.
type SizeRecord struct {
	OriginalBytes int64
	NewBytes      int64
}

// Saved returns the byte difference between the original and the output.
// Negative when the output grew.
func (r SizeRecord) Saved() int64 {
	return r.OriginalBytes - r.NewBytes
}

// SavedMB returns the saved bytes expressed in mebibytes.
func (r SizeRecord) SavedMB() float64 {
	return float64(r.Saved()) / (1024 * 1024)
}

// PercentSaved returns the size reduction as a percentage of the original.
// A zero-byte original reports 0 rather than dividing by zero.
func (r SizeRecord) PercentSaved() float64 {
	if r.OriginalBytes == 0 {
		return 0
	}
	return float64(r.Saved()) / float64(r.OriginalBytes) * 100
}

// BatchTotals accumulates SizeRecords across a run. The zero value is
// ready to use.
type BatchTotals struct {
	Files         int
	OriginalBytes int64
	NewBytes      int64
}

// Add folds one record into the totals and returns the new value.
func (t BatchTotals) Add(r SizeRecord) BatchTotals {
	t.Files++
	t.OriginalBytes += r.OriginalBytes
	t.NewBytes += r.NewBytes
	return t
}

// Saved returns the aggregate byte difference across the batch.
func (t BatchTotals) Saved() int64 {
	return t.OriginalBytes - t.NewBytes
}

// SavedMB returns the aggregate saved bytes expressed in mebibytes.
func (t BatchTotals) SavedMB() float64 {
	return float64(t.Saved()) / (1024 * 1024)
}

// PercentSaved returns the aggregate size reduction as a percentage,
// guarded against an empty batch.
func (t BatchTotals) PercentSaved() float64 {
	if t.OriginalBytes == 0 {
		return 0
	}
	return float64(t.Saved()) / float64(t.OriginalBytes) * 100
}
