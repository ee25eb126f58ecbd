package fusion

// MaxTransactions is the capacity of an account's transaction log. When the
// log is full, appending evicts the oldest entry.
const MaxTransactions = 50

// maxEntryLen is the longest transaction description retained; longer
// descriptions are truncated, not rejected.
const maxEntryLen = 99

// TransactionLog is a bounded, append-only sequence of transaction
// descriptions, oldest first. It behaves as a FIFO ring: once
// MaxTransactions entries are held, each append discards the oldest one.
//
// The zero value is an empty log ready for use.
type TransactionLog struct {
	entries [MaxTransactions]string
	start   int // index of the oldest entry
	count   int
}

// Append records a description, truncated to maxEntryLen characters,
// evicting the oldest entry if the log is full.
func (l *TransactionLog) Append(desc string) {
	if len(desc) > maxEntryLen {
		desc = desc[:maxEntryLen]
	}
	if l.count == MaxTransactions {
		// Overwrite the oldest slot and advance the ring start.
		l.entries[l.start] = desc
		l.start = (l.start + 1) % MaxTransactions
		return
	}
	l.entries[(l.start+l.count)%MaxTransactions] = desc
	l.count++
}

// Len returns the number of retained entries.
func (l *TransactionLog) Len() int { return l.count }

// Entries returns the retained descriptions in chronological order, oldest
// first. The returned slice is a copy.
func (l *TransactionLog) Entries() []string {
	out := make([]string, 0, l.count)
	for i := 0; i < l.count; i++ {
		out = append(out, l.entries[(l.start+i)%MaxTransactions])
	}
	return out
}
