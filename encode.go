package fusion

import (
	"bufio"
	"fmt"
	"io"
)

// This file writes the directory in its line-oriented text format. The
// format is whitespace/newline delimited and human readable:
//
//	<userCount>
//	<username> <password> <accountCount> <stockCount> <sipCount>
//	  per account: <bankName> <accountNumber> <pin> <balance> <transactionCount>
//	  then one free-text line per transaction,
//	  then per stock holding: <symbol> <quantity>
//	  then per sip holding: <sipName> <investedAmount> <schemeIndex>
//
// No field except the transaction description may contain whitespace; that
// is enforced by input capture (catalogs, token-scanned names), not by the
// codec. Money is written with 2 decimals.

// EncodeDirectory writes d to w in the persistence text format.
func EncodeDirectory(w io.Writer, d *Directory) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", d.Len())
	for _, u := range d.users {
		fmt.Fprintf(bw, "%s %s %d %d %d\n", u.name, u.password, len(u.accounts), len(u.stocks), len(u.sips))
		for _, a := range u.accounts {
			fmt.Fprintf(bw, "%s %d %d %.2f %d\n", a.Bank, a.Number, a.pin, a.balance, a.log.Len())
			for _, txt := range a.log.Entries() {
				fmt.Fprintln(bw, txt)
			}
		}
		for _, s := range u.stocks {
			fmt.Fprintf(bw, "%s %d\n", s.Symbol, s.Quantity)
		}
		for _, s := range u.sips {
			fmt.Fprintf(bw, "%s %.2f %d\n", s.Name, s.Invested, s.Scheme)
		}
	}
	return bw.Flush()
}
