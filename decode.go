package fusion

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// DecodeDirectory reads a directory back from the persistence text format.
//
// It is a total function: it never fails. The stream is parsed line by line
// in the exact order EncodeDirectory writes it, and on the first missing or
// malformed line parsing stops and whatever was completely parsed so far is
// returned. A corrupted tail costs the last user, the last account, or the
// last holdings, depending on where the damage sits; it never costs the
// whole file. Counts beyond the capacity bounds are clamped.
func DecodeDirectory(r io.Reader) *Directory {
	d := NewDirectory()
	sc := bufio.NewScanner(r)
	next := func() (string, bool) {
		if sc.Scan() {
			return strings.TrimSuffix(sc.Text(), "\r"), true
		}
		return "", false
	}

	line, ok := next()
	if !ok {
		return d
	}
	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count < 0 {
		return d
	}
	count = min(count, MaxUsers)

	for i := 0; i < count; i++ {
		line, ok := next()
		if !ok {
			return d
		}
		f := strings.Fields(line)
		if len(f) < 5 {
			return d
		}
		ac, err1 := strconv.Atoi(f[2])
		stc, err2 := strconv.Atoi(f[3])
		sic, err3 := strconv.Atoi(f[4])
		if err1 != nil || err2 != nil || err3 != nil || ac < 0 || stc < 0 || sic < 0 {
			return d
		}
		u := newUser(f[0], f[1])
		ac = min(ac, MaxAccounts)
		stc = min(stc, MaxStockHoldings)
		sic = min(sic, MaxSIPHoldings)

		// A broken account header drops the user being read; a short
		// transaction list only shortens that account's log.
		for a := 0; a < ac; a++ {
			line, ok := next()
			if !ok {
				return d
			}
			f := strings.Fields(line)
			if len(f) < 5 {
				return d
			}
			number, err1 := strconv.Atoi(f[1])
			pin, err2 := strconv.Atoi(f[2])
			balance, err3 := strconv.ParseFloat(f[3], 64)
			tcount, err4 := strconv.Atoi(f[4])
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil || tcount < 0 {
				return d
			}
			acc := &BankAccount{Bank: f[0], Number: number, pin: pin, balance: balance}
			for t := 0; t < min(tcount, MaxTransactions); t++ {
				line, ok := next()
				if !ok {
					break
				}
				acc.log.Append(line)
			}
			u.accounts = append(u.accounts, acc)
		}

		// Short or malformed holding lines shorten the user's collections
		// but keep the user.
		for s := 0; s < stc; s++ {
			line, ok := next()
			if !ok {
				break
			}
			f := strings.Fields(line)
			if len(f) < 2 {
				break
			}
			qty, err := strconv.Atoi(f[1])
			if err != nil {
				break
			}
			u.stocks = append(u.stocks, StockHolding{Symbol: f[0], Quantity: qty})
		}
		for s := 0; s < sic; s++ {
			line, ok := next()
			if !ok {
				break
			}
			f := strings.Fields(line)
			if len(f) < 3 {
				break
			}
			amount, err1 := strconv.ParseFloat(f[1], 64)
			scheme, err2 := strconv.Atoi(f[2])
			if err1 != nil || err2 != nil {
				break
			}
			u.sips = append(u.sips, SIPHolding{Name: f[0], Invested: amount, Scheme: scheme})
		}

		d.users = append(d.users, u)
	}
	return d
}
