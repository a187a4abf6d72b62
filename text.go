package bitvec

import (
	"errors"
	"strconv"
	"strings"
)

// Parse builds a Bitset from whitespace-separated non-negative integers.
//
// Tokens that do not parse are skipped and reported as *TokenError values
// joined into the returned error; every valid token is still added. The
// returned Bitset is never nil, so callers may log the error and keep the
// result.
func Parse(s string, opts ...Option) (*Bitset, error) {
	fields := strings.Fields(s)
	members := make([]uint, 0, len(fields))

	var errs []error
	for pos, tok := range fields {
		v, err := strconv.ParseUint(tok, 10, strconv.IntSize)
		if err != nil {
			errs = append(errs, &TokenError{Pos: pos, Token: tok, Err: err})
			continue
		}
		members = append(members, uint(v))
	}

	b := New(opts...)
	b.AddMany(members)
	return b, errors.Join(errs...)
}

// previewLimit caps the members listed by String.
const previewLimit = 100

// String returns a preview such as "{1, 3, 5}". At most the first 100
// members are listed; a longer set ends in ", ...".
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.WriteByte('{')

	n := 0
	b.ForEach(func(v uint) bool {
		if n == previewLimit {
			sb.WriteString(", ...")
			return false
		}
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
		n++
		return true
	})

	sb.WriteByte('}')
	return sb.String()
}
