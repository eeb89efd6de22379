// Package ids generates the human-readable external identifiers used in
// every API path, e.g. TM-MDQ3ZK1P-X4B2Q. They are the only key callers
// ever see; the sqlite row id stays internal.
package ids

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const randLen = 5

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns PREFIX-<base36 millis>-<5 random base36 chars>, uppercased.
// Uniqueness is not enforced here: the timestamp+random entropy makes a
// collision astronomically unlikely, and the unique index on the column
// turns the residual case into a create failure rather than silent reuse.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var b strings.Builder
	for i := 0; i < randLen; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}

	return strings.ToUpper(prefix + "-" + ts + "-" + b.String())
}
