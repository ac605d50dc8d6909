package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	table := map[string]string{
		"0000": "halt",
		"0ABC": "halt",
		"1000": "no-op",
		"1200": "R[2] <- 0000",
		"1203": "R[2] <- R[3]",
		"1230": "R[2] <- R[3]",
		"1234": "R[2] <- R[3] + R[4]",
		"2200": "R[2] <- 0000",
		"2203": "R[2] <- -R[3]",
		"2230": "R[2] <- R[3]",
		"2234": "R[2] <- R[3] - R[4]",
		"3034": "no-op",
		"3204": "R[2] <- 0000",
		"3230": "R[2] <- 0000",
		"3344": "R[3] <- R[4]",
		"3333": "no-op",
		"3234": "R[2] <- R[3] & R[4]",
		"4200": "R[2] <- 0000",
		"4203": "R[2] <- R[3]",
		"4230": "R[2] <- R[3]",
		"4234": "R[2] <- R[3] ^ R[4]",
		"5034": "no-op",
		"5203": "R[2] <- 0000",
		"5110": "no-op",
		"5230": "R[2] <- R[3]",
		"5234": "R[2] <- R[3] << R[4]",
		"6234": "R[2] <- R[3] >> R[4]",
		"6220": "no-op",
		"7012": "no-op",
		"7A42": "R[A] <- 0042",
		"82FF": "read R[2]",
		"80FF": "read R[0]",
		"8012": "no-op",
		"8212": "R[2] <- M[12]",
		"92FF": "write R[2]",
		"9212": "M[12] <- R[2]",
		"A012": "no-op",
		"A212": "R[2] <- M[R[2]]",
		"B213": "M[R[3]] <- R[2]",
		"C012": "goto 12",
		"C212": "if (R[2] == 0) goto 12",
		"D012": "no-op",
		"D212": "if (R[2] > 0) goto 12",
		"E200": "goto R[2]",
		"F012": "goto 12",
		"F212": "R[2] <- PC; goto 12",
	}

	for code, comment := range table {
		t.Run(code, func(t *testing.T) {
			ins, err := NewInstruction(code)
			assert.NoError(t, err)
			assert.Equal(t, comment, Describe(ins))
		})
	}
}
