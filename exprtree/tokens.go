package exprtree

import (
	"github.com/edwingeng/deque"
	"strings"
)

const (
	AddOp      = "+"
	SubtractOp = "-"
	MultiplyOp = "*"
)

// IsOperator reports whether token is one of the binary operators.
func IsOperator(token string) bool {
	return token == AddOp || token == SubtractOp || token == MultiplyOp
}

// Tokenize splits expression on whitespace into a FIFO queue of tokens.
func Tokenize(expression string) deque.Deque {
	tokens := deque.NewDeque()
	for _, token := range strings.Fields(expression) {
		tokens.PushBack(token)
	}
	return tokens
}
