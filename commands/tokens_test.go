package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	goldenTestSuite{
		"legacy":   {Line: `tokens echo "a  b" c`},
		"posix":    {Line: `tokens -p echo "a  b" c`},
		"unclosed": {Line: `tokens echo "abc`},
		"empty":    {Line: "tokens"},
	}.Run(t, Tokens)
}

func TestTokensPosixError(t *testing.T) {
	env, _, stderr := testEnv(`tokens -p echo "abc`)

	code := Tokens(env)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "posix:")
}
