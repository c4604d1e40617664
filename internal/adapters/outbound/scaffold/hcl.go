package scaffold

import (
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// tokensForExpression creates raw tokens for a native HCL expression such as
// a type keyword or a function call, which hclwrite would otherwise quote.
func tokensForExpression(expr string) hclwrite.Tokens {
	return hclwrite.Tokens{
		&hclwrite.Token{Type: hclsyntax.TokenIdent, Bytes: []byte(expr)},
	}
}
