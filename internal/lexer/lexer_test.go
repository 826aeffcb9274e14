package lexer_test

import (
	"testing"

	"github.com/smack0007/bigc/internal/lexer"
	"github.com/smack0007/bigc/internal/token"
)

func TestScanTotalness(t *testing.T) {
	inputs := []string{"", "   \n\t", "func main(): int32 { return 0; }"}
	for _, in := range inputs {
		tokens := lexer.Scan(in)
		if len(tokens) == 0 {
			t.Fatalf("Scan(%q) returned no tokens", in)
		}
		last := tokens[len(tokens)-1]
		if last.Type != token.EOF {
			t.Fatalf("Scan(%q) last token = %v, want EOF", in, last)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			if tok.Type == token.EOF {
				t.Fatalf("Scan(%q) contains EOF before the end", in)
			}
		}
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Type
	}{
		{"== != <= >= += -= *= /=", []token.Type{
			token.EqEq, token.NotEq, token.LessEq, token.GreaterEq,
			token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign, token.EOF,
		}},
		{"&& || & |", []token.Type{token.AmpAmp, token.BarBar, token.Ampersand, token.Bar, token.EOF}},
		{"< > = !", []token.Type{token.Less, token.Greater, token.Assign, token.Bang, token.EOF}},
	}

	for _, tt := range tests {
		tokens := lexer.Scan(tt.input)
		if len(tokens) != len(tt.want) {
			t.Fatalf("Scan(%q) = %v, want %d tokens", tt.input, tokens, len(tt.want))
		}
		for i, want := range tt.want {
			if tokens[i].Type != want {
				t.Errorf("Scan(%q)[%d].Type = %s, want %s", tt.input, i, tokens[i].Type, want)
			}
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "import export func struct enum var if else while for of return defer true false null"
	want := []token.Type{
		token.Import, token.Export, token.Func, token.Struct, token.Enum, token.Var,
		token.If, token.Else, token.While, token.For, token.Of, token.Return,
		token.Defer, token.True, token.False, token.Null, token.EOF,
	}
	tokens := lexer.Scan(input)
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token[%d] = %s, want %s", i, tokens[i].Type, w)
		}
		if tokens[i].Text != "" {
			t.Errorf("keyword token[%d] kept Text %q, want discarded", i, tokens[i].Text)
		}
	}
}

func TestIdentifiersAndNumbers(t *testing.T) {
	tokens := lexer.Scan("foo_1 Δelta 123 3.14 .")
	wantText := []string{"foo_1", "Δelta", "123", "3.14"}
	wantType := []token.Type{token.Identifier, token.Identifier, token.Int, token.Float}
	for i, w := range wantText {
		if tokens[i].Text != w {
			t.Errorf("token[%d].Text = %q, want %q", i, tokens[i].Text, w)
		}
		if tokens[i].Type != wantType[i] {
			t.Errorf("token[%d].Type = %s, want %s", i, tokens[i].Type, wantType[i])
		}
	}
	if tokens[len(wantText)].Type != token.Dot {
		t.Errorf("expected trailing Dot token")
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	tokens := lexer.Scan(`"hi" 'a' "with \" quote"`)
	if tokens[0].Type != token.String || tokens[0].Text != "hi" {
		t.Errorf("token[0] = %+v, want String(hi)", tokens[0])
	}
	if tokens[1].Type != token.Char || tokens[1].Text != "a" {
		t.Errorf("token[1] = %+v, want Char(a)", tokens[1])
	}
	if tokens[2].Type != token.String || tokens[2].Text != `with \" quote` {
		t.Errorf("token[2] = %+v, want raw escaped body preserved", tokens[2])
	}
}

func TestComments(t *testing.T) {
	tokens := lexer.Scan("1 // line comment\n2 /* block\ncomment */ 3")
	wantInts := []string{"1", "2", "3"}
	for i, w := range wantInts {
		if tokens[i].Type != token.Int || tokens[i].Text != w {
			t.Errorf("token[%d] = %+v, want Int(%s)", i, tokens[i], w)
		}
	}
}

func TestNegativeNumberMerge(t *testing.T) {
	tokens := lexer.Scan("-5")
	if tokens[0].Type != token.Int || tokens[0].Text != "-5" {
		t.Fatalf("leading -5 = %+v, want a single negative Int literal", tokens[0])
	}

	tokens = lexer.Scan("3 - 5")
	if tokens[1].Type != token.Minus {
		t.Fatalf("space-separated minus should stay an operator, got %+v", tokens[1])
	}
	if tokens[2].Type != token.Int || tokens[2].Text != "5" {
		t.Fatalf("token after spaced minus = %+v, want Int(5)", tokens[2])
	}
}

func TestUnknownCharacterSilentlyDropped(t *testing.T) {
	tokens := lexer.Scan("1 ` 2")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3 (1, 2, EOF); unknown char should be dropped", len(tokens))
	}
}

func TestPositions(t *testing.T) {
	tokens := lexer.Scan("ab\ncd")
	if tokens[0].Pos != (token.Position{Line: 1, Column: 1}) {
		t.Errorf("token[0].Pos = %v", tokens[0].Pos)
	}
	if tokens[1].Pos != (token.Position{Line: 2, Column: 1}) {
		t.Errorf("token[1].Pos = %v", tokens[1].Pos)
	}
}
