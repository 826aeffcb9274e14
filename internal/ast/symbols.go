package ast

// SymbolFlags classifies what kind of declaration a Symbol stands for.
type SymbolFlags int

const (
	FlagModule SymbolFlags = iota
	FlagEnum
	FlagEnumMember
	FlagFunction
	FlagStruct
	FlagStructMember
	FlagVariable
)

var symbolFlagNames = [...]string{
	"Module", "Enum", "EnumMember", "Function", "Struct", "StructMember", "Variable",
}

func (f SymbolFlags) String() string {
	if int(f) >= 0 && int(f) < len(symbolFlagNames) {
		return symbolFlagNames[f]
	}
	return "Unknown"
}

// Symbol is the metadata the binder attaches to every declaration, and
// that every reference is resolved to.
type Symbol struct {
	SourceFileName string
	Name           string
	Flags          SymbolFlags
	// Members holds nested names: an import's Module symbol exposes the
	// resolved file's Exports table here; a Struct symbol exposes its
	// fields; an Enum symbol exposes its variants.
	Members SymbolTable
	// Decl is the declaration node (or, for EnumMember/StructMember, the
	// member node) this symbol was built from.
	Decl Node
}

// SymbolTable maps a name to its Symbol. Names are unique within a table.
type SymbolTable map[string]*Symbol

// NewSymbolTable returns an empty, ready-to-use SymbolTable.
func NewSymbolTable() SymbolTable {
	return make(SymbolTable)
}

// scope is embedded by the three scope-bearing node kinds (SourceFile,
// FuncDeclaration, StatementBlock). Locals and NextScope are populated by
// the binder's Phase 1 walk.
type scope struct {
	locals    SymbolTable
	nextScope Node
}

func (s *scope) Locals() SymbolTable     { return s.locals }
func (s *scope) NextScope() Node         { return s.nextScope }
func (s *scope) setLocals(t SymbolTable) { s.locals = t }
func (s *scope) setNextScope(n Node)     { s.nextScope = n }

// ScopeNode is implemented by every scope-bearing AST node.
type ScopeNode interface {
	Node
	Locals() SymbolTable
	NextScope() Node
	setLocals(SymbolTable)
	setNextScope(Node)
}

// InitScope gives n an empty Locals table; used by the binder's Phase 1.
func InitScope(n ScopeNode) {
	n.setLocals(NewSymbolTable())
}

// SetNextScope records n's enclosing scope node; used by the binder's
// Phase 1.
func SetNextScope(n ScopeNode, enclosing Node) {
	n.setNextScope(enclosing)
}
