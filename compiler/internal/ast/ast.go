package ast

/*** NODES ***/

type Node interface{ node() }

// TranslationUnit is one parsed source file: an ordered sequence of
// global definitions and function definitions.
type TranslationUnit struct {
	Items []GlobalItem
}

func (*TranslationUnit) node() {}

type GlobalItem interface {
	Node
	globalItem()
}

/*** DEFINITIONS ***/

// Definition is the closed variant of declaration forms. The same forms
// appear at global scope and inside blocks.
type Definition interface {
	Node
	globalItem()
	blockItem()
	defn()
	DefName() string
}

type ConstVarDef struct {
	Name string
	Init Expr
}

type VarDef struct {
	Name string
	Init Expr // nil when declared without initializer
}

type ConstArrayDef struct {
	Name string
	Lens []Expr // one per declared dimension
	Init *InitList
}

type ArrayDef struct {
	Name string
	Lens []Expr
	Init *InitList // nil when declared without initializer
}

func (*ConstVarDef) node()         {}
func (*ConstVarDef) globalItem()   {}
func (*ConstVarDef) blockItem()    {}
func (*ConstVarDef) defn()         {}
func (d *ConstVarDef) DefName() string { return d.Name }

func (*VarDef) node()         {}
func (*VarDef) globalItem()   {}
func (*VarDef) blockItem()    {}
func (*VarDef) defn()         {}
func (d *VarDef) DefName() string { return d.Name }

func (*ConstArrayDef) node()         {}
func (*ConstArrayDef) globalItem()   {}
func (*ConstArrayDef) blockItem()    {}
func (*ConstArrayDef) defn()         {}
func (d *ConstArrayDef) DefName() string { return d.Name }

func (*ArrayDef) node()         {}
func (*ArrayDef) globalItem()   {}
func (*ArrayDef) blockItem()    {}
func (*ArrayDef) defn()         {}
func (d *ArrayDef) DefName() string { return d.Name }

// InitItem is one element of a brace initializer: either a scalar
// expression (List nil) or a nested brace list.
type InitItem struct {
	Expr Expr
	List *InitList
}

type InitList struct {
	Items []InitItem
}

func (*InitList) node() {}

/*** FUNCTIONS ***/

type FuncDef struct {
	ReturnsVoid bool
	Name        string
	Params      []Param
	Body        *Block
}

func (*FuncDef) node()       {}
func (*FuncDef) globalItem() {}

// Param is a function parameter: a scalar int or a decayed array pointer.
type Param interface {
	Node
	param()
	ParamName() string
}

type IntParam struct {
	Name string
}

// PointerParam is an array parameter with its leading dimension erased;
// Dims holds the trailing dimension expressions.
type PointerParam struct {
	Name string
	Dims []Expr
}

func (*IntParam) node()             {}
func (*IntParam) param()            {}
func (p *IntParam) ParamName() string { return p.Name }

func (*PointerParam) node()             {}
func (*PointerParam) param()            {}
func (p *PointerParam) ParamName() string { return p.Name }

/*** BLOCKS & STATEMENTS ***/

// Block is an ordered sequence of definitions, nested blocks, and
// statements.
type Block struct {
	Items []BlockItem
}

func (*Block) node()      {}
func (*Block) blockItem() {}

type BlockItem interface {
	Node
	blockItem()
}

type Stmt interface {
	Node
	blockItem()
	stmt()
}

type ExprStmt struct {
	X Expr
}

type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block // nil when there is no else branch
}

type WhileStmt struct {
	Cond Expr
	Body *Block
}

type ReturnStmt struct {
	X Expr // nil for a bare return
}

type BreakStmt struct{}

type ContinueStmt struct{}

func (*ExprStmt) node()      {}
func (*ExprStmt) blockItem() {}
func (*ExprStmt) stmt()      {}

func (*IfStmt) node()      {}
func (*IfStmt) blockItem() {}
func (*IfStmt) stmt()      {}

func (*WhileStmt) node()      {}
func (*WhileStmt) blockItem() {}
func (*WhileStmt) stmt()      {}

func (*ReturnStmt) node()      {}
func (*ReturnStmt) blockItem() {}
func (*ReturnStmt) stmt()      {}

func (*BreakStmt) node()      {}
func (*BreakStmt) blockItem() {}
func (*BreakStmt) stmt()      {}

func (*ContinueStmt) node()      {}
func (*ContinueStmt) blockItem() {}
func (*ContinueStmt) stmt()      {}

/*** EXPRESSIONS ***/

type Expr interface {
	Node
	expr()
}

type IntLit struct {
	Value int
}

// LVal is a name with zero or more index expressions.
type LVal struct {
	Name    string
	Indices []Expr
}

type UnaryExpr struct {
	Op string // "+", "-", "!"
	X  Expr
}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

type CallExpr struct {
	Callee string
	Args   []Expr
}

// AssignExpr is `lval = value`. Assignment is an expression so that it
// fits the closed statement set; its value is the assigned int.
type AssignExpr struct {
	Target *LVal
	Value  Expr
}

func (*IntLit) node() {}
func (*IntLit) expr() {}

func (*LVal) node() {}
func (*LVal) expr() {}

func (*UnaryExpr) node() {}
func (*UnaryExpr) expr() {}

func (*BinaryExpr) node() {}
func (*BinaryExpr) expr() {}

func (*CallExpr) node() {}
func (*CallExpr) expr() {}

func (*AssignExpr) node() {}
func (*AssignExpr) expr() {}
