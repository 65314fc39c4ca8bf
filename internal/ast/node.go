package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (b *Binding) NodePos() Position    { return b.Pos }
func (b *Binding) NodeEndPos() Position { return b.EndPos }
func (*Binding) NodeType() NodeType     { return BINDING }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (s *BindStmt) NodePos() Position    { return s.Pos }
func (s *BindStmt) NodeEndPos() Position { return s.EndPos }
func (*BindStmt) NodeType() NodeType     { return BIND_STMT }

func (s *LetStmt) NodePos() Position    { return s.Pos }
func (s *LetStmt) NodeEndPos() Position { return s.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (s *PlainStmt) NodePos() Position    { return s.Pos }
func (s *PlainStmt) NodeEndPos() Position { return s.EndPos }
func (*PlainStmt) NodeType() NodeType     { return PLAIN_STMT }

func (s *TailStmt) NodePos() Position    { return s.Pos }
func (s *TailStmt) NodeEndPos() Position { return s.EndPos }
func (*TailStmt) NodeType() NodeType     { return TAIL_STMT }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (l *Literal) NodePos() Position    { return l.Pos }
func (l *Literal) NodeEndPos() Position { return l.EndPos }
func (*Literal) NodeType() NodeType     { return LITERAL }

func (q *QualifiedIdent) NodePos() Position    { return q.Pos }
func (q *QualifiedIdent) NodeEndPos() Position { return q.EndPos }
func (*QualifiedIdent) NodeType() NodeType     { return QUALIFIED_IDENT }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (u *UnaryExpr) NodePos() Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() Position { return u.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (l *ListExpr) NodePos() Position    { return l.Pos }
func (l *ListExpr) NodeEndPos() Position { return l.EndPos }
func (*ListExpr) NodeType() NodeType     { return LIST_EXPR }

func (t *TupleExpr) NodePos() Position    { return t.Pos }
func (t *TupleExpr) NodeEndPos() Position { return t.EndPos }
func (*TupleExpr) NodeType() NodeType     { return TUPLE_EXPR }

func (f *FuncLit) NodePos() Position    { return f.Pos }
func (f *FuncLit) NodeEndPos() Position { return f.EndPos }
func (*FuncLit) NodeType() NodeType     { return FUNC_LIT }

func (i *IfExpr) NodePos() Position    { return i.Pos }
func (i *IfExpr) NodeEndPos() Position { return i.EndPos }
func (*IfExpr) NodeType() NodeType     { return IF_EXPR }

func (l *LetExpr) NodePos() Position    { return l.Pos }
func (l *LetExpr) NodeEndPos() Position { return l.EndPos }
func (*LetExpr) NodeType() NodeType     { return LET_EXPR }

func (d *DoExpr) NodePos() Position    { return d.Pos }
func (d *DoExpr) NodeEndPos() Position { return d.EndPos }
func (*DoExpr) NodeType() NodeType     { return DO_EXPR }

func (p *PipeExpr) NodePos() Position    { return p.Pos }
func (p *PipeExpr) NodeEndPos() Position { return p.EndPos }
func (*PipeExpr) NodeType() NodeType     { return PIPE_EXPR }

func (s *Slot) NodePos() Position    { return s.Pos }
func (s *Slot) NodeEndPos() Position { return s.EndPos }
func (*Slot) NodeType() NodeType     { return SLOT }

func (p *NamePattern) NodePos() Position    { return p.Pos }
func (p *NamePattern) NodeEndPos() Position { return p.EndPos }
func (*NamePattern) NodeType() NodeType     { return NAME_PATTERN }

func (p *WildcardPattern) NodePos() Position    { return p.Pos }
func (p *WildcardPattern) NodeEndPos() Position { return p.EndPos }
func (*WildcardPattern) NodeType() NodeType     { return WILDCARD_PATTERN }

func (p *TuplePattern) NodePos() Position    { return p.Pos }
func (p *TuplePattern) NodeEndPos() Position { return p.EndPos }
func (*TuplePattern) NodeType() NodeType     { return TUPLE_PATTERN }

func (p *ListPattern) NodePos() Position    { return p.Pos }
func (p *ListPattern) NodeEndPos() Position { return p.EndPos }
func (*ListPattern) NodeType() NodeType     { return LIST_PATTERN }

func (p *LiteralPattern) NodePos() Position    { return p.Pos }
func (p *LiteralPattern) NodeEndPos() Position { return p.EndPos }
func (*LiteralPattern) NodeType() NodeType     { return LITERAL_PATTERN }

func (p *SlotPattern) NodePos() Position    { return p.Pos }
func (p *SlotPattern) NodeEndPos() Position { return p.EndPos }
func (*SlotPattern) NodeType() NodeType     { return SLOT_PATTERN }
