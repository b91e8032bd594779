package scene

// StartStructure opens a command of the given kind.
//
// id is the paragraph identity for KindParagraph: a paragraph with the same
// non-nil id among the children of the innermost container is re-entered
// instead of duplicated. index and role apply to KindLine: when the
// innermost structure is a paragraph that already has a line at index, that
// line is re-entered with the new role.
//
// Starting a line while the innermost structure is neither a paragraph nor
// a content panics with a *ContractError wrapping ErrNoContainer.
func (b *Builder) StartStructure(kind Kind, id ParagraphID, index int, role Role) {
	b.commands = append(b.commands, kind)

	var node Node
	reused := false
	switch kind {
	case KindContent:
		node = &Content{}
		b.checkpoints = append(b.checkpoints, b.curLine)

	case KindParagraph:
		if p := b.findParagraph(id); p != nil {
			node, reused = p, true
			break
		}
		node = newParagraph(id)
		if !b.opts.divLines {
			b.byParagraphs = append(b.byParagraphs, nil)
		}

	case KindLine:
		l, isNew := b.startLine(index, role)
		if !isNew {
			b.stack = append(b.stack, l)
			return
		}
		node = l

	case KindTable:
		node = &Table{}

	case KindShape:
		node = &Shape{}

	case KindTableRow:
		b.rowMax = append(b.rowMax, -1)

	case KindHidden, KindNoGeometry:
		b.suppress++
	}

	if node == nil {
		return
	}
	if parent := b.container(); parent != nil && !reused {
		appendChild(parent, node)
	}
	b.stack = append(b.stack, node)
}

// findParagraph returns the child paragraph of the innermost container
// with the given id.
func (b *Builder) findParagraph(id ParagraphID) *Paragraph {
	if id == nil {
		return nil
	}
	var children []Node
	switch p := b.container().(type) {
	case *Content:
		children = p.Children
	case *Table:
		children = p.Children
	case *Shape:
		children = p.Children
	case *Paragraph:
		children = p.Nested
	}
	for _, ch := range children {
		if para, ok := ch.(*Paragraph); ok && para.ID == id {
			return para
		}
	}
	return nil
}

// startLine returns the line to open and whether it was created.
func (b *Builder) startLine(index int, role Role) (*Line, bool) {
	switch top := b.top().(type) {
	case *Paragraph:
		if index >= 0 && index < len(top.Lines) {
			l := top.Lines[index]
			l.Role = role
			b.rewindLine(top, index, role)
			return l, false
		}
	case *Content:
	default:
		b.commands = b.commands[:len(b.commands)-1]
		contractPanic("StartStructure", KindLine, ErrNoContainer)
	}

	l := &Line{Role: role}
	if b.opts.divLines {
		b.curLine++
		for len(b.byLines) <= b.curLine {
			b.byLines = append(b.byLines, nil)
		}
		b.byLines[b.curLine] = append(b.byLines[b.curLine], l)
		if n := len(b.rowMax); n > 0 && b.rowMax[n-1] < b.curLine {
			b.rowMax[n-1] = b.curLine
		}
	} else {
		if len(b.byParagraphs) == 0 {
			b.byParagraphs = append(b.byParagraphs, nil)
		}
		last := len(b.byParagraphs) - 1
		b.byParagraphs[last] = append(b.byParagraphs[last], l)
	}
	return l, true
}

// rewindLine prepares a re-entered line for recording role again. The
// role's list starts empty so that recording the same paragraph twice
// leaves a single copy of everything.
func (b *Builder) rewindLine(p *Paragraph, index int, role Role) {
	if role == RoleContent {
		p.rewindContent(index)
		return
	}
	*p.Lines[index].list(role) = nil
}

// EndStructure closes the innermost command.
//
// Ending the outermost content promotes it to the result: the accumulated
// line indices and drawings are attached, decorations are collected, and
// the accumulators are reset for the next region.
//
// Calling EndStructure with nothing open panics with a *ContractError
// wrapping ErrEmptyStack.
func (b *Builder) EndStructure() {
	kind, ok := b.topCommand()
	if !ok {
		contractPanic("EndStructure", 0, ErrEmptyStack)
	}
	b.commands = b.commands[:len(b.commands)-1]

	switch kind {
	case KindContent:
		node := b.pop()
		if c, ok := node.(*Content); ok && len(b.stack) == 0 {
			b.promote(c)
		}
		if n := len(b.checkpoints); n > 0 {
			b.curLine = b.checkpoints[n-1]
			b.checkpoints = b.checkpoints[:n-1]
		}

	case KindParagraph:
		if p, ok := b.pop().(*Paragraph); ok {
			p.checkWord()
		}

	case KindLine, KindTable, KindShape:
		b.pop()

	case KindTableRow:
		n := len(b.rowMax)
		if n == 0 {
			return
		}
		b.curLine = max(b.rowMax[n-1], b.curLine)
		b.rowMax = b.rowMax[:n-1]
		if n > 1 && b.rowMax[n-2] < b.curLine {
			b.rowMax[n-2] = b.curLine
		}

	case KindHidden, KindNoGeometry:
		b.suppress--
	}
}

func (b *Builder) pop() Node {
	n := len(b.stack)
	if n == 0 {
		return nil
	}
	node := b.stack[n-1]
	b.stack[n-1] = nil
	b.stack = b.stack[:n-1]
	return node
}

func (b *Builder) promote(c *Content) {
	c.ByLines = b.byLines
	c.ByParagraphs = b.byParagraphs
	c.Drawings = b.drawings
	c.CollectDecorations()
	b.root = c
	b.byLines, b.byParagraphs, b.drawings = nil, nil, nil

	slogger().Debug("scene: content recorded",
		"children", len(c.Children),
		"lines", len(c.ByLines),
		"paragraphs", len(c.ByParagraphs),
		"drawings", len(c.Drawings))
}

// StartContent opens a content region.
func (b *Builder) StartContent() {
	b.StartStructure(KindContent, nil, -1, RoleContent)
}

// StartParagraph opens the paragraph identified by id.
func (b *Builder) StartParagraph(id ParagraphID) {
	b.StartStructure(KindParagraph, id, -1, RoleContent)
}

// StartLine opens line index of the current paragraph for role.
func (b *Builder) StartLine(index int, role Role) {
	b.StartStructure(KindLine, nil, index, role)
}

// StartTable opens a table. Path calls made directly inside it record
// table borders.
func (b *Builder) StartTable() {
	b.StartStructure(KindTable, nil, -1, RoleContent)
}

// EndTable closes the table opened by StartTable.
func (b *Builder) EndTable() {
	b.EndStructure()
}

// StartTableRow opens a table row. Line numbering after the row resumes
// from the highest line any of its cells reached.
func (b *Builder) StartTableRow() {
	b.StartStructure(KindTableRow, nil, -1, RoleContent)
}

// StartShape opens an inline shape.
func (b *Builder) StartShape() {
	b.StartStructure(KindShape, nil, -1, RoleContent)
}
