package scene

// Kind is the type of a structure command.
type Kind uint8

// Structure kinds. The numbering matches the command ids used by document
// layout engines.
const (
	KindTable      Kind = 1
	KindContent    Kind = 2
	KindParagraph  Kind = 3
	KindLine       Kind = 4
	KindDrawing    Kind = 5
	KindHidden     Kind = 6
	KindNoGeometry Kind = 7
	KindTableRow   Kind = 8
	KindShape      Kind = 9
)

func (k Kind) String() string {
	switch k {
	case KindTable:
		return "Table"
	case KindContent:
		return "Content"
	case KindParagraph:
		return "Paragraph"
	case KindLine:
		return "Line"
	case KindDrawing:
		return "Drawing"
	case KindHidden:
		return "Hidden"
	case KindNoGeometry:
		return "NoGeometry"
	case KindTableRow:
		return "TableRow"
	case KindShape:
		return "Shape"
	default:
		return "Unknown"
	}
}

// suppressesGeometry reports whether path commands are dropped while a
// command of this kind is open.
func (k Kind) suppressesGeometry() bool {
	return k == KindHidden || k == KindNoGeometry
}

// Role selects which list of a Line receives drawing.
type Role uint8

// Draw roles.
const (
	RoleContent             Role = 0
	RoleBorder              Role = 1
	RoleBackground          Role = 2
	RoleUnderline           Role = 3
	RoleParagraphBackground Role = 4
)

func (r Role) String() string {
	switch r {
	case RoleContent:
		return "Content"
	case RoleBorder:
		return "Border"
	case RoleBackground:
		return "Background"
	case RoleUnderline:
		return "Underline"
	case RoleParagraphBackground:
		return "ParagraphBackground"
	default:
		return "Unknown"
	}
}

// textRole reports whether drawables of the role take their paint from
// the text properties rather than from shading and border state.
func (r Role) textRole() bool {
	return r == RoleContent || r == RoleUnderline
}
