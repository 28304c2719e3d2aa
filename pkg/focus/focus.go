package focus

import "fmt"

// Field is a region of the form that can receive keyboard input.
type Field int

const (
	NameInput Field = iota
	TypeList
	CategoryList
	FileList
	Preview
)

// Fields lists every field in focus-cycle order.
var Fields = []Field{NameInput, TypeList, CategoryList, FileList, Preview}

// Next returns the field after f, wrapping from the last field to the first.
func (f Field) Next() Field {
	return Fields[(int(f)+1)%len(Fields)]
}

func (f Field) String() string {
	switch f {
	case NameInput:
		return "File name"
	case TypeList:
		return "Type"
	case CategoryList:
		return "PARA category"
	case FileList:
		return "TINO files"
	case Preview:
		return "Preview"
	}

	return fmt.Sprintf("Field(%d)", int(f))
}
