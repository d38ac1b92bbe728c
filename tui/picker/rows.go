package picker

import (
	"fmt"

	"github.com/takenlabs/taken/internal/notebook"
)

// noteRows adapts a filtered notebook slice to the list view's row source.
// The first ten rows carry their quick-select hint.
type noteRows []notebook.Notebook

func (r noteRows) RowCount() int {
	return len(r)
}

func (r noteRows) RowContent(i int) string {
	hint := "  "
	switch {
	case i < 9:
		hint = fmt.Sprintf("%d ", i+1)
	case i == 9:
		hint = "0 "
	}

	name := r[i].Name
	if r[i].IsDefault {
		name += " •"
	}
	return hint + name
}
