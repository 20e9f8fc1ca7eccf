package kittest

import (
	"fmt"

	"github.com/go-drift/widgetkit/pkg/graphics"
)

// OpNames returns the short name of each recorded display-list op, in
// draw order, for compact test assertions.
func OpNames(list *graphics.DisplayList) []string {
	ops := list.Ops()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, opName(op.Op))
	}
	return names
}

func opName(op any) string {
	switch op.(type) {
	case graphics.SaveOp:
		return "save"
	case graphics.RestoreOp:
		return "restore"
	case graphics.TranslateOp:
		return "translate"
	case graphics.ClipRectOp:
		return "clipRect"
	case graphics.ClipRRectOp:
		return "clipRRect"
	case graphics.SaveLayerBlurOp:
		return "saveLayerBlur"
	case graphics.DrawRectOp:
		return "drawRect"
	case graphics.DrawTextOp:
		return "drawText"
	default:
		return fmt.Sprintf("%T", op)
	}
}

// FindOp returns the first op matching the predicate, or nil.
func FindOp(list *graphics.DisplayList, match func(op any) bool) any {
	for _, op := range list.Ops() {
		if match(op.Op) {
			return op.Op
		}
	}
	return nil
}

// DrawnTexts returns the text of every DrawTextOp in draw order.
func DrawnTexts(list *graphics.DisplayList) []string {
	var texts []string
	for _, op := range list.Ops() {
		if draw, ok := op.Op.(graphics.DrawTextOp); ok {
			texts = append(texts, draw.Text)
		}
	}
	return texts
}
