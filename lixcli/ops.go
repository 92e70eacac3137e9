package main

import (
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
)

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func newOp(intp *Intp, op *Op) (error, bool) {
	n, err := op.intArg(0)
	if err != nil {
		return err, false
	}
	return intp.newEngine(n), false
}

func initOp(intp *Intp, op *Op) (error, bool) {
	first, err := op.intArg(0)
	if err != nil {
		return err, false
	}
	last, err := op.intArg(1)
	if err != nil {
		return err, false
	}
	return intp.engine.Initialize(first, last), false
}

// fillOp writes the characters of its first argument into consecutive slots,
// starting at the index given as second argument or at the first item.
func fillOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.arg(0)
	if !ok {
		return errors.Wrap(errMissingArg, "fill"), false
	}
	start, _ := intp.engine.Registry().FirstItemIndex()
	if _, ok := op.arg(1); ok {
		var err error
		if start, err = op.intArg(1); err != nil {
			return err, false
		}
	}
	store := intp.engine.Storage()
	if end := start + len([]rune(text)) - 1; end >= store.Capacity() || start < 0 {
		return errors.Newf("fill: text %q does not fit into [%d,%d]", text, start, store.Capacity()-1), false
	}
	for i, r := range []rune(text) {
		if err := store.ReplaceItem(start+i, string(r)); err != nil {
			return err, false
		}
	}
	tracer().Infof("filled %d slot(s) from %d", len([]rune(text)), start)
	return nil, false
}

func getOp(intp *Intp, op *Op) (error, bool) {
	inx, err := op.intArg(0)
	if err != nil {
		return err, false
	}
	item, err := intp.engine.Storage().Item(inx)
	if err != nil {
		return err, false
	}
	pterm.Printf("[%d] = %q\n", inx, item)
	return nil, false
}

func setOp(intp *Intp, op *Op) (error, bool) {
	inx, err := op.intArg(0)
	if err != nil {
		return err, false
	}
	value, ok := op.arg(1)
	if !ok {
		return errors.Wrap(errMissingArg, "set"), false
	}
	return intp.engine.Storage().ReplaceItem(inx, value), false
}

func headOp(intp *Intp, op *Op) (error, bool) {
	n, err := op.intArg(0)
	if err != nil {
		return err, false
	}
	return intp.engine.EnsureHeadCapacity(n), false
}

func tailOp(intp *Intp, op *Op) (error, bool) {
	n, err := op.intArg(0)
	if err != nil {
		return err, false
	}
	return intp.engine.EnsureTailCapacity(n), false
}

func middleOp(intp *Intp, op *Op) (error, bool) {
	split, err := op.intArg(0)
	if err != nil {
		return err, false
	}
	n, err := op.intArg(1)
	if err != nil {
		return err, false
	}
	return intp.engine.EnsureMiddleCapacity(split, n), false
}
