package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	topic, _ := op.arg(0)
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "head", "tail":
		pterm.Info.Println("Head and Tail Capacity")
		pterm.Println(`
	head:N guarantees N free slots before the first item,
	tail:N guarantees N free slots after the last item.
	+------+----------------------+------+
	| head | content [first,last] | tail |
	+------+----------------------+------+
	If the storage has to grow, the content is copied once into a new buffer.
	Growing the head moves the content to the right, growing the tail does not move it.
	`)
	case "middle", "split":
		pterm.Info.Println("Middle Capacity")
		pterm.Println(`
	middle:S:N opens N free slots at split index S, first <= S <= last.
	+-------------------+-----------+-----------------+
	| [first,S-1]       | N free    | [S+N,last+N]    |
	+-------------------+-----------+-----------------+
	If the tail room suffices, items [S,last] are shifted in place.
	Otherwise the storage grows by N and items are copied with two range operations.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	new:CAP              create an empty storage
	init:FIRST:LAST      set content to [FIRST,LAST]
	fill:TEXT[:AT]       write characters of TEXT, starting at AT or the first item
	get:I  set:I:X       read or overwrite slot I
	head:N  tail:N       ensure head/tail capacity (help:head)
	middle:S:N           ensure middle capacity (help:middle)
	print  stats         show the layout / the work done by the storage
	quit

	Commands may be chained: middle:2:3 print
	`)
	}
}
