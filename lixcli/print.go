package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/npillmayer/linstore/storage"
)

func printOp(intp *Intp, op *Op) (err error, stop bool) {
	store := intp.engine.Storage()
	reg := intp.engine.Registry()
	pterm.Printf("capacity %d, %d item(s), head room %d, tail room %d\n",
		store.Capacity(), reg.ItemsCount(), reg.HeadCapacity(), reg.TailCapacity())
	if store.Capacity() == 0 {
		return nil, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(layoutTable(intp)).Render()
	return nil, false
}

// layoutTable lists every slot of the storage with its role.
func layoutTable(intp *Intp) [][]string {
	store := intp.engine.Storage()
	e, hasContent := intp.engine.Registry().Content().Unwrap()
	data := [][]string{
		{"Index", "Item", "Slot"},
	}
	for i := 0; i < store.Capacity(); i++ {
		item, _ := store.Item(i)
		role := "free"
		switch {
		case !hasContent:
		case i < e.First:
			role = "head"
		case i > e.Last:
			role = "tail"
		default:
			role = "content"
		}
		data = append(data, []string{fmt.Sprintf("%d", i), item, role})
	}
	return data
}

func statsOp(intp *Intp, op *Op) (error, bool) {
	s, ok := intp.engine.Storage().(interface{ Stats() storage.Stats })
	if !ok {
		pterm.Error.Println("storage does not count its work")
		return nil, false
	}
	st := s.Stats()
	data := [][]string{
		{"Allocations", "Shifts", "Copied items"},
		{fmt.Sprintf("%d", st.Allocations), fmt.Sprintf("%d", st.Shifts), fmt.Sprintf("%d", st.Copied)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
