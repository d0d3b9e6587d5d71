// Package restock suggests which cans to load into a vending machine.
//
// A machine holds MachineCapacity cans in rows of RowSize. Only full rows are
// ever suggested, and flavors are taken round-robin in name order so a load
// mixes as many flavors as stock allows.
package restock

import (
	"sort"

	"pringles-wms/internal/model"
)

const (
	MachineCapacity = 49
	RowSize         = 7
)

// Entry is one suggested row.
type Entry struct {
	FlavorName string `json:"flavor_name"`
	Count      int    `json:"count"`
}

// Plan is an ordered fill suggestion. An empty plan means no flavor has a full row in stock.
type Plan []Entry

// Total is the number of cans across all entries.
func (p Plan) Total() int {
	total := 0
	for _, e := range p {
		total += e.Count
	}
	return total
}

type rowsLeft struct {
	name string
	rows int
}

// Suggest builds a plan from per-flavor in-stock counts. The input is not modified.
func Suggest(stock []model.FlavorStock) Plan {
	var queue []rowsLeft
	for _, s := range stock {
		if rows := s.Available / RowSize; rows > 0 {
			queue = append(queue, rowsLeft{name: s.FlavorName, rows: rows})
		}
	}
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].name < queue[j].name })

	plan := Plan{}
	total := 0
	for total+RowSize <= MachineCapacity && anyRowsLeft(queue) {
		for i := range queue {
			if queue[i].rows > 0 && total+RowSize <= MachineCapacity {
				plan = append(plan, Entry{FlavorName: queue[i].name, Count: RowSize})
				total += RowSize
				queue[i].rows--
			}
		}
	}
	return plan
}

func anyRowsLeft(queue []rowsLeft) bool {
	for _, r := range queue {
		if r.rows > 0 {
			return true
		}
	}
	return false
}
