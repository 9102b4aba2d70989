package grid

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/shirou/gopsutil/v4/process"
)

// Source names accepted by LoadItems.
const (
	SourceDemo      = "demo"
	SourceProcesses = "processes"
)

// Sources lists the valid source names.
var Sources = []string{SourceDemo, SourceProcesses}

// LoadItems builds up to count items from the named source.
func LoadItems(ctx context.Context, source string, count int) ([]Item, error) {
	switch source {
	case "", SourceDemo:
		return DemoItems(count), nil
	case SourceProcesses:
		return ProcessItems(ctx, count)
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}
}

// DemoItems returns n numbered items.
func DemoItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Text:   "Item " + strconv.Itoa(i+1),
			Detail: "#" + strconv.Itoa(i+1),
		}
	}
	return items
}

// ProcessItems returns one item per running process, lowest PID first, up
// to limit (zero means no limit). Processes that exit while being listed are
// skipped.
func ProcessItems(ctx context.Context, limit int) ([]Item, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	slices.SortFunc(procs, func(a, b *process.Process) int {
		return int(a.Pid) - int(b.Pid)
	})

	items := make([]Item, 0, len(procs))
	for _, p := range procs {
		if limit > 0 && len(items) >= limit {
			break
		}
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		items = append(items, Item{
			Text:   name,
			Detail: "pid " + strconv.Itoa(int(p.Pid)),
		})
	}
	return items, nil
}
