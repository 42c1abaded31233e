package discovery

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

func runningProcessArgs(ctx context.Context, name string) ([][]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	var out [][]string
	for _, p := range procs {
		// processes can exit or be inaccessible between listing and reading
		pname, err := p.NameWithContext(ctx)
		if err != nil || pname != name {
			continue
		}
		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			continue
		}
		out = append(out, args)
	}
	return out, nil
}
