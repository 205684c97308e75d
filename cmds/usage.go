package cmds

import (
	"fmt"
	"os"
	"slices"
)

func (p *Executor) PrintUsage() {
	names := make([]string, 0, len(p.commands))
	for name, command := range p.commands {
		if slices.Contains(command.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		command := p.commands[name]
		fmt.Fprintf(os.Stdout, "%s", name)
		for _, alias := range command.Aliases {
			fmt.Fprintf(os.Stdout, " | %s", alias)
		}
		if command.Description != "" {
			fmt.Fprintf(os.Stdout, "\n\t%s", command.Description)
		}
		fmt.Fprintln(os.Stdout)
	}
}
