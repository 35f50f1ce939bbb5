package charm

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

type path []*instance

// parse instantiates the chain of commands named by args, parsing each
// command's flags along the way, and returns the chain together with the
// arguments left for the last command.
func parse(spec *Spec, args []string) (path, []string, error) {
	var p path
	var parent Command
	for {
		inst, err := newInstance(parent, spec)
		if err != nil {
			return nil, nil, err
		}
		p = append(p, inst)
		if err := inst.flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return p, nil, NeedHelp
			}
			return nil, nil, fmt.Errorf("%s: %w", p.pathname(), err)
		}
		args = inst.flags.Args()
		if len(args) == 0 {
			return p, args, nil
		}
		child := spec.lookupSub(args[0])
		if child == nil {
			return p, args, nil
		}
		spec = child
		parent = inst.command
		args = args[1:]
	}
}

// parseHelp returns the chain of commands named in args, skipping flags,
// so help can be displayed for the last one.
func parseHelp(spec *Spec, args []string) (path, error) {
	inst, err := newInstance(nil, spec)
	if err != nil {
		return nil, err
	}
	p := path{inst}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		child := spec.lookupSub(arg)
		if child == nil {
			break
		}
		inst, err := newInstance(p.last().command, child)
		if err != nil {
			return nil, err
		}
		p = append(p, inst)
		spec = child
	}
	return p, nil
}

func (p path) run(args []string) error {
	err := p.last().command.Run(args)
	if err == ErrNoRun {
		if len(args) == 0 {
			err = fmt.Errorf("%q: requires a sub-command: %s", p.pathname(), p.subCommands())
		} else {
			err = fmt.Errorf("%q: no such sub-command %q: options are: %s", p.pathname(), args[0], p.subCommands())
		}
	}
	return err
}

func (p path) last() *instance {
	return p[len(p)-1]
}

func (p path) pathname() string {
	names := make([]string, 0, len(p))
	for _, sub := range p {
		names = append(names, sub.spec.Name)
	}
	return strings.Join(names, " ")
}

func (p path) subCommands() string {
	var names []string
	for _, spec := range p.last().spec.children {
		if !spec.Hidden {
			names = append(names, spec.Name)
		}
	}
	return strings.Join(names, " ")
}
